package trending

import (
	"math"
	"sync"
	"time"

	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
)

const (
	defaultROASMax = 1.5
	rightAxisSteps = 3
	leftAxisSteps  = 4
	emptyAxisMax   = 4000
)

// TrendView guarda o modo de exibição de uma montagem e as séries recebidas nela.
// O modo tem um único escritor (SetMode); as séries nunca são alteradas.
type TrendView struct {
	id        string
	mode      domain.DisplayMode
	snapshot  *domain.SeriesSnapshot
	formatter *Formatter
	roasMax   float64
	mountedAt time.Time
	updatedAt time.Time
	mu        sync.Mutex
}

// NewTrendView cria a visão no modo diário
func NewTrendView(id string, snapshot *domain.SeriesSnapshot, formatter *Formatter, roasMax float64, now time.Time) *TrendView {
	if snapshot == nil {
		snapshot = &domain.SeriesSnapshot{}
	}
	if roasMax <= 0 {
		roasMax = defaultROASMax
	}

	return &TrendView{
		id:        id,
		mode:      domain.DisplayModeDaily,
		snapshot:  snapshot,
		formatter: formatter,
		roasMax:   roasMax,
		mountedAt: now,
		updatedAt: now,
	}
}

func (v *TrendView) ID() string {
	return v.id
}

func (v *TrendView) Mode() domain.DisplayMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

// SetMode substitui o modo corrente. Repetir o mesmo modo não altera o resultado.
func (v *TrendView) SetMode(mode domain.DisplayMode, now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
	v.updatedAt = now
}

func (v *TrendView) touch(now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.updatedAt = now
}

func (v *TrendView) idleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.updatedAt
}

// SelectSeries retorna a série diária para o modo diário e a semanal caso contrário
func (v *TrendView) SelectSeries(mode domain.DisplayMode) domain.Series {
	return v.snapshot.Select(mode)
}

// SelectAxisKey retorna "date" no modo diário e "week" no semanal
func SelectAxisKey(mode domain.DisplayMode) string {
	return mode.AxisKey()
}

func (v *TrendView) State() *domain.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return &domain.ViewState{
		ID:        v.id,
		Mode:      v.mode,
		AxisKey:   v.mode.AxisKey(),
		MountedAt: v.mountedAt,
		UpdatedAt: v.updatedAt,
	}
}

// Toggles retorna os dois botões, com o modo corrente ativo
func (v *TrendView) Toggles() []domain.Toggle {
	return v.toggles(v.Mode())
}

func (v *TrendView) toggles(current domain.DisplayMode) []domain.Toggle {
	toggles := make([]domain.Toggle, 0, len(domain.DisplayModes))
	for _, mode := range domain.DisplayModes {
		toggles = append(toggles, domain.Toggle{
			Mode:   mode,
			Label:  v.formatter.Catalog().ModeLabel(mode),
			Active: mode == current,
		})
	}
	return toggles
}

// Render monta o modelo do gráfico a partir do modo corrente e das séries da montagem
func (v *TrendView) Render() *domain.TrendChart {
	mode := v.Mode()
	axisKey := SelectAxisKey(mode)
	series := v.SelectSeries(mode)
	catalog := v.formatter.Catalog()

	points := make([]domain.ChartPoint, 0, len(series))
	for i, point := range series {
		category := point.Category(axisKey)
		points = append(points, domain.ChartPoint{
			Index:    i,
			Category: category,
			Label:    v.formatter.FormatAxisLabel(mode, category),
			Revenue:  point.Revenue,
			Spend:    point.Spend,
			ROAS:     point.ROAS,
		})
	}

	descriptors := []domain.SeriesDescriptor{
		{ID: domain.SeriesRevenue, Kind: domain.SeriesKindArea, Axis: domain.AxisLeft},
		{ID: domain.SeriesSpend, Kind: domain.SeriesKindLine, Axis: domain.AxisLeft},
		{ID: domain.SeriesROAS, Kind: domain.SeriesKindLine, Axis: domain.AxisRight},
	}
	for i := range descriptors {
		descriptors[i].Label = catalog.Label(descriptors[i].ID)
		descriptors[i].Color = catalog.Color(descriptors[i].ID)
	}

	rightDomain := [2]float64{0, v.roasMax}

	return &domain.TrendChart{
		ViewID:   v.id,
		Mode:     mode,
		AxisKey:  axisKey,
		Currency: v.formatter.CurrencyCode(),
		Toggles:  v.toggles(mode),
		Series:   descriptors,
		Points:   points,
		LeftAxis: domain.ValueAxis{
			Side:  domain.AxisLeft,
			Ticks: leftAxisTicks(series),
		},
		RightAxis: domain.ValueAxis{
			Side:   domain.AxisRight,
			Domain: &rightDomain,
			Ticks:  rightAxisTicks(v.roasMax),
		},
		LoadedAt: v.snapshot.LoadedAt,
	}
}

// Tooltip formata as três séries do ponto informado no modo corrente
func (v *TrendView) Tooltip(index int) (*domain.Tooltip, error) {
	mode := v.Mode()
	series := v.SelectSeries(mode)
	if index < 0 || index >= len(series) {
		return nil, NewTrendError(ErrPointOutOfRange, apiErrors.ErrPointOutOfRange, v.id, "")
	}

	point := series[index]
	category := point.Category(SelectAxisKey(mode))
	catalog := v.formatter.Catalog()

	entries := make([]domain.TooltipEntry, 0, len(domain.ChartSeries))
	for _, id := range domain.ChartSeries {
		value, _ := point.Value(id)
		entries = append(entries, domain.TooltipEntry{
			Series:    id,
			Label:     catalog.Label(id),
			Value:     value,
			Formatted: v.formatter.FormatTooltipEntry(id, value),
			Format:    domain.FormatFor(id).String(),
		})
	}

	return &domain.Tooltip{
		Index:    index,
		Category: category,
		Label:    v.formatter.FormatAxisLabel(mode, category),
		Entries:  entries,
	}, nil
}

// leftAxisTicks ignora valores não finitos; eles seguem nos pontos sem alterar a escala
func leftAxisTicks(series domain.Series) []domain.AxisTick {
	maxValue := 0.0
	for _, point := range series {
		for _, value := range []float64{point.Revenue, point.Spend} {
			if isFinite(value) {
				maxValue = math.Max(maxValue, value)
			}
		}
	}
	if maxValue <= 0 || maxValue > math.MaxFloat64/2 {
		maxValue = emptyAxisMax
	}

	step := niceStep(maxValue / leftAxisSteps)
	count := int(math.Ceil(maxValue/step)) + 1
	if count < 2 || count > leftAxisSteps+2 {
		count = leftAxisSteps + 1
	}

	ticks := make([]domain.AxisTick, 0, count)
	for i := 0; i < count; i++ {
		value := step * float64(i)
		ticks = append(ticks, domain.AxisTick{Value: value, Label: FormatLeftAxisTick(value)})
	}
	return ticks
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func rightAxisTicks(roasMax float64) []domain.AxisTick {
	ticks := make([]domain.AxisTick, 0, rightAxisSteps+1)
	for i := 0; i <= rightAxisSteps; i++ {
		value := roasMax * float64(i) / rightAxisSteps
		ticks = append(ticks, domain.AxisTick{Value: value, Label: FormatRightAxisTick(value)})
	}
	return ticks
}

// niceStep arredonda o passo para 1, 2, 5 ou 10 vezes a potência de dez
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	normalized := raw / magnitude
	switch {
	case normalized <= 1:
		return magnitude
	case normalized <= 2:
		return 2 * magnitude
	case normalized <= 5:
		return 5 * magnitude
	}
	return 10 * magnitude
}
