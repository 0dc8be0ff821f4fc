package chart

import (
	"errors"
	"io"
	"math"
	"strings"

	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth   = 960
	defaultHeight  = 400
	maxXLabels     = 12
	singlePointPad = 0.4
)

var ErrEmptyChart = errors.New("gráfico sem pontos")

// Renderer desenha o gráfico de tendência em SVG com dois eixos Y
type Renderer struct {
	width  int
	height int
}

func NewRenderer(cfg config.Chart) *Renderer {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Renderer{width: width, height: height}
}

func (r *Renderer) RenderSVG(w io.Writer, model *domain.TrendChart) error {
	if model == nil || len(model.Points) == 0 {
		return ErrEmptyChart
	}

	graph := gochart.Chart{
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:          xAxis(model.Points),
		YAxis:          valueAxis(model.LeftAxis, leftRange(model.LeftAxis)),
		YAxisSecondary: valueAxis(model.RightAxis, rightRange(model.RightAxis)),
	}

	for _, descriptor := range model.Series {
		graph.Series = append(graph.Series, series(descriptor, model))
	}

	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return graph.Render(gochart.SVG, w)
}

func series(descriptor domain.SeriesDescriptor, model *domain.TrendChart) gochart.ContinuousSeries {
	color := drawing.ColorFromHex(strings.TrimPrefix(descriptor.Color, "#"))

	style := gochart.Style{
		StrokeColor: color,
		StrokeWidth: 2,
	}
	if descriptor.Kind == domain.SeriesKindArea {
		style.FillColor = color.WithAlpha(64)
	}

	valueRange := leftRange(model.LeftAxis)
	if descriptor.Axis == domain.AxisRight {
		valueRange = rightRange(model.RightAxis)
	}

	xs := make([]float64, 0, len(model.Points))
	ys := make([]float64, 0, len(model.Points))
	for _, point := range model.Points {
		value := clamp(pointValue(point, descriptor.ID), valueRange)
		xs = append(xs, float64(point.Index))
		ys = append(ys, value)
	}

	// um único ponto não forma linha; repete o valor em volta do índice
	if len(xs) == 1 {
		xs = []float64{xs[0] - singlePointPad, xs[0] + singlePointPad}
		ys = []float64{ys[0], ys[0]}
	}

	result := gochart.ContinuousSeries{
		Name:    descriptor.Label,
		XValues: xs,
		YValues: ys,
		Style:   style,
	}
	if descriptor.Axis == domain.AxisRight {
		result.YAxis = gochart.YAxisSecondary
	}
	return result
}

func pointValue(point domain.ChartPoint, id domain.SeriesID) float64 {
	switch id {
	case domain.SeriesRevenue:
		return point.Revenue
	case domain.SeriesSpend:
		return point.Spend
	case domain.SeriesROAS:
		return point.ROAS
	}
	return 0
}

// xAxis usa os rótulos formatados; com muitos pontos exibe apenas parte deles
func xAxis(points []domain.ChartPoint) gochart.XAxis {
	every := int(math.Ceil(float64(len(points)) / maxXLabels))
	if every < 1 {
		every = 1
	}

	ticks := make([]gochart.Tick, 0, len(points)/every+1)
	for i, point := range points {
		if i%every != 0 {
			continue
		}
		ticks = append(ticks, gochart.Tick{Value: float64(point.Index), Label: point.Label})
	}

	return gochart.XAxis{
		Ticks: ticks,
		Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(points)) - 0.5},
	}
}

func valueAxis(axis domain.ValueAxis, valueRange *gochart.ContinuousRange) gochart.YAxis {
	ticks := make([]gochart.Tick, 0, len(axis.Ticks))
	for _, tick := range axis.Ticks {
		ticks = append(ticks, gochart.Tick{Value: tick.Value, Label: tick.Label})
	}
	return gochart.YAxis{
		Ticks: ticks,
		Range: valueRange,
	}
}

func leftRange(axis domain.ValueAxis) *gochart.ContinuousRange {
	if axis.Domain != nil {
		return &gochart.ContinuousRange{Min: axis.Domain[0], Max: axis.Domain[1]}
	}

	top := 1.0
	for _, tick := range axis.Ticks {
		top = math.Max(top, tick.Value)
	}
	return &gochart.ContinuousRange{Min: 0, Max: top}
}

func rightRange(axis domain.ValueAxis) *gochart.ContinuousRange {
	if axis.Domain != nil && axis.Domain[1] > axis.Domain[0] {
		return &gochart.ContinuousRange{Min: axis.Domain[0], Max: axis.Domain[1]}
	}
	return leftRange(domain.ValueAxis{Ticks: axis.Ticks})
}

// clamp mantém a linha dentro do domínio do eixo; o modelo JSON preserva o valor original.
// NaN é desenhado na base do eixo.
func clamp(value float64, valueRange *gochart.ContinuousRange) float64 {
	if math.IsNaN(value) {
		return valueRange.Min
	}
	return math.Min(math.Max(value, valueRange.Min), valueRange.Max)
}
