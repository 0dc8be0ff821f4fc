package trending

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
)

var seriesColors = map[domain.SeriesID]string{
	domain.SeriesRevenue: "#3b82f6",
	domain.SeriesSpend:   "#ef4444",
	domain.SeriesROAS:    "#10b981",
}

// SeriesCatalog separa os rótulos exibidos dos identificadores das séries
type SeriesCatalog struct {
	labels     map[domain.SeriesID]string
	ids        map[string]domain.SeriesID
	modeLabels map[domain.DisplayMode]string
}

func NewSeriesCatalog(labels config.Labels) *SeriesCatalog {
	c := &SeriesCatalog{
		labels: map[domain.SeriesID]string{
			domain.SeriesRevenue: fallback(labels.Revenue, "營收"),
			domain.SeriesSpend:   fallback(labels.Spend, "廣告花費"),
			domain.SeriesROAS:    fallback(labels.ROAS, "ROAS"),
		},
		modeLabels: map[domain.DisplayMode]string{
			domain.DisplayModeDaily:  fallback(labels.Daily, "日"),
			domain.DisplayModeWeekly: fallback(labels.Weekly, "週"),
		},
		ids: make(map[string]domain.SeriesID),
	}

	// identificadores têm precedência; um rótulo igual a outra série ou a um rótulo
	// anterior não é registrado
	for _, id := range domain.ChartSeries {
		c.ids[string(id)] = id
	}
	for _, id := range domain.ChartSeries {
		label := strings.TrimSpace(c.labels[id])
		if owner, taken := c.ids[label]; taken && owner != id {
			logrus.WithFields(logrus.Fields{
				"label":  label,
				"series": id,
				"owner":  owner,
			}).Warn("Rótulo de série em conflito; resolvido para a série já registrada")
			continue
		}
		c.ids[label] = id
	}

	return c
}

// Label retorna o rótulo exibido da série
func (c *SeriesCatalog) Label(id domain.SeriesID) string {
	if label, ok := c.labels[id]; ok {
		return label
	}
	return string(id)
}

// Resolve encontra a série a partir do rótulo exibido ou do próprio identificador
func (c *SeriesCatalog) Resolve(label string) (domain.SeriesID, bool) {
	id, ok := c.ids[strings.TrimSpace(label)]
	return id, ok
}

// ModeLabel retorna o texto do botão do modo
func (c *SeriesCatalog) ModeLabel(mode domain.DisplayMode) string {
	if label, ok := c.modeLabels[mode]; ok {
		return label
	}
	return mode.String()
}

func (c *SeriesCatalog) Color(id domain.SeriesID) string {
	return seriesColors[id]
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}
