package domain

import "time"

// TimeSeriesPoint é uma observação diária (Date) ou semanal (Week) com as três métricas.
// ROAS chega pré-calculado pelo provedor de dados.
type TimeSeriesPoint struct {
	Date    string  `json:"date,omitempty"`
	Week    string  `json:"week,omitempty"`
	Revenue float64 `json:"revenue"`
	Spend   float64 `json:"spend"`
	ROAS    float64 `json:"roas"`
}

// Category retorna o valor do eixo X conforme a chave do modo
func (p TimeSeriesPoint) Category(axisKey string) string {
	if axisKey == AxisKeyWeek {
		return p.Week
	}
	return p.Date
}

// Value retorna a métrica correspondente ao identificador da série
func (p TimeSeriesPoint) Value(id SeriesID) (float64, bool) {
	switch id {
	case SeriesRevenue:
		return p.Revenue, true
	case SeriesSpend:
		return p.Spend, true
	case SeriesROAS:
		return p.ROAS, true
	}
	return 0, false
}

// Series é uma sequência ordenada cronologicamente
type Series []TimeSeriesPoint

// SeriesSnapshot agrupa as duas séries de entrada, independentes entre si
type SeriesSnapshot struct {
	Daily    Series    `json:"daily"`
	Weekly   Series    `json:"weekly"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Select retorna a série diária quando o modo é diário e a semanal caso contrário
func (s *SeriesSnapshot) Select(mode DisplayMode) Series {
	if s == nil {
		return nil
	}
	if mode == DisplayModeDaily {
		return s.Daily
	}
	return s.Weekly
}
