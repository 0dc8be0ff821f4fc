package domain

// SeriesID identifica uma série do gráfico independentemente do rótulo exibido
type SeriesID string

const (
	SeriesRevenue SeriesID = "revenue"
	SeriesSpend   SeriesID = "spend"
	SeriesROAS    SeriesID = "roas"
)

// ChartSeries lista as três séries na ordem de desenho (área primeiro)
var ChartSeries = []SeriesID{SeriesRevenue, SeriesSpend, SeriesROAS}

// FormatStrategy define como um valor é exibido no tooltip
type FormatStrategy int

const (
	FormatRaw FormatStrategy = iota
	FormatCurrency
	FormatRatio
)

func (f FormatStrategy) String() string {
	switch f {
	case FormatCurrency:
		return "currency"
	case FormatRatio:
		return "ratio"
	}
	return "raw"
}

// SeriesFormats mapeia cada série para sua estratégia de formatação
var SeriesFormats = map[SeriesID]FormatStrategy{
	SeriesRevenue: FormatCurrency,
	SeriesSpend:   FormatCurrency,
	SeriesROAS:    FormatRatio,
}

// FormatFor retorna a estratégia da série, FormatRaw para identificadores desconhecidos
func FormatFor(id SeriesID) FormatStrategy {
	if strategy, ok := SeriesFormats[id]; ok {
		return strategy
	}
	return FormatRaw
}
