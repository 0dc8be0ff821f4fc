package domain

import "time"

type SeriesKind string

const (
	SeriesKindArea SeriesKind = "area"
	SeriesKindLine SeriesKind = "line"
)

type AxisSide string

const (
	AxisLeft  AxisSide = "left"
	AxisRight AxisSide = "right"
)

// Toggle representa um botão do seletor de modo
type Toggle struct {
	Mode   DisplayMode `json:"mode"`
	Label  string      `json:"label"`
	Active bool        `json:"active"`
}

// ChartPoint é um ponto já preparado para o eixo X
type ChartPoint struct {
	Index    int     `json:"index"`
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Spend    float64 `json:"spend"`
	ROAS     float64 `json:"roas"`
}

// SeriesDescriptor descreve como cada série é desenhada
type SeriesDescriptor struct {
	ID    SeriesID   `json:"id"`
	Label string     `json:"label"`
	Kind  SeriesKind `json:"kind"`
	Axis  AxisSide   `json:"axis"`
	Color string     `json:"color"`
}

// AxisTick é um valor do eixo com o rótulo formatado
type AxisTick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ValueAxis descreve um eixo Y. Domain nulo significa domínio automático.
type ValueAxis struct {
	Side   AxisSide    `json:"side"`
	Domain *[2]float64 `json:"domain,omitempty"`
	Ticks  []AxisTick  `json:"ticks,omitempty"`
}

// TrendChart é o modelo completo de renderização da visão de tendência
type TrendChart struct {
	ViewID    string             `json:"view_id,omitempty"`
	Mode      DisplayMode        `json:"mode"`
	AxisKey   string             `json:"axis_key"`
	Currency  string             `json:"currency"`
	Toggles   []Toggle           `json:"toggles"`
	Series    []SeriesDescriptor `json:"series"`
	Points    []ChartPoint       `json:"points"`
	LeftAxis  ValueAxis          `json:"left_axis"`
	RightAxis ValueAxis          `json:"right_axis"`
	LoadedAt  time.Time          `json:"loaded_at"`
}
