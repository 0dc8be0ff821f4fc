package domain

import (
	"fmt"
	"strings"
)

// DisplayMode representa a granularidade exibida no gráfico de tendência
type DisplayMode int

const (
	// DisplayModeDaily é o estado inicial de toda visão montada
	DisplayModeDaily DisplayMode = iota
	DisplayModeWeekly
)

const (
	AxisKeyDate = "date"
	AxisKeyWeek = "week"
)

// DisplayModes lista os modos na ordem em que os botões são exibidos
var DisplayModes = []DisplayMode{DisplayModeDaily, DisplayModeWeekly}

func (m DisplayMode) String() string {
	if m == DisplayModeWeekly {
		return "weekly"
	}
	return "daily"
}

// AxisKey retorna o campo do ponto usado como categoria do eixo X
func (m DisplayMode) AxisKey() string {
	if m == DisplayModeDaily {
		return AxisKeyDate
	}
	return AxisKeyWeek
}

// Toggle retorna o outro modo
func (m DisplayMode) Toggle() DisplayMode {
	if m == DisplayModeDaily {
		return DisplayModeWeekly
	}
	return DisplayModeDaily
}

// ParseDisplayMode converte o texto recebido na borda HTTP para o enum
func ParseDisplayMode(value string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "daily":
		return DisplayModeDaily, nil
	case "weekly":
		return DisplayModeWeekly, nil
	}
	return DisplayModeDaily, fmt.Errorf("modo de exibição inválido: %q", value)
}

func (m DisplayMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *DisplayMode) UnmarshalText(text []byte) error {
	mode, err := ParseDisplayMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
