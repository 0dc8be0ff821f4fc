package trending

import (
	"context"
	"io"

	"github.com/vfg2006/trend-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// SeriesProvider entrega as duas séries de entrada (diária e semanal)
type SeriesProvider interface {
	LoadSnapshot(ctx context.Context) (*domain.SeriesSnapshot, error)
}

// ChartRenderer desenha o gráfico composto a partir do modelo já formatado
type ChartRenderer interface {
	RenderSVG(w io.Writer, chart *domain.TrendChart) error
}

// AmountFormatter formata valores monetários
type AmountFormatter interface {
	Format(amount float64) string
	Code() string
}

// DateLabeler converte uma data em texto curto; entradas inválidas são devolvidas sem alteração
type DateLabeler interface {
	Format(raw string) string
}

// TrendViewer é a interface exposta para a camada HTTP
type TrendViewer interface {
	// Mount cria uma visão no modo diário
	Mount(ctx context.Context) (*domain.ViewState, error)

	// Unmount descarta a visão; uma nova montagem volta ao modo diário
	Unmount(id string) error

	// View retorna o estado corrente da visão
	View(id string) (*domain.ViewState, error)

	// SetMode troca o modo de exibição da visão
	SetMode(id string, mode domain.DisplayMode) (*domain.ViewState, error)

	// Render monta o modelo do gráfico para o modo corrente
	Render(id string) (*domain.TrendChart, error)

	// Tooltip retorna as linhas do tooltip para o ponto informado
	Tooltip(id string, index int) (*domain.Tooltip, error)

	// RenderSVG escreve o gráfico composto em SVG
	RenderSVG(id string, w io.Writer) error

	// Series retorna a série de entrada selecionada pelo modo
	Series(ctx context.Context, mode domain.DisplayMode) (domain.Series, error)
}
