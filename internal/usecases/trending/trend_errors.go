package trending

import (
	"errors"
	"fmt"

	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
)

var (
	ErrViewNotFound      = errors.New("visão não encontrada")
	ErrPointOutOfRange   = errors.New("índice fora da série selecionada")
	ErrNothingToRender   = errors.New("série selecionada vazia")
	ErrSeriesUnavailable = errors.New("erro ao carregar séries")
	ErrGenerateID        = errors.New("erro ao gerar ID da visão")
	ErrRenderChart       = errors.New("erro ao renderizar gráfico")
)

// TrendError é um erro com contexto adicional para as visões de tendência
type TrendError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	ViewID  string // Visão envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *TrendError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrendError) Unwrap() error {
	return e.Err
}

// NewTrendError cria um TrendError associado a uma visão
func NewTrendError(err error, code string, viewID string, details string) *TrendError {
	return &TrendError{
		Err:     err,
		Code:    code,
		ViewID:  viewID,
		Details: details,
	}
}

// CodeFor retorna o código de API de um erro, SRV_001 quando não for um TrendError
func CodeFor(err error) string {
	var trendErr *TrendError
	if errors.As(err, &trendErr) && trendErr.Code != "" {
		return trendErr.Code
	}
	return apiErrors.ErrInternalServer
}
