package trending

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/pkg/utils"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter formata valores com agrupamento do locale e símbolo fixo
type CurrencyFormatter struct {
	printer        *message.Printer
	unit           currency.Unit
	symbol         string
	fractionDigits int
}

func NewCurrencyFormatter(locale, code, symbol string, fractionDigits int) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale inválido %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("moeda inválida %q: %w", code, err)
	}

	if symbol == "" {
		symbol = unit.String()
	}

	return &CurrencyFormatter{
		printer:        message.NewPrinter(tag),
		unit:           unit,
		symbol:         symbol,
		fractionDigits: fractionDigits,
	}, nil
}

func (f *CurrencyFormatter) Format(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	// number.Decimal arredonda metades para o par; aqui metades sobem
	scale := math.Pow10(f.fractionDigits)
	amount = math.Round(amount*scale) / scale

	digits := f.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(f.fractionDigits),
		number.MaxFractionDigits(f.fractionDigits),
	))

	return sign + f.symbol + digits
}

// Code retorna o código ISO 4217 da moeda
func (f *CurrencyFormatter) Code() string {
	return f.unit.String()
}

// DateFormatter gera o rótulo curto das datas do eixo X
type DateFormatter struct {
	layout string
}

func NewDateFormatter(layout string) DateFormatter {
	if layout == "" {
		layout = "1/2"
	}
	return DateFormatter{layout: layout}
}

func (f DateFormatter) Format(raw string) string {
	parsed, err := utils.ParseDateLike(raw)
	if err != nil {
		return raw
	}
	return parsed.Format(f.layout)
}

// Formatter concentra as regras de formatação do tooltip e dos eixos
type Formatter struct {
	amounts AmountFormatter
	dates   DateLabeler
	catalog *SeriesCatalog
}

func NewFormatter(amounts AmountFormatter, dates DateLabeler, catalog *SeriesCatalog) *Formatter {
	return &Formatter{
		amounts: amounts,
		dates:   dates,
		catalog: catalog,
	}
}

// NewFormatterFromConfig monta o Formatter com os colaboradores padrão
func NewFormatterFromConfig(cfg *config.Config) (*Formatter, error) {
	amounts, err := NewCurrencyFormatter(
		cfg.Chart.Locale,
		cfg.Chart.CurrencyCode,
		cfg.Chart.CurrencySymbol,
		cfg.Chart.CurrencyFractionDigits,
	)
	if err != nil {
		return nil, err
	}

	return NewFormatter(amounts, NewDateFormatter(cfg.Chart.DateLayout), NewSeriesCatalog(cfg.Labels)), nil
}

func (f *Formatter) Catalog() *SeriesCatalog {
	return f.catalog
}

func (f *Formatter) CurrencyCode() string {
	return f.amounts.Code()
}

// FormatTooltipEntry formata o valor conforme a estratégia da série
func (f *Formatter) FormatTooltipEntry(id domain.SeriesID, value float64) string {
	switch domain.FormatFor(id) {
	case domain.FormatCurrency:
		return f.amounts.Format(value)
	case domain.FormatRatio:
		return strconv.FormatFloat(value, 'f', 2, 64)
	}
	return fmt.Sprint(value)
}

// FormatTooltipLabel resolve o rótulo exibido e aplica FormatTooltipEntry.
// Rótulos desconhecidos caem no valor bruto.
func (f *Formatter) FormatTooltipLabel(label string, value float64) string {
	id, ok := f.catalog.Resolve(label)
	if !ok {
		return fmt.Sprint(value)
	}
	return f.FormatTooltipEntry(id, value)
}

// FormatAxisLabel converte a data no modo diário e repassa o rótulo da semana no semanal
func (f *Formatter) FormatAxisLabel(mode domain.DisplayMode, raw string) string {
	if mode == domain.DisplayModeDaily {
		return f.dates.Format(raw)
	}
	return raw
}

// FormatLeftAxisTick abrevia valores monetários em milhares (45000 -> 45K)
func (f *Formatter) FormatLeftAxisTick(value float64) string {
	return FormatLeftAxisTick(value)
}

func FormatLeftAxisTick(value float64) string {
	thousands := math.Round(value / 1000)
	if thousands == 0 {
		thousands = 0 // descarta o -0
	}
	return strconv.FormatFloat(thousands, 'f', 0, 64) + "K"
}

func FormatRightAxisTick(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}
