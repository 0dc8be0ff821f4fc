package datasource

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/pkg/utils"
)

const (
	dailyRevenueBase   = 8000.0
	dailyRevenueSpread = 7000.0
	weeklyRevenueBase  = 55000.0
	weeklyRevenueSpan  = 45000.0
	minSpendShare      = 0.55
	spendShareSpread   = 0.45
)

// MockProvider gera séries de demonstração determinísticas a partir de uma semente.
// As séries diária e semanal são independentes entre si.
type MockProvider struct {
	days      int
	weeks     int
	startDate time.Time
	seed      int64
	now       func() time.Time
}

func NewMockProvider(cfg config.Mock) (*MockProvider, error) {
	start, err := utils.ParseDateLike(cfg.StartDate)
	if err != nil {
		return nil, fmt.Errorf("data inicial inválida para séries de demonstração: %w", err)
	}

	if cfg.Days < 0 || cfg.Weeks < 0 {
		return nil, fmt.Errorf("quantidade de pontos inválida: %d dias, %d semanas", cfg.Days, cfg.Weeks)
	}

	return &MockProvider{
		days:      cfg.Days,
		weeks:     cfg.Weeks,
		startDate: start,
		seed:      cfg.Seed,
		now:       time.Now,
	}, nil
}

func (p *MockProvider) LoadSnapshot(ctx context.Context) (*domain.SeriesSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(p.seed))

	snapshot := &domain.SeriesSnapshot{
		Daily:    p.daily(rng),
		Weekly:   p.weekly(rng),
		Source:   config.DataSourceMock,
		LoadedAt: p.now(),
	}

	logrus.WithFields(logrus.Fields{
		"daily_points":  len(snapshot.Daily),
		"weekly_points": len(snapshot.Weekly),
		"seed":          p.seed,
	}).Debug("Séries de demonstração geradas")

	return snapshot, nil
}

func (p *MockProvider) daily(rng *rand.Rand) domain.Series {
	series := make(domain.Series, 0, p.days)
	for i := 0; i < p.days; i++ {
		revenue, spend := sample(rng, dailyRevenueBase, dailyRevenueSpread)
		series = append(series, domain.TimeSeriesPoint{
			Date:    p.startDate.AddDate(0, 0, i).Format(time.DateOnly),
			Revenue: revenue,
			Spend:   spend,
			ROAS:    roas(revenue, spend),
		})
	}
	return series
}

func (p *MockProvider) weekly(rng *rand.Rand) domain.Series {
	series := make(domain.Series, 0, p.weeks)
	for i := 0; i < p.weeks; i++ {
		revenue, spend := sample(rng, weeklyRevenueBase, weeklyRevenueSpan)
		series = append(series, domain.TimeSeriesPoint{
			Week:    fmt.Sprintf("W%d", i+1),
			Revenue: revenue,
			Spend:   spend,
			ROAS:    roas(revenue, spend),
		})
	}
	return series
}

func sample(rng *rand.Rand, base, spread float64) (revenue, spend float64) {
	revenue = math.Round(base + rng.Float64()*spread)
	spend = math.Round(revenue * (minSpendShare + rng.Float64()*spendShareSpread))
	return revenue, spend
}

// roas é zero quando não houve gasto
func roas(revenue, spend float64) float64 {
	return utils.RoundWithTwoDecimalPlace(utils.SafeRatio(revenue, spend))
}
