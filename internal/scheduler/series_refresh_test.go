package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/internal/scheduler/mocks"
	trendingmocks "github.com/vfg2006/trend-dashboard-api/internal/usecases/trending/mocks"
	"go.uber.org/mock/gomock"
)

func refreshConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		SeriesRefresh: config.SeriesRefresh{CronSchedule: cron, Enabled: enabled},
	}
}

func TestSeriesRefreshService_refresh(t *testing.T) {
	snapshot := &domain.SeriesSnapshot{
		Daily:  domain.Series{{Date: "2024-01-01"}, {Date: "2024-01-02"}},
		Weekly: domain.Series{{Week: "W1"}},
		Source: "mock",
	}

	tests := []struct {
		name          string
		withCache     bool
		setup         func(provider *trendingmocks.MockSeriesProvider, invalidator *mocks.MockCacheInvalidator)
		wantDaily     int
		wantWeekly    int
		wantLastError string
	}{
		{
			name:      "invalida o cache antes de recarregar",
			withCache: true,
			setup: func(provider *trendingmocks.MockSeriesProvider, invalidator *mocks.MockCacheInvalidator) {
				gomock.InOrder(
					invalidator.EXPECT().Bump(gomock.Any()).Return(nil),
					provider.EXPECT().LoadSnapshot(gomock.Any()).Return(snapshot, nil),
				)
			},
			wantDaily:  2,
			wantWeekly: 1,
		},
		{
			name: "sem cache apenas recarrega",
			setup: func(provider *trendingmocks.MockSeriesProvider, _ *mocks.MockCacheInvalidator) {
				provider.EXPECT().LoadSnapshot(gomock.Any()).Return(snapshot, nil)
			},
			wantDaily:  2,
			wantWeekly: 1,
		},
		{
			name:      "falha na invalidação interrompe a atualização",
			withCache: true,
			setup: func(_ *trendingmocks.MockSeriesProvider, invalidator *mocks.MockCacheInvalidator) {
				invalidator.EXPECT().Bump(gomock.Any()).Return(errors.New("redis fora do ar"))
			},
			wantLastError: "redis fora do ar",
		},
		{
			name: "falha na origem é registrada no status",
			setup: func(provider *trendingmocks.MockSeriesProvider, _ *mocks.MockCacheInvalidator) {
				provider.EXPECT().LoadSnapshot(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantLastError: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := trendingmocks.NewMockSeriesProvider(ctrl)
			invalidator := mocks.NewMockCacheInvalidator(ctrl)
			tt.setup(provider, invalidator)

			var cache CacheInvalidator
			if tt.withCache {
				cache = invalidator
			}

			service := NewSeriesRefreshService(provider, cache, refreshConfig(true, "* * * * *"))
			service.refresh(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.wantDaily, status["last_daily_points"])
			assert.Equal(t, tt.wantWeekly, status["last_weekly_points"])
			assert.Equal(t, tt.wantLastError, status["last_error"])
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.withCache, status["cache_enabled"])
		})
	}
}

func TestSeriesRefreshService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := trendingmocks.NewMockSeriesProvider(ctrl)

	t.Run("desabilitado não agenda", func(t *testing.T) {
		service := NewSeriesRefreshService(provider, nil, refreshConfig(false, "inválido"))
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("expressão cron inválida", func(t *testing.T) {
		service := NewSeriesRefreshService(provider, nil, refreshConfig(true, "a cada hora"))
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewSeriesRefreshService(provider, nil, refreshConfig(true, "0 3 * * *"))
		assert.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
