package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func sweepConfig(enabled bool) *config.Config {
	return &config.Config{
		ViewSweep: config.ViewSweep{CronSchedule: "*/5 * * * *", Enabled: enabled, MaxIdle: 30 * time.Minute},
	}
}

func TestViewSweepService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper := mocks.NewMockViewSweeper(ctrl)
	sweeper.EXPECT().SweepIdle(30 * time.Minute).Return(2)
	sweeper.EXPECT().SweepIdle(30 * time.Minute).Return(0)
	sweeper.EXPECT().Count().Return(3).AnyTimes()

	service := NewViewSweepService(sweeper, sweepConfig(true))
	service.TriggerManualSync()
	service.TriggerManualSync()

	status := service.GetStatus()
	assert.Equal(t, 0, status["last_removed"])
	assert.Equal(t, 2, status["total_removed"])
	assert.Equal(t, 3, status["mounted_views"])
	assert.Equal(t, "30m0s", status["max_idle"])
}

func TestViewSweepService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewViewSweepService(mocks.NewMockViewSweeper(ctrl), sweepConfig(false))
	assert.NoError(t, service.Start(context.Background()))
	assert.False(t, service.scheduler.IsRunning())
}
