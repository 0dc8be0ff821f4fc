package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/trending"
)

// SeriesRefreshConfig representa a configuração do agendador de atualização das séries
type SeriesRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SeriesRefreshService invalida o cache das séries e recarrega o snapshot da origem
type SeriesRefreshService struct {
	scheduler           *gocron.Scheduler
	config              SeriesRefreshConfig
	provider            trending.SeriesProvider
	invalidator         CacheInvalidator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDailyPoints     int
	lastWeeklyPoints    int
	lastError           string
}

// NewSeriesRefreshService cria o serviço; invalidator pode ser nil quando não há cache
func NewSeriesRefreshService(
	provider trending.SeriesProvider,
	invalidator CacheInvalidator,
	appConfig *config.Config,
) *SeriesRefreshService {
	refreshConfig := SeriesRefreshConfig{
		CronSchedule: appConfig.SeriesRefresh.CronSchedule,
		SyncEnabled:  appConfig.SeriesRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
		"cache_enabled": invalidator != nil,
	}).Info("Configuração do agendador de atualização de séries carregada")

	return &SeriesRefreshService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      refreshConfig,
		provider:    provider,
		invalidator: invalidator,
	}
}

// Start inicia o agendador
func (s *SeriesRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização de séries desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de séries")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de séries: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de séries")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SeriesRefreshService) refresh(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de séries já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	if s.invalidator != nil {
		if err := s.invalidator.Bump(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao invalidar cache de séries")
			s.setResult(0, 0, err)
			return
		}
	}

	snapshot, err := s.provider.LoadSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar séries")
		s.setResult(0, 0, err)
		return
	}

	s.setResult(len(snapshot.Daily), len(snapshot.Weekly), nil)

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"daily_points":  len(snapshot.Daily),
		"weekly_points": len(snapshot.Weekly),
		"source":        snapshot.Source,
	}).Info("Atualização de séries concluída")
}

func (s *SeriesRefreshService) setResult(daily, weekly int, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastError = err.Error()
		return
	}

	s.lastError = ""
	s.lastDailyPoints = daily
	s.lastWeeklyPoints = weekly
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma atualização das séries
func (s *SeriesRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de séries já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de séries")
	go s.refresh(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SeriesRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"cache_enabled":          s.invalidator != nil,
		"last_daily_points":      s.lastDailyPoints,
		"last_weekly_points":     s.lastWeeklyPoints,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
