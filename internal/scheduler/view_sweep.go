package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
)

// ViewSweepService desmonta periodicamente as visões ociosas
type ViewSweepService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	enabled      bool
	maxIdle      time.Duration
	sweeper      ViewSweeper
	mu           sync.Mutex
	lastSweepAt  time.Time
	lastRemoved  int
	totalRemoved int
}

func NewViewSweepService(sweeper ViewSweeper, appConfig *config.Config) *ViewSweepService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.ViewSweep.CronSchedule,
		"sweep_enabled": appConfig.ViewSweep.Enabled,
		"max_idle":      appConfig.ViewSweep.MaxIdle.String(),
	}).Info("Configuração da limpeza de visões carregada")

	return &ViewSweepService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.ViewSweep.CronSchedule,
		enabled:      appConfig.ViewSweep.Enabled,
		maxIdle:      appConfig.ViewSweep.MaxIdle,
		sweeper:      sweeper,
	}
}

// Start inicia o agendador
func (s *ViewSweepService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Limpeza de visões desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(s.sweep)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de visões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de visões")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ViewSweepService) sweep() {
	removed := s.sweeper.SweepIdle(s.maxIdle)

	s.mu.Lock()
	s.lastSweepAt = time.Now()
	s.lastRemoved = removed
	s.totalRemoved += removed
	s.mu.Unlock()

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": s.sweeper.Count(),
		}).Info("Visões ociosas desmontadas")
	}
}

// TriggerManualSync executa a limpeza imediatamente
func (s *ViewSweepService) TriggerManualSync() {
	logrus.Info("Iniciando limpeza manual de visões")
	s.sweep()
}

func (s *ViewSweepService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"sweep_enabled": s.enabled,
		"sweep_cron":    s.cronSchedule,
		"max_idle":      s.maxIdle.String(),
		"mounted_views": s.sweeper.Count(),
		"last_sweep_at": s.lastSweepAt,
		"last_removed":  s.lastRemoved,
		"total_removed": s.totalRemoved,
	}
}
