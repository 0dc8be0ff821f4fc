package trending

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/trend-dashboard-api/pkg/utils"
)

// Service mantém as visões montadas e delega a carga das séries ao provedor
type Service struct {
	provider  SeriesProvider
	renderer  ChartRenderer
	formatter *Formatter
	roasMax   float64
	views     map[string]*TrendView
	mu        sync.RWMutex
	now       func() time.Time
	generate  func() (string, error)
}

// NewService cria uma nova instância do serviço de visões de tendência
func NewService(cfg *config.Config, provider SeriesProvider, renderer ChartRenderer, formatter *Formatter) *Service {
	return &Service{
		provider:  provider,
		renderer:  renderer,
		formatter: formatter,
		roasMax:   cfg.Chart.ROASMax,
		views:     make(map[string]*TrendView),
		now:       time.Now,
		generate:  utils.GenerateID,
	}
}

func (s *Service) Mount(ctx context.Context) (*domain.ViewState, error) {
	snapshot, err := s.provider.LoadSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar séries para montagem da visão")
		return nil, NewTrendError(ErrSeriesUnavailable, apiErrors.ErrExternalService, "", err.Error())
	}

	id, err := s.generate()
	if err != nil {
		return nil, NewTrendError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}

	view := NewTrendView(id, snapshot, s.formatter, s.roasMax, s.now())

	s.mu.Lock()
	s.views[id] = view
	total := len(s.views)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"view_id":       id,
		"daily_points":  len(snapshot.Daily),
		"weekly_points": len(snapshot.Weekly),
		"source":        snapshot.Source,
		"mounted":       total,
	}).Info("Visão de tendência montada")

	return view.State(), nil
}

func (s *Service) Unmount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.views[id]; !ok {
		return NewTrendError(ErrViewNotFound, apiErrors.ErrViewNotFound, id, "")
	}
	delete(s.views, id)

	logrus.WithField("view_id", id).Info("Visão de tendência desmontada")
	return nil
}

func (s *Service) View(id string) (*domain.ViewState, error) {
	view, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return view.State(), nil
}

func (s *Service) SetMode(id string, mode domain.DisplayMode) (*domain.ViewState, error) {
	view, err := s.get(id)
	if err != nil {
		return nil, err
	}

	previous := view.Mode()
	view.SetMode(mode, s.now())

	logrus.WithFields(logrus.Fields{
		"view_id": id,
		"from":    previous.String(),
		"to":      mode.String(),
	}).Debug("Modo de exibição alterado")

	return view.State(), nil
}

func (s *Service) Render(id string) (*domain.TrendChart, error) {
	view, err := s.get(id)
	if err != nil {
		return nil, err
	}
	view.touch(s.now())
	return view.Render(), nil
}

func (s *Service) Tooltip(id string, index int) (*domain.Tooltip, error) {
	view, err := s.get(id)
	if err != nil {
		return nil, err
	}
	view.touch(s.now())
	return view.Tooltip(index)
}

func (s *Service) RenderSVG(id string, w io.Writer) error {
	chart, err := s.Render(id)
	if err != nil {
		return err
	}

	if len(chart.Points) == 0 {
		return NewTrendError(ErrNothingToRender, apiErrors.ErrNothingToRender, id, chart.Mode.String())
	}

	if err := s.renderer.RenderSVG(w, chart); err != nil {
		return NewTrendError(ErrRenderChart, apiErrors.ErrInternalServer, id, err.Error())
	}
	return nil
}

func (s *Service) Series(ctx context.Context, mode domain.DisplayMode) (domain.Series, error) {
	snapshot, err := s.provider.LoadSnapshot(ctx)
	if err != nil {
		return nil, NewTrendError(ErrSeriesUnavailable, apiErrors.ErrExternalService, "", err.Error())
	}
	return snapshot.Select(mode), nil
}

// SweepIdle desmonta as visões sem uso há mais de maxIdle e retorna quantas foram removidas
func (s *Service) SweepIdle(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}

	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, view := range s.views {
		if view.idleSince().Before(cutoff) {
			delete(s.views, id)
			removed++
		}
	}

	return removed
}

// Count retorna o número de visões montadas
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

func (s *Service) get(id string) (*TrendView, error) {
	s.mu.RLock()
	view, ok := s.views[id]
	s.mu.RUnlock()

	if !ok {
		return nil, NewTrendError(ErrViewNotFound, apiErrors.ErrViewNotFound, id, "")
	}
	return view, nil
}

var _ TrendViewer = (*Service)(nil)
