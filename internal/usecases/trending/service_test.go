package trending

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/trending/mocks"
	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, provider SeriesProvider, renderer ChartRenderer) *Service {
	t.Helper()
	return NewService(testConfig(), provider, renderer, newTestFormatter(t))
}

func TestService_MountStartsDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(testSnapshot(), nil)

	service := newTestService(t, provider, nil)

	state, err := service.Mount(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, state.ID)
	assert.Equal(t, domain.DisplayModeDaily, state.Mode)
	assert.Equal(t, "date", state.AxisKey)
	assert.Equal(t, 1, service.Count())
}

func TestService_MountProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	service := newTestService(t, provider, nil)

	_, err := service.Mount(context.Background())
	assert.ErrorIs(t, err, ErrSeriesUnavailable)
	assert.Equal(t, apiErrors.ErrExternalService, CodeFor(err))
	assert.Equal(t, 0, service.Count())
}

func TestService_RemountResetsMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(testSnapshot(), nil).Times(2)

	service := newTestService(t, provider, nil)

	first, err := service.Mount(context.Background())
	require.NoError(t, err)

	state, err := service.SetMode(first.ID, domain.DisplayModeWeekly)
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayModeWeekly, state.Mode)
	assert.Equal(t, "week", state.AxisKey)

	require.NoError(t, service.Unmount(first.ID))
	_, err = service.View(first.ID)
	assert.ErrorIs(t, err, ErrViewNotFound)

	second, err := service.Mount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayModeDaily, second.Mode)
}

func TestService_UnknownView(t *testing.T) {
	service := newTestService(t, nil, nil)

	_, err := service.Render("nope")
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.Equal(t, apiErrors.ErrViewNotFound, CodeFor(err))

	_, err = service.SetMode("nope", domain.DisplayModeWeekly)
	assert.ErrorIs(t, err, ErrViewNotFound)

	_, err = service.Tooltip("nope", 0)
	assert.ErrorIs(t, err, ErrViewNotFound)

	assert.ErrorIs(t, service.Unmount("nope"), ErrViewNotFound)
}

func TestService_TooltipAndRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(testSnapshot(), nil)

	service := newTestService(t, provider, nil)
	state, err := service.Mount(context.Background())
	require.NoError(t, err)

	tooltip, err := service.Tooltip(state.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "1.23", tooltip.Entries[2].Formatted)
	assert.Equal(t, "$12,000", tooltip.Entries[0].Formatted)

	_, err = service.Tooltip(state.ID, 9)
	assert.ErrorIs(t, err, ErrPointOutOfRange)
	assert.Equal(t, apiErrors.ErrPointOutOfRange, CodeFor(err))

	chart, err := service.Render(state.ID)
	require.NoError(t, err)
	assert.Equal(t, state.ID, chart.ViewID)
	assert.Len(t, chart.Points, 2)
}

func TestService_RenderSVG(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	renderer := mocks.NewMockChartRenderer(ctrl)

	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(testSnapshot(), nil)
	renderer.EXPECT().
		RenderSVG(gomock.Any(), gomock.Any()).
		DoAndReturn(func(w io.Writer, chart *domain.TrendChart) error {
			assert.Equal(t, domain.DisplayModeWeekly, chart.Mode)
			_, err := w.Write([]byte("<svg></svg>"))
			return err
		})

	service := newTestService(t, provider, renderer)
	state, err := service.Mount(context.Background())
	require.NoError(t, err)

	_, err = service.SetMode(state.ID, domain.DisplayModeWeekly)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, service.RenderSVG(state.ID, &buf))
	assert.Equal(t, "<svg></svg>", buf.String())
}

func TestService_RenderSVGEmptySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	renderer := mocks.NewMockChartRenderer(ctrl)

	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(&domain.SeriesSnapshot{}, nil)

	service := newTestService(t, provider, renderer)
	state, err := service.Mount(context.Background())
	require.NoError(t, err)

	err = service.RenderSVG(state.ID, io.Discard)
	assert.ErrorIs(t, err, ErrNothingToRender)
	assert.Equal(t, apiErrors.ErrNothingToRender, CodeFor(err))
}

func TestService_Series(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(testSnapshot(), nil).Times(2)

	service := newTestService(t, provider, nil)

	daily, err := service.Series(context.Background(), domain.DisplayModeDaily)
	require.NoError(t, err)
	assert.Len(t, daily, 2)

	weekly, err := service.Series(context.Background(), domain.DisplayModeWeekly)
	require.NoError(t, err)
	assert.Equal(t, "W1", weekly[0].Week)
}

func TestService_SweepIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(testSnapshot(), nil).Times(2)

	service := newTestService(t, provider, nil)

	current := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return current }

	stale, err := service.Mount(context.Background())
	require.NoError(t, err)

	current = current.Add(40 * time.Minute)
	fresh, err := service.Mount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, service.SweepIdle(0))
	assert.Equal(t, 1, service.SweepIdle(30*time.Minute))

	_, err = service.View(stale.ID)
	assert.ErrorIs(t, err, ErrViewNotFound)
	_, err = service.View(fresh.ID)
	assert.NoError(t, err)
}

func TestService_GenerateIDError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSeriesProvider(ctrl)
	provider.EXPECT().LoadSnapshot(gomock.Any()).Return(testSnapshot(), nil)

	service := newTestService(t, provider, nil)
	service.generate = func() (string, error) { return "", errors.New("sem entropia") }

	_, err := service.Mount(context.Background())
	assert.ErrorIs(t, err, ErrGenerateID)
}
