package handler

import (
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/trend-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/trending"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/trending/mocks"
	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/trend-dashboard-api/pkg/log"
	"github.com/vfg2006/trend-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func serve(t *testing.T, routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	log.SetupTestLogger()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestMountTrendView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockTrendViewer(ctrl)
	service.EXPECT().Mount(gomock.Any()).Return(&domain.ViewState{ID: "abc", Mode: domain.DisplayModeDaily, AxisKey: "date"}, nil)

	rec := serve(t, TrendViews(service), authenticating.AnonymousClaims(), http.MethodPost, "/v1/trend-views", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/v1/trend-views/abc", rec.Header().Get("Location"))

	var state map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "daily", state["mode"])
	assert.Equal(t, "date", state["axis_key"])
}

func TestGetTrendViewUnencodableValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockTrendViewer(ctrl)
	service.EXPECT().Render("abc").Return(&domain.TrendChart{
		Mode:   domain.DisplayModeDaily,
		Points: []domain.ChartPoint{{Category: "2024-01-01", Revenue: math.Inf(1)}},
	}, nil)

	rec := serve(t, TrendViews(service), authenticating.AnonymousClaims(), http.MethodGet, "/v1/trend-views/abc", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}

func TestSetTrendViewMode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *mocks.MockTrendViewer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "troca para semanal",
			body: `{"mode":"weekly"}`,
			setup: func(service *mocks.MockTrendViewer) {
				service.EXPECT().SetMode("abc", domain.DisplayModeWeekly).
					Return(&domain.ViewState{ID: "abc", Mode: domain.DisplayModeWeekly, AxisKey: "week"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "modo desconhecido",
			body:       `{"mode":"monthly"}`,
			setup:      func(*mocks.MockTrendViewer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "modo ausente",
			body:       `{}`,
			setup:      func(*mocks.MockTrendViewer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "corpo inválido",
			body:       `mode=weekly`,
			setup:      func(*mocks.MockTrendViewer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "visão inexistente",
			body: `{"mode":"daily"}`,
			setup: func(service *mocks.MockTrendViewer) {
				service.EXPECT().SetMode("abc", domain.DisplayModeDaily).
					Return(nil, trending.NewTrendError(trending.ErrViewNotFound, apiErrors.ErrViewNotFound, "abc", ""))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrViewNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockTrendViewer(ctrl)
			tt.setup(service)

			rec := serve(t, TrendViews(service), authenticating.AnonymousClaims(), http.MethodPut, "/v1/trend-views/abc/mode", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetTrendViewTooltip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockTrendViewer(ctrl)
	service.EXPECT().Tooltip("abc", 0).Return(&domain.Tooltip{
		Index:    0,
		Category: "2024-01-01",
		Label:    "1/1",
		Entries: []domain.TooltipEntry{
			{Series: domain.SeriesROAS, Label: "ROAS", Value: 1.5, Formatted: "1.50", Format: "ratio"},
		},
	}, nil)
	service.EXPECT().Tooltip("abc", 7).
		Return(nil, trending.NewTrendError(trending.ErrPointOutOfRange, apiErrors.ErrPointOutOfRange, "abc", ""))

	claims := authenticating.AnonymousClaims()

	rec := serve(t, TrendViews(service), claims, http.MethodGet, "/v1/trend-views/abc/tooltip?index=0", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"formatted":"1.50"`)

	rec = serve(t, TrendViews(service), claims, http.MethodGet, "/v1/trend-views/abc/tooltip?index=7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrPointOutOfRange, decodeError(t, rec).Code)

	rec = serve(t, TrendViews(service), claims, http.MethodGet, "/v1/trend-views/abc/tooltip?index=um", "")
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)

	rec = serve(t, TrendViews(service), claims, http.MethodGet, "/v1/trend-views/abc/tooltip", "")
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
}

func TestGetTrendViewChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockTrendViewer(ctrl)
	service.EXPECT().RenderSVG("abc", gomock.Any()).DoAndReturn(func(_ string, w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	})
	service.EXPECT().RenderSVG("vazia", gomock.Any()).
		Return(trending.NewTrendError(trending.ErrNothingToRender, apiErrors.ErrNothingToRender, "vazia", "weekly"))

	claims := authenticating.AnonymousClaims()

	rec := serve(t, TrendViews(service), claims, http.MethodGet, "/v1/trend-views/abc/chart.svg", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<svg/>", rec.Body.String())

	rec = serve(t, TrendViews(service), claims, http.MethodGet, "/v1/trend-views/vazia/chart.svg", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestUnmountTrendView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockTrendViewer(ctrl)
	service.EXPECT().Unmount("abc").Return(nil)

	rec := serve(t, TrendViews(service), authenticating.AnonymousClaims(), http.MethodDelete, "/v1/trend-views/abc", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockTrendViewer(ctrl)
	service.EXPECT().Series(gomock.Any(), domain.DisplayModeWeekly).
		Return(domain.Series{{Week: "W1", Revenue: 70000, Spend: 45000, ROAS: 1.56}}, nil)
	service.EXPECT().Series(gomock.Any(), domain.DisplayModeDaily).
		Return(nil, trending.NewTrendError(trending.ErrSeriesUnavailable, apiErrors.ErrExternalService, "", "timeout"))

	claims := authenticating.AnonymousClaims()

	rec := serve(t, TrendViews(service), claims, http.MethodGet, "/v1/series/weekly", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mode":"weekly","axis_key":"week","points":[{"week":"W1","revenue":70000,"spend":45000,"roas":1.56}]}`, rec.Body.String())

	rec = serve(t, TrendViews(service), claims, http.MethodGet, "/v1/series/daily", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = serve(t, TrendViews(service), claims, http.MethodGet, "/v1/series/hourly", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrendViewsRequireScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockTrendViewer(ctrl)
	claims := &domain.Claims{ClientID: "relatorios", Scopes: []string{domain.ScopeCron}}

	rec := serve(t, TrendViews(service), claims, http.MethodPost, "/v1/trend-views", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(t, TrendViews(service), nil, http.MethodGet, "/v1/trend-views/abc", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

type fakeJob struct {
	triggered int
	status    map[string]any
}

func (f *fakeJob) TriggerManualSync()        { f.triggered++ }
func (f *fakeJob) GetStatus() map[string]any { return f.status }

func TestCronJobs(t *testing.T) {
	refresh := &fakeJob{status: map[string]any{"sync_enabled": true}}
	sweep := &fakeJob{status: map[string]any{"sweep_enabled": false}}
	routes := CronJobs(CronJobServices{SeriesRefreshService: refresh, ViewSweepService: sweep})
	claims := authenticating.AnonymousClaims()

	rec := serve(t, routes, claims, http.MethodPost, "/v1/cron/series-refresh/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, refresh.triggered)

	rec = serve(t, routes, claims, http.MethodPost, "/v1/cron/all/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, refresh.triggered)
	assert.Equal(t, 1, sweep.triggered)

	rec = serve(t, routes, claims, http.MethodPost, "/v1/cron/meta/run", "")
	assert.Equal(t, apiErrors.ErrUnknownCronJob, decodeError(t, rec).Code)

	rec = serve(t, routes, claims, http.MethodGet, "/v1/cron/status", "")
	assert.JSONEq(t, `{"series-refresh":{"sync_enabled":true},"view-sweep":{"sweep_enabled":false}}`, rec.Body.String())

	rec = serve(t, CronJobs(CronJobServices{}), claims, http.MethodPost, "/v1/cron/view-sweep/run", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = serve(t, routes, &domain.Claims{Scopes: []string{domain.ScopeViews}}, http.MethodGet, "/v1/cron/status", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(nil), nil, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
