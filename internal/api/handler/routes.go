package handler

import (
	"net/http"

	"github.com/vfg2006/trend-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/trending"
	"github.com/vfg2006/trend-dashboard-api/pkg/middleware"
)

func Healthcheck(service trending.TrendViewer) []router.Route {
	var views viewCounter
	if counter, ok := service.(viewCounter); ok {
		views = counter
	}

	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(views),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: IssueToken(service),
		},
	}
}

func TrendViews(service trending.TrendViewer) []router.Route {
	views := []func(http.Handler) http.Handler{middleware.RequireScope(domain.ScopeViews)}

	return []router.Route{
		{
			Path:        "/v1/trend-views",
			Method:      http.MethodPost,
			Handler:     MountTrendView(service),
			Middlewares: views,
		},
		{
			Path:        "/v1/trend-views/:id",
			Method:      http.MethodGet,
			Handler:     GetTrendView(service),
			Middlewares: views,
		},
		{
			Path:        "/v1/trend-views/:id",
			Method:      http.MethodDelete,
			Handler:     UnmountTrendView(service),
			Middlewares: views,
		},
		{
			Path:        "/v1/trend-views/:id/mode",
			Method:      http.MethodPut,
			Handler:     SetTrendViewMode(service),
			Middlewares: views,
		},
		{
			Path:        "/v1/trend-views/:id/tooltip",
			Method:      http.MethodGet,
			Handler:     GetTrendViewTooltip(service),
			Middlewares: views,
		},
		{
			Path:        "/v1/trend-views/:id/chart.svg",
			Method:      http.MethodGet,
			Handler:     GetTrendViewChart(service),
			Middlewares: views,
		},
		{
			Path:        "/v1/series/:mode",
			Method:      http.MethodGet,
			Handler:     GetSeries(service),
			Middlewares: views,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	cron := []func(http.Handler) http.Handler{middleware.RequireScope(domain.ScopeCron)}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: cron,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: cron,
		},
	}
}
