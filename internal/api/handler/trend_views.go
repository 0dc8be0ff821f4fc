package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/trending"
	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/trend-dashboard-api/pkg/log"
)

type SetModeRequest struct {
	Mode string `json:"mode"`
}

func MountTrendView(service trending.TrendViewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		state, err := service.Mount(r.Context())
		if err != nil {
			writeTrendError(w, logger, "", err)
			return
		}

		logger.WithField("view_id", state.ID).Info("trend-views: view mounted")
		w.Header().Set("Location", "/v1/trend-views/"+state.ID)
		writeJSON(w, http.StatusCreated, state)
	})
}

func GetTrendView(service trending.TrendViewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		chart, err := service.Render(id)
		if err != nil {
			writeTrendError(w, logger, id, err)
			return
		}

		logger.WithFields(log.Fields{
			"view_id": id,
			"mode":    chart.Mode.String(),
			"points":  len(chart.Points),
		}).Debug("trend-views: view rendered")

		writeJSON(w, http.StatusOK, chart)
	})
}

func SetTrendViewMode(service trending.TrendViewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SetModeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Mode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo mode é obrigatório", nil)
			return
		}

		mode, err := domain.ParseDisplayMode(req.Mode)
		if err != nil {
			logger.WithFields(log.Fields{
				"view_id": id,
				"mode":    req.Mode,
			}).Warn("trend-views: invalid display mode")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{"accepted": domain.DisplayModes})
			return
		}

		state, err := service.SetMode(id, mode)
		if err != nil {
			writeTrendError(w, logger, id, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	})
}

func GetTrendViewTooltip(service trending.TrendViewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		raw := r.URL.Query().Get("index")
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro index é obrigatório", nil)
			return
		}

		index, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro index deve ser inteiro", nil)
			return
		}

		tooltip, err := service.Tooltip(id, index)
		if err != nil {
			writeTrendError(w, logger, id, err)
			return
		}

		writeJSON(w, http.StatusOK, tooltip)
	})
}

func GetTrendViewChart(service trending.TrendViewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var buf bytes.Buffer
		if err := service.RenderSVG(id, &buf); err != nil {
			writeTrendError(w, logger, id, err)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("trend-views: error writing chart")
		}
	})
}

func UnmountTrendView(service trending.TrendViewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Unmount(id); err != nil {
			writeTrendError(w, logger, id, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GetSeries(service trending.TrendViewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		raw := httprouter.ParamsFromContext(r.Context()).ByName("mode")

		mode, err := domain.ParseDisplayMode(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{"accepted": domain.DisplayModes})
			return
		}

		series, err := service.Series(r.Context(), mode)
		if err != nil {
			writeTrendError(w, logger, "", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"mode":     mode,
			"axis_key": trending.SelectAxisKey(mode),
			"points":   series,
		})
	})
}
