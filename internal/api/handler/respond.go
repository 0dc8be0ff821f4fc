package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/trending"
	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/trend-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa antes de escrever o status; NaN e Inf não têm representação em JSON
func writeJSON(w http.ResponseWriter, status int, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.L.WithError(err).Error("error encoding response")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao serializar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(raw, '\n')); err != nil {
		log.L.WithError(err).Warn("error writing response")
	}
}

// writeTrendError traduz erros das visões para o formato padronizado da API
func writeTrendError(w http.ResponseWriter, logger log.Logger, viewID string, err error) {
	code := trending.CodeFor(err)

	entry := logger.WithFields(log.Fields{
		"view_id": viewID,
		"code":    code,
		"error":   err.Error(),
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		entry.Error("trend-views: request failed")
	} else {
		entry.Warn("trend-views: request rejected")
	}

	var details any
	if viewID != "" {
		details = map[string]string{"view_id": viewID}
	}
	apiErrors.WriteError(w, code, err.Error(), details)
}
