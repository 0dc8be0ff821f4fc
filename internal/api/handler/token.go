package handler

import (
	"net/http"

	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/trend-dashboard-api/pkg/log"
)

func IssueToken(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.IssueToken(req.ClientID, req.ClientSecret)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id": req.ClientID,
				"error":     err.Error(),
			}).Warn("token: request rejected")
			apiErrors.WriteError(w, authenticating.CodeFor(err), err.Error(), nil)
			return
		}

		logger.WithField("client_id", req.ClientID).Info("token: issued")
		writeJSON(w, http.StatusOK, token)
	})
}
