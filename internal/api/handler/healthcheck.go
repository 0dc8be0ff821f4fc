package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type healthcheckResponse struct {
	Status       string    `json:"status"`
	Time         time.Time `json:"time"`
	MountedViews int       `json:"mounted_views"`
}

type viewCounter interface {
	Count() int
}

func HealthcheckHandler(views viewCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{Status: "ok", Time: time.Now()}
		if views != nil {
			response.MountedViews = views.Count()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
