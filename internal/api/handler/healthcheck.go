package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type HealthcheckResponse struct {
	Status        string    `json:"status"`
	Time          time.Time `json:"time"`
	DatasetLoaded bool      `json:"dataset_loaded"`
}

// HealthcheckHandler responde 200 mesmo sem dataset carregado; o carregamento é informado no corpo
func HealthcheckHandler(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, HealthcheckResponse{
			Status:        "ok",
			Time:          time.Now().UTC(),
			DatasetLoaded: service.GetStatus().Loaded,
		})
	})
}
