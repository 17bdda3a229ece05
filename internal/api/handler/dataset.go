package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// RefreshScheduler é o agendador de recarga exposto para o endpoint de status
type RefreshScheduler interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

type DatasetStatusResponse struct {
	domain.DatasetStatus
	Scheduler map[string]any `json:"scheduler,omitempty"`
}

// GetDatasetStatus retorna o estado do snapshot e do agendador
func GetDatasetStatus(service dashboarding.Dashboard, refresh RefreshScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := DatasetStatusResponse{DatasetStatus: service.GetStatus()}
		if refresh != nil {
			response.Scheduler = refresh.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, response)
	})
}

// ReloadDataset recarrega o dataset. Com ?async=true a recarga roda em segundo plano (202).
func ReloadDataset(service dashboarding.Dashboard, refresh RefreshScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if r.URL.Query().Get("async") == "true" && refresh != nil {
			if !refresh.TriggerManualSync(r.Context()) {
				apiErrors.WriteError(w, apiErrors.ErrReloadInProgress, "Recarga do dataset já em andamento", nil)
				return
			}

			writeJSON(w, logger, http.StatusAccepted, map[string]string{
				"message": "Recarga do dataset iniciada",
			})
			return
		}

		status, err := service.Reload(r.Context())
		if err != nil {
			logger.WithError(err).Error("dataset: falha na recarga, snapshot anterior mantido")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, err.Error(), status)
			return
		}

		logger.WithFields(log.Fields{
			"records":  status.Records,
			"rejected": status.RejectedCount,
		}).Info("dataset: recarga concluída")

		writeJSON(w, logger, http.StatusOK, status)
	})
}
