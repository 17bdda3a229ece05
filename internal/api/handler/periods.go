package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetAvailablePeriods retorna os anos e meses presentes no dataset
func GetAvailablePeriods(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithField("dataset_periods", len(periods.Periods)).Debug("periods: períodos disponíveis")

		writeJSON(w, logger, http.StatusOK, periods)
	})
}
