package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ComparePeriods compara duas seleções (ano, mês).
// Query: current_year, current_month, baseline_year, baseline_month.
func ComparePeriods(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		current, err := selectionFromQuery(query, "current")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		baseline, err := selectionFromQuery(query, "baseline")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		comparison, err := service.ComparePeriods(r.Context(), current, baseline)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, comparison)
	})
}

func selectionFromQuery(query url.Values, prefix string) (domain.Selection, error) {
	yearParam := prefix + "_year"
	monthParam := prefix + "_month"

	rawYear, month := query.Get(yearParam), query.Get(monthParam)
	if rawYear == "" || month == "" {
		return domain.Selection{}, fmt.Errorf("parâmetros obrigatórios: %s, %s", yearParam, monthParam)
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("valor inválido para %s: %q", yearParam, rawYear)
	}

	return domain.Selection{Year: year, Month: month}, nil
}
