package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ListViews retorna o catálogo de visões
func ListViews(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, service.ListViews())
	})
}

// GetView calcula uma visão do catálogo pelo nome
func GetView(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger := log.ForContext(r.Context()).WithField("view", name)

		table, err := service.GetView(r.Context(), name)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithField("records", len(table.Rows)).Debug("views: visão calculada")

		writeJSON(w, logger, http.StatusOK, table)
	})
}
