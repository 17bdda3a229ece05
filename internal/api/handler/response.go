package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// errorCode traduz os erros de domínio para os códigos de apiErrors
func errorCode(err error) string {
	switch {
	case errors.Is(err, aggregating.ErrUnknownView):
		return apiErrors.ErrUnknownView
	case errors.Is(err, aggregating.ErrSelection):
		return apiErrors.ErrSelection
	case errors.Is(err, aggregating.ErrDivisionUndefined):
		return apiErrors.ErrDivisionUndefined
	case errors.Is(err, dashboarding.ErrDatasetUnavailable):
		return apiErrors.ErrDatasetUnavailable
	default:
		return apiErrors.ErrInternalServer
	}
}

func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	code := errorCode(err)

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.WithError(err).Error("erro ao atender requisição")
	} else {
		logger.WithError(err).Warn("requisição rejeitada")
	}

	message := err.Error()
	if code == apiErrors.ErrInternalServer {
		message = "Erro interno no servidor"
	}

	apiErrors.WriteError(w, code, message, nil)
}
