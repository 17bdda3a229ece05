package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const (
	MetricAverageOrderValue      = "average_order_value"
	MetricReturningCustomerRatio = "returning_customer_ratio"
)

type MetricResponse struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// GetSummary retorna os KPIs gerais
func GetSummary(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.GetSummary(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, summary)
	})
}

func GetAverageOrderValue(service dashboarding.Dashboard) http.Handler {
	return metricHandler(MetricAverageOrderValue, service.GetAverageOrderValue)
}

func GetReturningCustomerRatio(service dashboarding.Dashboard) http.Handler {
	return metricHandler(MetricReturningCustomerRatio, service.GetReturningCustomerRatio)
}

// metricHandler responde uma métrica escalar. Razão indefinida vira 422 (DATA_001).
func metricHandler(metric string, compute func(context.Context) (float64, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		value, err := compute(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, MetricResponse{
			Metric: metric,
			Value:  value,
		})
	})
}
