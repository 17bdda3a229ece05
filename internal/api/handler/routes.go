package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Views(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/views",
			Method:  http.MethodGet,
			Handler: ListViews(service),
		},
		{
			Path:    "/v1/views/:name",
			Method:  http.MethodGet,
			Handler: GetView(service),
		},
	}
}

func Metrics(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/metrics/average-order-value",
			Method:  http.MethodGet,
			Handler: GetAverageOrderValue(service),
		},
		{
			Path:    "/v1/metrics/returning-customers",
			Method:  http.MethodGet,
			Handler: GetReturningCustomerRatio(service),
		},
		{
			Path:    "/v1/comparison",
			Method:  http.MethodGet,
			Handler: ComparePeriods(service),
		},
		{
			Path:    "/v1/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func Dataset(service dashboarding.Dashboard, refresh RefreshScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(service, refresh),
		},
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(service, refresh),
		},
	}
}
