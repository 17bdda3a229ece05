package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

type fakeScheduler struct {
	triggered bool
	accept    bool
}

func (f *fakeScheduler) TriggerManualSync(ctx context.Context) bool {
	f.triggered = true
	return f.accept
}

func (f *fakeScheduler) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func newTestRouter(dashboard dashboarding.Dashboard, refresh RefreshScheduler) router.Router {
	return router.New(
		router.WithRoutes(Healthcheck(dashboard)...),
		router.WithRoutes(Views(dashboard)...),
		router.WithRoutes(Metrics(dashboard)...),
		router.WithRoutes(Dataset(dashboard, refresh)...),
	)
}

func doRequest(rt http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestGetView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	march := time.Date(2021, time.March, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		view           string
		setup          func(dashboard *mocks.MockDashboard)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Visão calculada",
			view: domain.ViewMonthlyTotals,
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().
					GetView(gomock.Any(), domain.ViewMonthlyTotals).
					Return(&domain.AggregateTable{
						View:    domain.ViewMonthlyTotals,
						Columns: []string{"month", "month_name", "revenue", "orders"},
						Rows:    []domain.AggregateRow{{Month: &march, MonthName: "March", Revenue: 1000, Orders: 4}},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Visão desconhecida",
			view: "nao-existe",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().
					GetView(gomock.Any(), "nao-existe").
					Return(nil, aggregating.NewAggregationError(aggregating.ErrUnknownView, "nao-existe", ""))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "DATA_003",
		},
		{
			name: "Dataset indisponível",
			view: domain.ViewYearlyTotals,
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().
					GetView(gomock.Any(), domain.ViewYearlyTotals).
					Return(nil, fmt.Errorf("%w: arquivo ausente", dashboarding.ErrDatasetUnavailable))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "DATA_004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard := mocks.NewMockDashboard(ctrl)
			tt.setup(dashboard)

			rec := doRequest(newTestRouter(dashboard, nil), http.MethodGet, "/v1/views/"+tt.view)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.expectedCode != "" {
				var body map[string]any
				decodeBody(t, rec, &body)
				assert.Equal(t, tt.expectedCode, body["code"])
				return
			}

			var table struct {
				Columns []string         `json:"columns"`
				Rows    []map[string]any `json:"rows"`
			}
			decodeBody(t, rec, &table)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, []string{"month", "month_name", "revenue", "orders"}, table.Columns)
			assert.Equal(t, map[string]any{
				"month":      "2021-03-31T00:00:00Z",
				"month_name": "March",
				"revenue":    1000.0,
				"orders":     4.0,
			}, table.Rows[0])
		})
	}
}

func TestListViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboard := mocks.NewMockDashboard(ctrl)
	dashboard.EXPECT().ListViews().Return(aggregating.DefaultCatalogue())

	rec := doRequest(newTestRouter(dashboard, nil), http.MethodGet, "/v1/views")
	assert.Equal(t, http.StatusOK, rec.Code)

	var views []domain.ViewDefinition
	decodeBody(t, rec, &views)
	assert.Len(t, views, len(aggregating.DefaultCatalogue()))
}

func TestMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		path           string
		setup          func(dashboard *mocks.MockDashboard)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Ticket médio",
			path: "/v1/metrics/average-order-value",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().GetAverageOrderValue(gomock.Any()).Return(250.0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"value":250`,
		},
		{
			name: "Ticket médio sem pedidos",
			path: "/v1/metrics/average-order-value",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().
					GetAverageOrderValue(gomock.Any()).
					Return(0.0, aggregating.NewAggregationError(aggregating.ErrDivisionUndefined, "average_order_value", ""))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "DATA_001",
		},
		{
			name: "Clientes recorrentes",
			path: "/v1/metrics/returning-customers",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().GetReturningCustomerRatio(gomock.Any()).Return(0.3, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"metric":"returning_customer_ratio","value":0.3`,
		},
		{
			name: "Resumo",
			path: "/v1/metrics/summary",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().GetSummary(gomock.Any()).Return(&domain.Summary{TotalRevenue: 1500, Orders: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_revenue":1500`,
		},
		{
			name: "Períodos disponíveis",
			path: "/v1/periods",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().GetAvailablePeriods(gomock.Any()).Return(&domain.AvailablePeriods{
					Periods: []string{"03-2021"},
					Years:   []int{2021},
					Months:  []string{"March"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"03-2021"`,
		},
		{
			name: "Erro inesperado não vaza detalhes",
			path: "/v1/metrics/summary",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().GetSummary(gomock.Any()).Return(nil, fmt.Errorf("falha interna"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "SRV_001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard := mocks.NewMockDashboard(ctrl)
			tt.setup(dashboard)

			rec := doRequest(newTestRouter(dashboard, nil), http.MethodGet, tt.path)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "falha interna")
		})
	}
}

func TestComparePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		query          string
		setup          func(dashboard *mocks.MockDashboard)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Comparação válida",
			query: "current_year=2021&current_month=April&baseline_year=2020&baseline_month=apr",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().
					ComparePeriods(gomock.Any(),
						domain.Selection{Year: 2021, Month: "April"},
						domain.Selection{Year: 2020, Month: "apr"},
					).
					Return(&domain.PeriodComparison{RevenueChange: -25}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"revenue_change":-25`,
		},
		{
			name:           "Parâmetros ausentes",
			query:          "current_year=2021&current_month=April",
			setup:          func(dashboard *mocks.MockDashboard) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "baseline_year",
		},
		{
			name:           "Ano não numérico",
			query:          "current_year=abc&current_month=April&baseline_year=2020&baseline_month=4",
			setup:          func(dashboard *mocks.MockDashboard) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VAL_003",
		},
		{
			name:  "Ano inexistente no dataset",
			query: "current_year=1999&current_month=April&baseline_year=2020&baseline_month=4",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().
					ComparePeriods(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, aggregating.NewAggregationError(aggregating.ErrSelection, "1999-April", "ano ausente no dataset"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "DATA_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard := mocks.NewMockDashboard(ctrl)
			tt.setup(dashboard)

			rec := doRequest(newTestRouter(dashboard, nil), http.MethodGet, "/v1/comparison?"+tt.query)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestDatasetEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadedAt := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	loaded := domain.DatasetStatus{Loaded: true, Source: domain.SourceFile, LoadedAt: &loadedAt, Records: 10}

	t.Run("Status inclui o agendador", func(t *testing.T) {
		dashboard := mocks.NewMockDashboard(ctrl)
		dashboard.EXPECT().GetStatus().Return(loaded)

		rec := doRequest(newTestRouter(dashboard, &fakeScheduler{}), http.MethodGet, "/v1/dataset/status")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"records":10`)
		assert.Contains(t, rec.Body.String(), `"scheduler":{"sync_enabled":true}`)
	})

	t.Run("Recarga síncrona", func(t *testing.T) {
		dashboard := mocks.NewMockDashboard(ctrl)
		dashboard.EXPECT().Reload(gomock.Any()).Return(loaded, nil)

		rec := doRequest(newTestRouter(dashboard, nil), http.MethodPost, "/v1/dataset/reload")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"loaded":true`)
	})

	t.Run("Recarga com falha mantém snapshot e responde 503", func(t *testing.T) {
		dashboard := mocks.NewMockDashboard(ctrl)
		dashboard.EXPECT().
			Reload(gomock.Any()).
			Return(loaded, fmt.Errorf("%w: colunas ausentes", dashboarding.ErrDatasetUnavailable))

		rec := doRequest(newTestRouter(dashboard, nil), http.MethodPost, "/v1/dataset/reload")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "DATA_004")
		assert.Contains(t, rec.Body.String(), `"records":10`)
	})

	t.Run("Recarga assíncrona", func(t *testing.T) {
		scheduler := &fakeScheduler{accept: true}
		rec := doRequest(newTestRouter(mocks.NewMockDashboard(ctrl), scheduler), http.MethodPost, "/v1/dataset/reload?async=true")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.True(t, scheduler.triggered)
	})

	t.Run("Recarga assíncrona já em andamento", func(t *testing.T) {
		scheduler := &fakeScheduler{accept: false}
		rec := doRequest(newTestRouter(mocks.NewMockDashboard(ctrl), scheduler), http.MethodPost, "/v1/dataset/reload?async=true")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "DATA_005")
	})
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboard := mocks.NewMockDashboard(ctrl)
	dashboard.EXPECT().GetStatus().Return(domain.DatasetStatus{})

	rec := doRequest(newTestRouter(dashboard, nil), http.MethodGet, "/healthcheck")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"dataset_loaded":false`))
}
