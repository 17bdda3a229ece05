package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// AverageOrderValue = receita total / pedidos distintos
func AverageOrderValue(records []domain.SaleRecord) (float64, error) {
	revenue, orders := revenueAndOrders(records)
	if orders == 0 {
		return 0, NewAggregationError(ErrDivisionUndefined, "average_order_value", "nenhum pedido")
	}
	return revenue / float64(orders), nil
}

// ReturningCustomerRatio = clientes com 2+ pedidos distintos / clientes distintos
func ReturningCustomerRatio(records []domain.SaleRecord) (float64, error) {
	ordersByCustomer := make(map[string]map[string]struct{})
	for _, record := range records {
		if record.CustomerHash == "" {
			continue
		}
		orders, ok := ordersByCustomer[record.CustomerHash]
		if !ok {
			orders = make(map[string]struct{})
			ordersByCustomer[record.CustomerHash] = orders
		}
		if record.OrderID != "" {
			orders[record.OrderID] = struct{}{}
		}
	}

	if len(ordersByCustomer) == 0 {
		return 0, NewAggregationError(ErrDivisionUndefined, "returning_customer_ratio", "nenhum cliente")
	}

	returning := 0
	for _, orders := range ordersByCustomer {
		if len(orders) >= 2 {
			returning++
		}
	}

	return float64(returning) / float64(len(ordersByCustomer)), nil
}

// PercentChange calcula a variação percentual de baseline para current.
// Baseline zero resulta em 0; baselines negativos seguem a fórmula comum.
func PercentChange(baseline, current float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}

// Summarize calcula os KPIs gerais. Razões indefinidas viram valor nulo com motivo.
func Summarize(dataset *domain.Dataset) domain.Summary {
	records := dataset.Records
	revenue, orders := revenueAndOrders(records)

	summary := domain.Summary{
		TotalRevenue: revenue,
		Orders:       orders,
		Customers:    distinctCustomers(records),
		Records:      len(records),
		Rejected:     len(dataset.Rejected),
	}

	summary.AverageOrderValue = metricValue(AverageOrderValue(records))
	summary.ReturningCustomerRatio = metricValue(ReturningCustomerRatio(records))

	for _, record := range records {
		createdAt := record.CreatedAt
		if summary.From == nil || createdAt.Before(*summary.From) {
			summary.From = &createdAt
		}
		if summary.To == nil || createdAt.After(*summary.To) {
			summary.To = &createdAt
		}
	}

	return summary
}

// AvailablePeriods lista os anos e pares mês/ano presentes nos registros
func AvailablePeriods(records []domain.SaleRecord) *domain.AvailablePeriods {
	months := make(map[time.Time]struct{})
	years := make(map[int]struct{})
	for _, record := range records {
		months[record.Month] = struct{}{}
		years[record.Year] = struct{}{}
	}

	sortedMonths := make([]time.Time, 0, len(months))
	for month := range months {
		sortedMonths = append(sortedMonths, month)
	}
	sort.Slice(sortedMonths, func(i, j int) bool { return sortedMonths[i].Before(sortedMonths[j]) })

	result := &domain.AvailablePeriods{
		Periods: make([]string, 0, len(sortedMonths)),
		Years:   make([]int, 0, len(years)),
		Months:  make([]string, 0, 12),
	}

	seenMonthNames := make(map[time.Month]bool)
	for _, month := range sortedMonths {
		result.Periods = append(result.Periods, month.Format("01-2006"))
		seenMonthNames[month.Month()] = true
	}

	for year := range years {
		result.Years = append(result.Years, year)
	}
	sort.Ints(result.Years)

	for m := time.January; m <= time.December; m++ {
		if seenMonthNames[m] {
			result.Months = append(result.Months, m.String())
		}
	}

	return result
}

func revenueAndOrders(records []domain.SaleRecord) (float64, int) {
	revenue := 0.0
	orders := make(map[string]struct{})
	for _, record := range records {
		revenue += record.GrossRevenue
		if record.OrderID != "" {
			orders[record.OrderID] = struct{}{}
		}
	}
	return revenue, len(orders)
}

func distinctCustomers(records []domain.SaleRecord) int {
	customers := make(map[string]struct{})
	for _, record := range records {
		if record.CustomerHash != "" {
			customers[record.CustomerHash] = struct{}{}
		}
	}
	return len(customers)
}

func metricValue(value float64, err error) domain.MetricValue {
	if err != nil {
		return domain.MetricValue{Reason: err.Error()}
	}
	return domain.MetricValue{Value: &value}
}

func formatSelection(selection domain.Selection) string {
	return fmt.Sprintf("%s %d", selection.Month, selection.Year)
}
