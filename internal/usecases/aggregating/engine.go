// Package aggregating implementa o motor de agregação das visões do dashboard
package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Engine calcula visões a partir de um catálogo de definições.
// Todas as operações são funções puras dos registros recebidos.
type Engine struct {
	views  []domain.ViewDefinition
	byName map[string]domain.ViewDefinition
}

// Acumulador de um grupo
type groupAccumulator struct {
	key     domain.GroupKey
	revenue float64
	orders  map[string]struct{}
}

// NewEngine cria o motor. Sem definições, usa o catálogo padrão.
func NewEngine(views ...domain.ViewDefinition) (*Engine, error) {
	if len(views) == 0 {
		views = DefaultCatalogue()
	}

	byName := make(map[string]domain.ViewDefinition, len(views))
	for _, view := range views {
		if err := validateView(view); err != nil {
			return nil, err
		}
		if _, exists := byName[view.Name]; exists {
			return nil, NewAggregationError(ErrInvalidView, view.Name, "nome duplicado no catálogo")
		}
		byName[view.Name] = view
	}

	return &Engine{
		views:  views,
		byName: byName,
	}, nil
}

// Views retorna o catálogo na ordem de publicação
func (e *Engine) Views() []domain.ViewDefinition {
	out := make([]domain.ViewDefinition, len(e.views))
	copy(out, e.views)
	return out
}

// View retorna a definição de uma visão pelo nome
func (e *Engine) View(name string) (domain.ViewDefinition, error) {
	view, ok := e.byName[name]
	if !ok {
		return domain.ViewDefinition{}, NewAggregationError(ErrUnknownView, name, "")
	}
	return view, nil
}

// Compute calcula a visão nomeada
func (e *Engine) Compute(name string, records []domain.SaleRecord) (*domain.AggregateTable, error) {
	view, err := e.View(name)
	if err != nil {
		return nil, err
	}
	return ComputeView(view, records), nil
}

// ComputeView executa o pipeline agrupar → reduzir → filtrar → ordenar → limitar.
// A definição precisa ter sido validada.
func ComputeView(view domain.ViewDefinition, records []domain.SaleRecord) *domain.AggregateTable {
	if view.FullYearOnly {
		records = FilterFullYears(records)
	}

	groups := make(map[domain.GroupKey]*groupAccumulator)
	order := make([]domain.GroupKey, 0)

	for _, record := range records {
		key := groupKey(view.GroupBy, record)

		acc, exists := groups[key]
		if !exists {
			acc = &groupAccumulator{key: key, orders: make(map[string]struct{})}
			groups[key] = acc
			order = append(order, key)
		}

		acc.revenue += record.GrossRevenue
		if record.OrderID != "" {
			acc.orders[record.OrderID] = struct{}{}
		}
	}

	rows := make([]domain.AggregateRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, buildRow(view, groups[key]))
	}

	sortRows(rows, view.Sort)

	if view.Limit > 0 && len(rows) > view.Limit {
		rows = rows[:view.Limit]
	}

	return &domain.AggregateTable{
		View:    view.Name,
		Title:   view.Title,
		Columns: view.Columns(),
		Rows:    rows,
	}
}

// FilterFullYears mantém apenas registros de anos com os 12 meses representados
func FilterFullYears(records []domain.SaleRecord) []domain.SaleRecord {
	monthsByYear := make(map[int]map[time.Month]struct{})
	for _, record := range records {
		months, ok := monthsByYear[record.Year]
		if !ok {
			months = make(map[time.Month]struct{})
			monthsByYear[record.Year] = months
		}
		months[record.Month.Month()] = struct{}{}
	}

	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if len(monthsByYear[record.Year]) >= 12 {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func groupKey(dimensions []domain.Dimension, record domain.SaleRecord) domain.GroupKey {
	var key domain.GroupKey
	for _, dim := range dimensions {
		switch dim {
		case domain.DimensionYear:
			key.Year = record.Year
		case domain.DimensionMonth:
			key.Month = record.Month
		case domain.DimensionCategory:
			key.Label = record.CategoryPath
		case domain.DimensionSecondaryCategory:
			key.Label = record.SecondaryCategory
		case domain.DimensionProduct:
			key.Label = record.ProductName
		case domain.DimensionCounty:
			key.Label = record.CountyOrUnknown()
		}
	}
	return key
}

func buildRow(view domain.ViewDefinition, acc *groupAccumulator) domain.AggregateRow {
	row := domain.AggregateRow{
		Year:  acc.key.Year,
		Label: acc.key.Label,
	}

	if !acc.key.Month.IsZero() {
		month := acc.key.Month
		row.Month = &month
		row.MonthName = month.Month().String()
	}

	orders := len(acc.orders)
	for _, measure := range view.Measures {
		switch measure {
		case domain.MeasureRevenue:
			row.Revenue = acc.revenue
		case domain.MeasureOrders:
			row.Orders = orders
		case domain.MeasureAverageOrderValue:
			// Sem pedidos a média fica nula, nunca NaN ou infinito
			if orders > 0 {
				aov := acc.revenue / float64(orders)
				row.AverageOrderValue = &aov
			}
		}
	}

	return row
}

func chronologicalLess(a, b domain.AggregateRow) (less bool, equal bool) {
	if a.Year != b.Year {
		return a.Year < b.Year, false
	}
	am, bm := monthOf(a), monthOf(b)
	if !am.Equal(bm) {
		return am.Before(bm), false
	}
	return false, true
}

func monthOf(row domain.AggregateRow) time.Time {
	if row.Month == nil {
		return time.Time{}
	}
	return *row.Month
}

func sortRows(rows []domain.AggregateRow, policy domain.SortPolicy) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]

		switch policy {
		case domain.SortRevenueDesc:
			if a.Revenue != b.Revenue {
				return a.Revenue > b.Revenue
			}
			if a.Label != b.Label {
				return a.Label < b.Label
			}
			less, _ := chronologicalLess(a, b)
			return less

		default:
			less, equal := chronologicalLess(a, b)
			if !equal {
				return less
			}
			return a.Label < b.Label
		}
	})
}

func validateView(view domain.ViewDefinition) error {
	if view.Name == "" {
		return NewAggregationError(ErrInvalidView, "", "visão sem nome")
	}
	if len(view.GroupBy) == 0 {
		return NewAggregationError(ErrInvalidView, view.Name, "nenhuma dimensão de agrupamento")
	}
	if len(view.Measures) == 0 {
		return NewAggregationError(ErrInvalidView, view.Name, "nenhuma medida")
	}

	labels := 0
	seen := make(map[domain.Dimension]bool, len(view.GroupBy))
	for _, dim := range view.GroupBy {
		if seen[dim] {
			return NewAggregationError(ErrInvalidView, view.Name, fmt.Sprintf("dimensão repetida: %s", dim))
		}
		seen[dim] = true

		switch dim {
		case domain.DimensionYear, domain.DimensionMonth:
		case domain.DimensionCategory, domain.DimensionSecondaryCategory, domain.DimensionProduct, domain.DimensionCounty:
			labels++
		default:
			return NewAggregationError(ErrInvalidView, view.Name, fmt.Sprintf("dimensão desconhecida: %s", dim))
		}
	}
	if labels > 1 {
		return NewAggregationError(ErrInvalidView, view.Name, "apenas uma dimensão textual por visão")
	}

	for _, measure := range view.Measures {
		switch measure {
		case domain.MeasureRevenue, domain.MeasureOrders, domain.MeasureAverageOrderValue:
		default:
			return NewAggregationError(ErrInvalidView, view.Name, fmt.Sprintf("medida desconhecida: %s", measure))
		}
	}

	switch view.Sort {
	case domain.SortChronological, domain.SortRevenueDesc:
	default:
		return NewAggregationError(ErrInvalidView, view.Name, fmt.Sprintf("ordenação desconhecida: %s", view.Sort))
	}

	return nil
}
