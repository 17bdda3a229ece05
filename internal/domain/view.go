package domain

import (
	"bytes"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Coluna derivada publicada junto com a dimensão month
const ColumnMonthName = "month_name"

// Dimension é uma chave de agrupamento
type Dimension string

const (
	DimensionMonth             Dimension = "month"
	DimensionYear              Dimension = "year"
	DimensionCategory          Dimension = "category"
	DimensionSecondaryCategory Dimension = "secondary_category"
	DimensionProduct           Dimension = "product"
	DimensionCounty            Dimension = "county"
)

// Measure é uma medida calculada por grupo
type Measure string

const (
	MeasureRevenue           Measure = "revenue"
	MeasureOrders            Measure = "orders"
	MeasureAverageOrderValue Measure = "average_order_value"
)

// SortPolicy define a ordenação das linhas de uma visão
type SortPolicy string

const (
	SortChronological SortPolicy = "chronological"
	SortRevenueDesc   SortPolicy = "revenue_desc"
)

// Nomes das visões publicadas. São parte do contrato com a camada de apresentação.
const (
	ViewMonthlyTotals           = "monthly-totals"
	ViewYearlyTotals            = "yearly-totals"
	ViewMonthlyByYear           = "monthly-by-year"
	ViewCategoryTotals          = "category-totals"
	ViewSecondaryCategoryTotals = "secondary-category-totals"
	ViewProductTotals           = "product-totals"
	ViewCountyTotals            = "county-totals"
	ViewAnnualCategoryTrend     = "annual-category-trend"
	ViewMonthlyCategoryTrend    = "monthly-category-trend"
)

// ViewDefinition parametriza uma visão agregada
type ViewDefinition struct {
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	GroupBy      []Dimension `json:"group_by"`
	Measures     []Measure   `json:"measures"`
	Sort         SortPolicy  `json:"sort"`
	Limit        int         `json:"limit,omitempty"`
	FullYearOnly bool        `json:"full_year_only,omitempty"`
}

// Columns retorna as colunas da tabela na ordem estável: chaves e depois medidas
func (v ViewDefinition) Columns() []string {
	columns := make([]string, 0, len(v.GroupBy)+len(v.Measures)+1)
	for _, dim := range v.GroupBy {
		columns = append(columns, string(dim))
		if dim == DimensionMonth {
			columns = append(columns, ColumnMonthName)
		}
	}
	for _, measure := range v.Measures {
		columns = append(columns, string(measure))
	}
	return columns
}

// GroupKey identifica uma linha agregada. É comparável para ser usado como chave de mapa.
type GroupKey struct {
	Year  int
	Month time.Time
	Label string
}

// AggregateRow é uma linha de uma tabela agregada. Campos de chave ausentes na visão ficam vazios.
// A dimensão textual da visão (categoria, produto, condado) fica em Label.
type AggregateRow struct {
	Year              int        `json:"year,omitempty"`
	Month             *time.Time `json:"month,omitempty"`
	MonthName         string     `json:"month_name,omitempty"`
	Label             string     `json:"label,omitempty"`
	Revenue           float64    `json:"revenue"`
	Orders            int        `json:"orders"`
	AverageOrderValue *float64   `json:"average_order_value"`
}

// Value retorna o valor da linha publicado sob o nome de coluna informado
func (r AggregateRow) Value(column string) (any, bool) {
	switch column {
	case string(DimensionYear):
		return r.Year, true
	case string(DimensionMonth):
		return r.Month, true
	case ColumnMonthName:
		return r.MonthName, true
	case string(DimensionCategory), string(DimensionSecondaryCategory),
		string(DimensionProduct), string(DimensionCounty):
		return r.Label, true
	case string(MeasureRevenue):
		return r.Revenue, true
	case string(MeasureOrders):
		return r.Orders, true
	case string(MeasureAverageOrderValue):
		return r.AverageOrderValue, true
	}
	return nil, false
}

// AggregateTable é o resultado de uma visão
type AggregateTable struct {
	View    string         `json:"view"`
	Title   string         `json:"title"`
	Columns []string       `json:"columns"`
	Rows    []AggregateRow `json:"rows"`
}

// MarshalJSON publica cada linha como objeto com exatamente as chaves de Columns, na mesma ordem.
// Medidas sem valor saem como null.
func (t AggregateTable) MarshalJSON() ([]byte, error) {
	rows := make([]tableRow, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = tableRow{columns: t.Columns, row: row}
	}

	return json.Marshal(struct {
		View    string     `json:"view"`
		Title   string     `json:"title"`
		Columns []string   `json:"columns"`
		Rows    []tableRow `json:"rows"`
	}{
		View:    t.View,
		Title:   t.Title,
		Columns: t.Columns,
		Rows:    rows,
	})
}

type tableRow struct {
	columns []string
	row     AggregateRow
}

func (r tableRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, column := range r.columns {
		value, _ := r.row.Value(column)

		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(encoded)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
