package domain

import "time"

// Selection é uma escolha de (ano, mês) vinda da camada de apresentação
type Selection struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
}

// PeriodFigures são os valores de um período selecionado
type PeriodFigures struct {
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	MonthName  string     `json:"month_name"`
	Revenue    float64    `json:"revenue"`
	YTDRevenue float64    `json:"ytd_revenue"`
}

// PeriodComparison compara dois períodos. As variações são percentuais em relação ao baseline.
type PeriodComparison struct {
	Current       PeriodFigures `json:"current"`
	Baseline      PeriodFigures `json:"baseline"`
	RevenueChange float64       `json:"revenue_change"`
	YTDChange     float64       `json:"ytd_change"`
}

// MetricValue carrega um valor escalar ou o motivo de ele não existir
type MetricValue struct {
	Value  *float64 `json:"value"`
	Reason string   `json:"reason,omitempty"`
}

// Summary concentra os KPIs gerais do dataset
type Summary struct {
	TotalRevenue           float64     `json:"total_revenue"`
	Orders                 int         `json:"orders"`
	Customers              int         `json:"customers"`
	AverageOrderValue      MetricValue `json:"average_order_value"`
	ReturningCustomerRatio MetricValue `json:"returning_customer_ratio"`
	Records                int         `json:"records"`
	Rejected               int         `json:"rejected"`
	From                   *time.Time  `json:"from,omitempty"`
	To                     *time.Time  `json:"to,omitempty"`
}
