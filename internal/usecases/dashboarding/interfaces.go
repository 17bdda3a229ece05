package dashboarding

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesSource define a origem das linhas brutas de vendas e da tabela postal
//
//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type SalesSource interface {
	// Kind identifica a origem ("file" ou "postgres")
	Kind() string
	// Load lê as linhas brutas. Não normaliza nada.
	Load(ctx context.Context) (*domain.RawInput, error)
}

// Dashboard é a fachada consumida pela camada HTTP e pelo agendador
type Dashboard interface {
	// ListViews retorna o catálogo de visões publicadas
	ListViews() []domain.ViewDefinition

	// GetView calcula uma visão do catálogo sobre o snapshot atual
	GetView(ctx context.Context, name string) (*domain.AggregateTable, error)

	// GetSummary retorna os KPIs gerais do snapshot atual
	GetSummary(ctx context.Context) (*domain.Summary, error)

	GetAverageOrderValue(ctx context.Context) (float64, error)
	GetReturningCustomerRatio(ctx context.Context) (float64, error)

	// ComparePeriods compara receita do mês e acumulada no ano entre duas seleções
	ComparePeriods(ctx context.Context, current, baseline domain.Selection) (*domain.PeriodComparison, error)

	// GetAvailablePeriods retorna os anos e meses presentes no dataset
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)

	// GetStatus descreve o snapshot publicado sem disparar carga
	GetStatus() domain.DatasetStatus

	// Reload reconstrói o snapshot. Em caso de falha o snapshot anterior continua publicado.
	Reload(ctx context.Context) (domain.DatasetStatus, error)
}
