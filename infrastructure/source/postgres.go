package source

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// PostgresSource lê as linhas importadas por cmd/import. Os valores continuam em texto
// e passam pela mesma normalização do arquivo.
type PostgresSource struct {
	saleRecordRepo repository.SaleRecordRepository
	postalCodeRepo repository.PostalCodeRepository
}

func NewPostgresSource(
	saleRecordRepo repository.SaleRecordRepository,
	postalCodeRepo repository.PostalCodeRepository,
) *PostgresSource {
	return &PostgresSource{
		saleRecordRepo: saleRecordRepo,
		postalCodeRepo: postalCodeRepo,
	}
}

func (s *PostgresSource) Kind() string {
	return domain.SourcePostgres
}

func (s *PostgresSource) Load(ctx context.Context) (*domain.RawInput, error) {
	input := &domain.RawInput{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.saleRecordRepo.ListRawRows(ctx)
		if err != nil {
			return errors.Wrap(err, "erro ao buscar registros de venda")
		}
		input.Sales = rows
		return nil
	})

	g.Go(func() error {
		codes, err := s.postalCodeRepo.ListPostalCodes(ctx)
		if err != nil {
			return errors.Wrap(err, "erro ao buscar códigos postais")
		}
		input.Postal = codes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"source":               domain.SourcePostgres,
		"records":              len(input.Sales),
		"dataset_postal_codes": len(input.Postal),
	}).Info("postgres-source: registros carregados")

	return input, nil
}
