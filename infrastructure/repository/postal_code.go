package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=postal_code.go -destination=mocks/postal_code.go -package=mocks
type PostalCodeRepository interface {
	ListPostalCodes(ctx context.Context) ([]domain.PostalCode, error)
	Upsert(ctx context.Context, codes []domain.PostalCode) (int64, error)
}

type postalCodeRepository struct {
	conn postgres.Conn
}

func NewPostalCodeRepository(conn postgres.Conn) PostalCodeRepository {
	return &postalCodeRepository{
		conn: conn,
	}
}

func (r *postalCodeRepository) ListPostalCodes(ctx context.Context) ([]domain.PostalCode, error) {
	query, args, err := squirrel.
		Select("pc.postal_code", "pc.county").
		From("postal_codes pc").
		OrderBy("pc.postal_code ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	codes := make([]domain.PostalCode, 0)
	for rows.Next() {
		var code domain.PostalCode
		if err := rows.Scan(&code.PostalCode, &code.County); err != nil {
			return nil, fmt.Errorf("erro ao escanear código postal: %w", err)
		}
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return codes, nil
}

// Upsert grava os códigos postais; um código já existente tem o condado atualizado
func (r *postalCodeRepository) Upsert(ctx context.Context, codes []domain.PostalCode) (int64, error) {
	var affected int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(codes); start += insertChunkSize {
			end := min(start+insertChunkSize, len(codes))

			query, args, err := buildPostalUpsertQuery(codes[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}

			n, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// Um mesmo INSERT ... ON CONFLICT não pode tocar a mesma chave duas vezes, então
// códigos repetidos no bloco mantêm apenas a primeira ocorrência.
func buildPostalUpsertQuery(codes []domain.PostalCode) (string, []interface{}, error) {
	builder := squirrel.
		Insert("postal_codes").
		Columns("postal_code", "county").
		Suffix("ON CONFLICT (postal_code) DO UPDATE SET county = EXCLUDED.county").
		PlaceholderFormat(squirrel.Dollar)

	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		if seen[code.PostalCode] {
			continue
		}
		seen[code.PostalCode] = true
		builder = builder.Values(code.PostalCode, code.County)
	}

	return builder.ToSql()
}
