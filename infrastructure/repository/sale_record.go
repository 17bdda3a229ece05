// Package repository contém as implementações dos repositórios para acesso aos dados
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

const (
	saleRecordsTable = "sale_records sr"

	// Linhas por INSERT na importação
	insertChunkSize = 500
)

// As colunas guardam o texto original para que o banco passe pela mesma normalização do arquivo
var saleRecordColumns = []string{
	"batch_id",
	"line",
	"date_created",
	"order_id",
	"gross_revenue",
	"product_name",
	"category_name",
	"shipping_postcode",
	"customer_hash",
}

//go:generate mockgen -source=sale_record.go -destination=mocks/sale_record.go -package=mocks
type SaleRecordRepository interface {
	ListRawRows(ctx context.Context) ([]domain.RawSaleRow, error)
	InsertBatch(ctx context.Context, batchID string, rows []domain.RawSaleRow) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type saleRecordRepository struct {
	conn postgres.Conn
}

func NewSaleRecordRepository(conn postgres.Conn) SaleRecordRepository {
	return &saleRecordRepository{
		conn: conn,
	}
}

func (r *saleRecordRepository) ListRawRows(ctx context.Context) ([]domain.RawSaleRow, error) {
	query, args, err := squirrel.
		Select(
			"sr.line",
			"sr.date_created",
			"sr.order_id",
			"sr.gross_revenue",
			"sr.product_name",
			"sr.category_name",
			"sr.shipping_postcode",
			"sr.customer_hash",
		).
		From(saleRecordsTable).
		OrderBy("sr.batch_id ASC", "sr.line ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.RawSaleRow{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.RawSaleRow, 0)
	for rows.Next() {
		row, err := scanRawRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// InsertBatch grava as linhas numa única transação, em blocos de insertChunkSize
func (r *saleRecordRepository) InsertBatch(ctx context.Context, batchID string, rows []domain.RawSaleRow) (int64, error) {
	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(rows); start += insertChunkSize {
			end := min(start+insertChunkSize, len(rows))

			query, args, err := buildInsertQuery(batchID, rows[start:end])
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

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
			}
			inserted += affected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *saleRecordRepository) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Delete("sale_records").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func buildInsertQuery(batchID string, rows []domain.RawSaleRow) (string, []interface{}, error) {
	builder := squirrel.
		Insert("sale_records").
		Columns(saleRecordColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(
			batchID,
			row.Line,
			row.Get(domain.ColumnDateCreated),
			row.Get(domain.ColumnOrderID),
			row.Get(domain.ColumnGrossRevenue),
			row.Get(domain.ColumnProductName),
			row.Get(domain.ColumnCategoryName),
			row.Get(domain.ColumnShippingPostcode),
			row.Get(domain.ColumnCustomerHash),
		)
	}

	return builder.ToSql()
}

func scanRawRow(rows *sql.Rows) (domain.RawSaleRow, error) {
	var (
		line                                   int
		dateCreated, orderID, revenue, product string
		category, postcode, customerHash       sql.NullString
	)

	err := rows.Scan(
		&line,
		&dateCreated,
		&orderID,
		&revenue,
		&product,
		&category,
		&postcode,
		&customerHash,
	)
	if err != nil {
		return domain.RawSaleRow{}, err
	}

	return domain.RawSaleRow{
		Line: line,
		Fields: map[string]string{
			domain.ColumnDateCreated:      dateCreated,
			domain.ColumnOrderID:          orderID,
			domain.ColumnGrossRevenue:     revenue,
			domain.ColumnProductName:      product,
			domain.ColumnCategoryName:     category.String,
			domain.ColumnShippingPostcode: postcode.String,
			domain.ColumnCustomerHash:     customerHash.String,
		},
	}, nil
}
