package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
)

// Os valores de venda ficam em texto; a conversão acontece na normalização
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sale_records (
		batch_id          TEXT    NOT NULL,
		line              INTEGER NOT NULL,
		date_created      TEXT    NOT NULL,
		order_id          TEXT    NOT NULL,
		gross_revenue     TEXT    NOT NULL,
		product_name      TEXT    NOT NULL,
		category_name     TEXT,
		shipping_postcode TEXT,
		customer_hash     TEXT,
		imported_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (batch_id, line)
	)`,
	`CREATE TABLE IF NOT EXISTS postal_codes (
		postal_code TEXT PRIMARY KEY,
		county      TEXT NOT NULL
	)`,
}

// EnsureSchema cria as tabelas usadas pela origem postgres, se ainda não existirem
func EnsureSchema(ctx context.Context, conn postgres.Queryer) error {
	for _, statement := range schemaStatements {
		if _, err := conn.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}
	return nil
}
