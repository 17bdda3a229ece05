package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func rawRow(line int, orderID string) domain.RawSaleRow {
	return domain.RawSaleRow{
		Line: line,
		Fields: map[string]string{
			domain.ColumnDateCreated:      "2021-03-15 10:00:00",
			domain.ColumnOrderID:          orderID,
			domain.ColumnGrossRevenue:     "100.50",
			domain.ColumnProductName:      "Produto",
			domain.ColumnCategoryName:     "Bolos>Torták",
			domain.ColumnShippingPostcode: "1011",
			domain.ColumnCustomerHash:     "abc",
		},
	}
}

func TestBuildInsertQuery(t *testing.T) {
	tests := []struct {
		name         string
		rows         []domain.RawSaleRow
		expectedArgs int
	}{
		{
			name:         "Uma linha",
			rows:         []domain.RawSaleRow{rawRow(2, "1")},
			expectedArgs: len(saleRecordColumns),
		},
		{
			name:         "Três linhas no mesmo INSERT",
			rows:         []domain.RawSaleRow{rawRow(2, "1"), rawRow(3, "2"), rawRow(4, "3")},
			expectedArgs: 3 * len(saleRecordColumns),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertQuery("batch-1", tt.rows)
			require.NoError(t, err)

			assert.Contains(t, query, "INSERT INTO sale_records")
			assert.Contains(t, query, fmt.Sprintf("$%d", tt.expectedArgs))
			assert.NotContains(t, query, "?")
			assert.Len(t, args, tt.expectedArgs)
			assert.Equal(t, "batch-1", args[0])
			assert.Equal(t, 2, args[1])
		})
	}
}

func TestBuildInsertQuery_ColunasAusentesViramTextoVazio(t *testing.T) {
	row := domain.RawSaleRow{
		Line: 7,
		Fields: map[string]string{
			domain.ColumnOrderID: "42",
		},
	}

	_, args, err := buildInsertQuery("batch-2", []domain.RawSaleRow{row})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"batch-2", 7, "", "42", "", "", "", "", ""}, args)
}

func TestBuildPostalUpsertQuery(t *testing.T) {
	codes := []domain.PostalCode{
		{PostalCode: "1011", County: "Budapest"},
		{PostalCode: "6720", County: "Csongrád"},
		{PostalCode: "1011", County: "Outro"},
	}

	query, args, err := buildPostalUpsertQuery(codes)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO postal_codes")
	assert.Contains(t, query, "ON CONFLICT (postal_code) DO UPDATE SET county = EXCLUDED.county")
	// A segunda ocorrência de 1011 é ignorada
	assert.Equal(t, []interface{}{"1011", "Budapest", "6720", "Csongrád"}, args)
}
