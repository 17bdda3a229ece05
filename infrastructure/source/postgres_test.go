package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestPostgresSource_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []domain.RawSaleRow{
		{Line: 2, Fields: map[string]string{domain.ColumnOrderID: "1"}},
		{Line: 3, Fields: map[string]string{domain.ColumnOrderID: "2"}},
	}
	codes := []domain.PostalCode{{PostalCode: "1011", County: "Budapest"}}

	tests := []struct {
		name    string
		setup   func(sales *mocks.MockSaleRecordRepository, postal *mocks.MockPostalCodeRepository)
		wantErr bool
	}{
		{
			name: "Carrega vendas e tabela postal",
			setup: func(sales *mocks.MockSaleRecordRepository, postal *mocks.MockPostalCodeRepository) {
				sales.EXPECT().ListRawRows(gomock.Any()).Return(rows, nil)
				postal.EXPECT().ListPostalCodes(gomock.Any()).Return(codes, nil)
			},
		},
		{
			name: "Erro no banco de vendas interrompe a carga",
			setup: func(sales *mocks.MockSaleRecordRepository, postal *mocks.MockPostalCodeRepository) {
				sales.EXPECT().ListRawRows(gomock.Any()).Return(nil, errors.New("conexão recusada"))
				postal.EXPECT().ListPostalCodes(gomock.Any()).Return(codes, nil).AnyTimes()
			},
			wantErr: true,
		},
		{
			name: "Erro na tabela postal interrompe a carga",
			setup: func(sales *mocks.MockSaleRecordRepository, postal *mocks.MockPostalCodeRepository) {
				sales.EXPECT().ListRawRows(gomock.Any()).Return(rows, nil).AnyTimes()
				postal.EXPECT().ListPostalCodes(gomock.Any()).Return(nil, errors.New("tabela inexistente"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salesRepo := mocks.NewMockSaleRecordRepository(ctrl)
			postalRepo := mocks.NewMockPostalCodeRepository(ctrl)
			tt.setup(salesRepo, postalRepo)

			src := NewPostgresSource(salesRepo, postalRepo)
			assert.Equal(t, domain.SourcePostgres, src.Kind())

			input, err := src.Load(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, input)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, rows, input.Sales)
			assert.Equal(t, codes, input.Postal)
		})
	}
}
