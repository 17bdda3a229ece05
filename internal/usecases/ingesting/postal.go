package ingesting

import (
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// PostalIndex mapeia CEP para condado
type PostalIndex map[string]string

// NewPostalIndex monta o índice. Em CEPs duplicados vence a primeira ocorrência.
func NewPostalIndex(codes []domain.PostalCode) PostalIndex {
	index := make(PostalIndex, len(codes))
	for _, code := range codes {
		key := strings.TrimSpace(code.PostalCode)
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = code.County
		}
	}
	return index
}

// JoinPostal faz o left join dos registros com a tabela postal.
// Registros sem correspondência são mantidos com County nulo. O slice de entrada não é alterado.
func JoinPostal(records []domain.SaleRecord, index PostalIndex) []domain.SaleRecord {
	joined := make([]domain.SaleRecord, len(records))
	copy(joined, records)

	if len(index) == 0 {
		return joined
	}

	for i := range joined {
		county, ok := index[strings.TrimSpace(joined[i].ShippingPostcode)]
		if !ok {
			joined[i].County = nil
			continue
		}
		joined[i].County = &county
	}

	return joined
}
