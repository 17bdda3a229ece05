package domain

import "time"

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// RejectedRow descreve uma linha descartada pela política de erros de linha
type RejectedRow struct {
	Line    int    `json:"line"`
	OrderID string `json:"order_id,omitempty"`
	Column  string `json:"column"`
	Value   string `json:"value"`
	Reason  string `json:"reason"`
}

// PostalCode é uma entrada da tabela de referência postal
type PostalCode struct {
	PostalCode string `json:"postal_code"`
	County     string `json:"county"`
}

// Dataset é um snapshot imutável dos registros normalizados.
// Depois de publicado nenhum campo pode ser alterado.
type Dataset struct {
	Records  []SaleRecord  `json:"-"`
	Rejected []RejectedRow `json:"rejected"`
	Source   string        `json:"source"`
	LoadedAt time.Time     `json:"loaded_at"`
}

// DatasetStatus resume o snapshot atual para o endpoint de status
type DatasetStatus struct {
	Loaded        bool          `json:"loaded"`
	Source        string        `json:"source,omitempty"`
	LoadedAt      *time.Time    `json:"loaded_at,omitempty"`
	Records       int           `json:"records"`
	RejectedCount int           `json:"rejected_count"`
	Rejected      []RejectedRow `json:"rejected,omitempty"`
	Reloading     bool          `json:"reloading"`
	LastError     string        `json:"last_error,omitempty"`
}

// RawInput é o conteúdo bruto lido de uma origem, antes da normalização
type RawInput struct {
	Sales  []RawSaleRow
	Postal []PostalCode
}
