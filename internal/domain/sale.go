// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Colunas obrigatórias do arquivo de vendas
const (
	ColumnDateCreated      = "Date Created"
	ColumnOrderID          = "Order ID"
	ColumnGrossRevenue     = "Product Gross Revenue"
	ColumnProductName      = "Product Name"
	ColumnCategoryName     = "Category Name"
	ColumnShippingPostcode = "Shipping Postcode"
	ColumnCustomerHash     = "Customer Email Hash"
)

// SalesColumns lista as colunas exigidas no arquivo de vendas
var SalesColumns = []string{
	ColumnDateCreated,
	ColumnOrderID,
	ColumnGrossRevenue,
	ColumnProductName,
	ColumnCategoryName,
	ColumnShippingPostcode,
	ColumnCustomerHash,
}

const (
	// NoSecondaryCategory é usado quando o caminho da categoria tem menos de dois segmentos
	NoSecondaryCategory = "N/A"
	// UnknownCounty agrupa as vendas cujo CEP não existe na tabela postal
	UnknownCounty = "Unknown"
)

// RawSaleRow é uma linha do arquivo de origem, indexada pelo nome da coluna
type RawSaleRow struct {
	Line   int
	Fields map[string]string
}

// Get retorna o valor de uma coluna ou vazio
func (r RawSaleRow) Get(column string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[column]
}

// SaleRecord é uma linha de venda já normalizada
type SaleRecord struct {
	Line              int       `json:"line"`
	OrderID           string    `json:"order_id"`
	ProductName       string    `json:"product_name"`
	CategoryPath      string    `json:"category_path"`
	SecondaryCategory string    `json:"secondary_category"`
	GrossRevenue      float64   `json:"gross_revenue"`
	ShippingPostcode  string    `json:"shipping_postcode"`
	CustomerHash      string    `json:"customer_hash"`
	CreatedAt         time.Time `json:"created_at"`
	Month             time.Time `json:"month"` // Último dia do mês de criação
	Year              int       `json:"year"`
	County            *string   `json:"county,omitempty"`
}

// CountyOrUnknown retorna o condado do registro ou o bucket "Unknown"
func (r SaleRecord) CountyOrUnknown() string {
	if r.County == nil || *r.County == "" {
		return UnknownCounty
	}
	return *r.County
}
