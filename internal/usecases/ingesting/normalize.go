package ingesting

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Normalizer converte linhas brutas em registros tipados com chaves de período derivadas
type Normalizer struct {
	layouts        []string
	separator      string
	rowErrorPolicy string
}

// NewNormalizer cria um normalizador a partir da configuração do dataset
func NewNormalizer(cfg config.Dataset) *Normalizer {
	policy := cfg.RowErrorPolicy
	if policy == "" {
		policy = config.RowErrorPolicyAbort
	}

	return &Normalizer{
		layouts:        cfg.DateLayouts,
		separator:      cfg.CategorySeparator,
		rowErrorPolicy: policy,
	}
}

// Normalize interpreta cada linha. Com a política "abort" o primeiro erro de linha interrompe a carga;
// com "skip" a linha é descartada e registrada em rejected.
func (n *Normalizer) Normalize(rows []domain.RawSaleRow) ([]domain.SaleRecord, []domain.RejectedRow, error) {
	records := make([]domain.SaleRecord, 0, len(rows))
	rejected := make([]domain.RejectedRow, 0)

	for _, row := range rows {
		record, err := n.normalizeRow(row)
		if err != nil {
			var ingestErr *IngestError
			if n.rowErrorPolicy != config.RowErrorPolicySkip || !errors.As(err, &ingestErr) {
				return nil, nil, err
			}

			log.L.WithFields(log.Fields{
				"line":     ingestErr.Line,
				"order_id": ingestErr.OrderID,
				"column":   ingestErr.Column,
			}).Warn("normalize: linha descartada")

			rejected = append(rejected, domain.RejectedRow{
				Line:    ingestErr.Line,
				OrderID: ingestErr.OrderID,
				Column:  ingestErr.Column,
				Value:   ingestErr.Value,
				Reason:  ingestErr.Details,
			})
			continue
		}

		records = append(records, record)
	}

	return records, rejected, nil
}

func (n *Normalizer) normalizeRow(row domain.RawSaleRow) (domain.SaleRecord, error) {
	orderID := strings.TrimSpace(row.Get(domain.ColumnOrderID))

	rawDate := row.Get(domain.ColumnDateCreated)
	createdAt, err := ParseTimestamp(rawDate, n.layouts)
	if err != nil {
		return domain.SaleRecord{}, NewParseError(row.Line, orderID, domain.ColumnDateCreated, rawDate, "data em formato inesperado")
	}

	rawRevenue := row.Get(domain.ColumnGrossRevenue)
	revenue, err := parseRevenue(rawRevenue)
	if err != nil {
		return domain.SaleRecord{}, NewParseError(row.Line, orderID, domain.ColumnGrossRevenue, rawRevenue, "receita não numérica")
	}

	categoryPath := strings.TrimSpace(row.Get(domain.ColumnCategoryName))

	return domain.SaleRecord{
		Line:              row.Line,
		OrderID:           orderID,
		ProductName:       strings.TrimSpace(row.Get(domain.ColumnProductName)),
		CategoryPath:      categoryPath,
		SecondaryCategory: SecondaryCategory(categoryPath, n.separator),
		GrossRevenue:      revenue,
		ShippingPostcode:  strings.TrimSpace(row.Get(domain.ColumnShippingPostcode)),
		CustomerHash:      strings.TrimSpace(row.Get(domain.ColumnCustomerHash)),
		CreatedAt:         createdAt,
		Month:             MonthEnd(createdAt),
		Year:              createdAt.Year(),
	}, nil
}

// ParseTimestamp tenta cada layout configurado, em ordem
func ParseTimestamp(value string, layouts []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrParse
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrParse
}

// MonthEnd retorna o último dia do mês de t, à meia-noite UTC
func MonthEnd(t time.Time) time.Time {
	// Dia 0 do mês seguinte é o último dia do mês atual
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// SecondaryCategory retorna o segundo segmento do caminho de categoria ou "N/A"
func SecondaryCategory(path, separator string) string {
	if path == "" || separator == "" {
		return domain.NoSecondaryCategory
	}

	segments := strings.Split(path, separator)
	if len(segments) < 2 {
		return domain.NoSecondaryCategory
	}

	return strings.TrimSpace(segments[1])
}

// Receita vazia conta como zero, como uma soma que ignora valores ausentes
func parseRevenue(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}
