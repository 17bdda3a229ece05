package ingesting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	ColumnPostalCode = "Postal_Code"
	ColumnCounty     = "County"
)

// ReadSalesRows lê o arquivo de vendas e devolve as linhas indexadas pelo cabeçalho
func ReadSalesRows(r io.Reader, delimiter rune) ([]domain.RawSaleRow, error) {
	header, records, err := readDelimited(r, delimiter, domain.SalesColumns)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RawSaleRow, 0, len(records))
	for i, record := range records {
		fields := make(map[string]string, len(header))
		for col, name := range header {
			if col < len(record) {
				fields[name] = record[col]
			}
		}
		// Linha 1 é o cabeçalho
		rows = append(rows, domain.RawSaleRow{Line: i + 2, Fields: fields})
	}

	return rows, nil
}

// ReadPostalCodes lê a tabela de referência postal (CEP -> condado)
func ReadPostalCodes(r io.Reader, delimiter rune) ([]domain.PostalCode, error) {
	header, records, err := readDelimited(r, delimiter, []string{ColumnPostalCode, ColumnCounty})
	if err != nil {
		return nil, err
	}

	postalIdx, countyIdx := indexOf(header, ColumnPostalCode), indexOf(header, ColumnCounty)

	codes := make([]domain.PostalCode, 0, len(records))
	for _, record := range records {
		if postalIdx >= len(record) || countyIdx >= len(record) {
			continue
		}
		codes = append(codes, domain.PostalCode{
			PostalCode: strings.TrimSpace(record[postalIdx]),
			County:     strings.TrimSpace(record[countyIdx]),
		})
	}

	return codes, nil
}

func readDelimited(r io.Reader, delimiter rune, required []string) ([]string, [][]string, error) {
	if delimiter == 0 || delimiter == '\r' || delimiter == '\n' || delimiter == '"' {
		return nil, nil, NewInputFormatError(fmt.Sprintf("delimitador inválido: %q", delimiter))
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, NewInputFormatError("arquivo vazio, cabeçalho ausente")
		}
		return nil, nil, &IngestError{Err: ErrInputFormat, Line: 1, Details: errors.Wrap(err, "erro ao ler cabeçalho").Error()}
	}

	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	missing := make([]string, 0)
	for _, column := range required {
		if indexOf(header, column) < 0 {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, nil, NewInputFormatError(fmt.Sprintf("colunas obrigatórias ausentes: %s", strings.Join(missing, ", ")))
	}

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, nil, &IngestError{Err: ErrInputFormat, Line: parseErr.Line, Details: parseErr.Err.Error()}
		}
		return nil, nil, errors.Wrap(err, "erro ao ler linhas do arquivo")
	}

	return header, records, nil
}

func indexOf(header []string, column string) int {
	for i, name := range header {
		if name == column {
			return i
		}
	}
	return -1
}
