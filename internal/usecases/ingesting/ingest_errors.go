package ingesting

import (
	"errors"
	"fmt"
)

// Erros específicos da ingestão
var (
	// ErrInputFormat indica arquivo sem colunas obrigatórias ou delimitador ilegível. É fatal para a carga.
	ErrInputFormat = errors.New("input format error")
	// ErrParse indica uma linha cujo valor não pôde ser interpretado
	ErrParse = errors.New("parse error")
)

// IngestError é um erro com contexto adicional da linha envolvida
type IngestError struct {
	Err     error  // Erro base
	Line    int    // Linha do arquivo (1 = cabeçalho)
	OrderID string // Pedido da linha, quando conhecido
	Column  string // Coluna envolvida
	Value   string // Valor original
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IngestError) Error() string {
	msg := e.Err.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("%s: line %d", msg, e.Line)
	}
	if e.OrderID != "" {
		msg = fmt.Sprintf("%s (order %s)", msg, e.OrderID)
	}
	if e.Column != "" {
		msg = fmt.Sprintf("%s: column %q value %q", msg, e.Column, e.Value)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *IngestError) Unwrap() error {
	return e.Err
}

// NewInputFormatError cria um erro de formato de entrada
func NewInputFormatError(details string) *IngestError {
	return &IngestError{
		Err:     ErrInputFormat,
		Details: details,
	}
}

// NewParseError cria um erro de interpretação de linha
func NewParseError(line int, orderID, column, value, details string) *IngestError {
	return &IngestError{
		Err:     ErrParse,
		Line:    line,
		OrderID: orderID,
		Column:  column,
		Value:   value,
		Details: details,
	}
}
