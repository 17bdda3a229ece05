package aggregating

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de agregação
var (
	// ErrDivisionUndefined indica razão sem denominador (nenhum pedido ou nenhum cliente)
	ErrDivisionUndefined = errors.New("division undefined")
	// ErrSelection indica ano ou mês solicitado inexistente
	ErrSelection = errors.New("selection error")
	// ErrUnknownView indica nome de visão fora do catálogo
	ErrUnknownView = errors.New("unknown view")
	// ErrInvalidView indica definição de visão inconsistente
	ErrInvalidView = errors.New("invalid view definition")
)

// AggregationError é um erro com contexto adicional para agregações
type AggregationError struct {
	Err     error  // Erro base
	Subject string // Visão, métrica ou seleção envolvida
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AggregationError) Error() string {
	msg := e.Err.Error()
	if e.Subject != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Subject)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *AggregationError) Unwrap() error {
	return e.Err
}

// NewAggregationError cria um novo AggregationError
func NewAggregationError(err error, subject string, details string) *AggregationError {
	return &AggregationError{
		Err:     err,
		Subject: subject,
		Details: details,
	}
}
