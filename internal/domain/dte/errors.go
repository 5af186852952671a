package dte

import (
	"fmt"
	"strings"

	"github.com/jhoicas/dte-compras/internal/domain"
)

// Kind clasifica el motivo por el que un documento fue rechazado.
type Kind int

const (
	// KindInvalidEncoding el texto no es JSON bien formado.
	KindInvalidEncoding Kind = iota + 1
	// KindMalformedStructure JSON válido sin la forma mínima de un DTE.
	KindMalformedStructure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEncoding:
		return "InvalidEncoding"
	case KindMalformedStructure:
		return "MalformedStructure"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	if k == KindInvalidEncoding {
		return domain.ErrInvalidEncoding
	}
	return domain.ErrMalformedStructure
}

// ValidationError error tipado devuelto por Validate.
// errors.Is(err, domain.ErrMalformedStructure) / domain.ErrInvalidEncoding funcionan sobre él.
type ValidationError struct {
	Kind   Kind
	Fields []string // bloques ausentes o con tipo incorrecto (solo MalformedStructure)
	Err    error    // causa del decodificador (solo InvalidEncoding)
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("dte: ")
	b.WriteString(e.Kind.sentinel().Error())
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, " (campos: %s)", strings.Join(e.Fields, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap expone el sentinel de dominio y la causa original.
func (e *ValidationError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func encodingError(err error) *ValidationError {
	return &ValidationError{Kind: KindInvalidEncoding, Err: err}
}

func structureError(fields ...string) *ValidationError {
	return &ValidationError{Kind: KindMalformedStructure, Fields: fields}
}
