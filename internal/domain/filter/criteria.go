package filter

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/jhoicas/dte-compras/internal/domain"
)

// Criteria criterios de búsqueda independientes. El valor cero de cada campo
// significa "sin restricción"; los textos en blanco también.
type Criteria struct {
	ClientNameContains      string     // nombre del receptor
	ControlNumberContains   string     // número de control del DTE
	ItemDescriptionContains string     // descripción de cualquier ítem
	IssuedFrom              civil.Date // límite inferior inclusivo
	IssuedTo                civil.Date // límite superior inclusivo
}

// Normalized devuelve una copia con los textos recortados.
func (c Criteria) Normalized() Criteria {
	c.ClientNameContains = strings.TrimSpace(c.ClientNameContains)
	c.ControlNumberContains = strings.TrimSpace(c.ControlNumberContains)
	c.ItemDescriptionContains = strings.TrimSpace(c.ItemDescriptionContains)
	return c
}

// IsZero indica que ningún criterio está definido.
func (c Criteria) IsZero() bool {
	n := c.Normalized()
	return n.ClientNameContains == "" &&
		n.ControlNumberContains == "" &&
		n.ItemDescriptionContains == "" &&
		n.IssuedFrom.IsZero() &&
		n.IssuedTo.IsZero()
}

// Validate comprueba la coherencia del rango de fechas. Apply no lo exige: un rango
// invertido simplemente no coincide con nada.
func (c Criteria) Validate() error {
	if !c.IssuedFrom.IsZero() && !c.IssuedFrom.IsValid() {
		return fmt.Errorf("%w: fecha desde %s no existe", domain.ErrInvalidInput, c.IssuedFrom)
	}
	if !c.IssuedTo.IsZero() && !c.IssuedTo.IsValid() {
		return fmt.Errorf("%w: fecha hasta %s no existe", domain.ErrInvalidInput, c.IssuedTo)
	}
	if !c.IssuedFrom.IsZero() && !c.IssuedTo.IsZero() && c.IssuedFrom.After(c.IssuedTo) {
		return fmt.Errorf("%w: la fecha desde (%s) es posterior a la fecha hasta (%s)",
			domain.ErrInvalidInput, c.IssuedFrom, c.IssuedTo)
	}
	return nil
}
