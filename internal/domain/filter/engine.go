// Package filter aplica criterios de búsqueda sobre colecciones de DTE.
// Todas las funciones son puras y seguras para uso concurrente.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/dte-compras/internal/domain/entity"
)

// Apply devuelve, en el orden original, los registros que cumplen todos los criterios definidos.
// Nunca falla: un campo ausente en el registro simplemente no coincide.
func Apply(records []entity.InvoiceRecord, c Criteria) []entity.InvoiceRecord {
	m := newMatcher(c)
	out := make([]entity.InvoiceRecord, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Match evalúa un único registro.
func Match(r entity.InvoiceRecord, c Criteria) bool {
	return newMatcher(c).match(r)
}

// matcher precalcula los textos plegados. cases.Caser no es seguro entre goroutines,
// por eso se crea uno por llamada.
type matcher struct {
	fold    cases.Caser
	client  string
	control string
	item    string
	c       Criteria
}

func newMatcher(c Criteria) *matcher {
	c = c.Normalized()
	m := &matcher{fold: cases.Fold(), c: c}
	m.client = m.folded(c.ClientNameContains)
	m.control = m.folded(c.ControlNumberContains)
	m.item = m.folded(c.ItemDescriptionContains)
	return m
}

func (m *matcher) folded(s string) string {
	if s == "" {
		return ""
	}
	return m.fold.String(s)
}

func (m *matcher) contains(field, needle string) bool {
	return strings.Contains(m.folded(field), needle)
}

func (m *matcher) match(r entity.InvoiceRecord) bool {
	if m.client != "" && !m.contains(r.Receiver.Name, m.client) {
		return false
	}
	if m.control != "" && !m.contains(r.ControlNumber(), m.control) {
		return false
	}
	if !m.matchDate(r) {
		return false
	}
	if m.item != "" && !m.matchItem(r) {
		return false
	}
	return true
}

func (m *matcher) matchDate(r entity.InvoiceRecord) bool {
	from, to := m.c.IssuedFrom, m.c.IssuedTo
	if from.IsZero() && to.IsZero() {
		return true
	}
	d := r.IssueDate()
	if d.IsZero() {
		return false
	}
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

func (m *matcher) matchItem(r entity.InvoiceRecord) bool {
	for _, li := range r.LineItems {
		if m.contains(li.Description, m.item) {
			return true
		}
	}
	return false
}
