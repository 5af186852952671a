package report

import (
	"fmt"
	"math"

	"github.com/jhoicas/dte-compras/internal/domain"
)

// Paginación en dos pasadas: Paginate reparte las filas en páginas con la
// geometría del generador, y el generador dibuja cada página conociendo ya el
// total, de modo que el pie "Página X de Y" se estampa con el valor final.

// epsilon absorbe errores de coma flotante al dividir alturas en mm.
const epsilon = 1e-6

// PageGeometry alturas en mm que el generador reserva en cada página.
type PageGeometry struct {
	UsableHeight      float64 // alto de página menos márgenes
	HeaderHeight      float64 // título + regla, en todas las páginas
	FooterHeight      float64 // pie con "Página X de Y", en todas las páginas
	TableHeaderHeight float64 // cabecera de tabla, en cada página que lleva filas
	RowHeight         float64
	FirstPageExtra    float64 // bloque solo de la página 1 (criterios, emisor/receptor)
	TrailerHeight     float64 // bloque tras la última fila (totales); 0 si no hay
}

// PageSpan filas [Start, End) que van en la página Number (base 1).
type PageSpan struct {
	Number  int
	Start   int
	End     int
	Table   bool // la página dibuja la cabecera de tabla
	Trailer bool // la página dibuja el bloque final
}

// Rows cantidad de filas de la página.
func (s PageSpan) Rows() int { return s.End - s.Start }

// Plan resultado de la primera pasada.
type Plan struct {
	Pages []PageSpan
}

// TotalPages número total de páginas (el "Y" del pie).
func (p Plan) TotalPages() int { return len(p.Pages) }

// Paginate calcula el plan para n filas. La cabecera de tabla se repite en cada
// página con filas; sin filas, la página 1 la dibuja igual (tabla vacía). Si el
// bloque final no cabe tras la última fila se agrega una página solo para él.
func Paginate(n int, g PageGeometry) (Plan, error) {
	if err := g.validate(); err != nil {
		return Plan{}, err
	}
	if n < 0 {
		return Plan{}, fmt.Errorf("%w: cantidad de filas negativa (%d)", domain.ErrInvalidInput, n)
	}

	fixed := g.HeaderHeight + g.FooterHeight

	// ── 1. Página 1 ──────────────────────────────────────────────────────────
	firstAvail := g.UsableHeight - fixed - g.FirstPageExtra
	first := PageSpan{Number: 1}
	if n == 0 {
		first.Table = firstAvail+epsilon >= g.TableHeaderHeight
	} else {
		take := min(rowsThatFit(firstAvail, g), n)
		first.End = take
		first.Table = take > 0
	}
	pages := []PageSpan{first}

	// ── 2. Páginas de continuación ───────────────────────────────────────────
	perPage := rowsThatFit(g.UsableHeight-fixed, g)
	for next := first.End; next < n; {
		take := min(perPage, n-next)
		pages = append(pages, PageSpan{
			Number: len(pages) + 1,
			Start:  next,
			End:    next + take,
			Table:  true,
		})
		next += take
	}

	// ── 3. Bloque final ──────────────────────────────────────────────────────
	last := &pages[len(pages)-1]
	used := fixed + float64(last.Rows())*g.RowHeight
	if last.Table {
		used += g.TableHeaderHeight
	}
	if last.Number == 1 {
		used += g.FirstPageExtra
	}
	if g.UsableHeight-used+epsilon >= g.TrailerHeight {
		last.Trailer = true
	} else {
		pages = append(pages, PageSpan{
			Number:  len(pages) + 1,
			Start:   n,
			End:     n,
			Trailer: true,
		})
	}

	return Plan{Pages: pages}, nil
}

// rowsThatFit filas completas que caben en avail, contando la cabecera de tabla.
func rowsThatFit(avail float64, g PageGeometry) int {
	space := avail - g.TableHeaderHeight
	if space+epsilon < g.RowHeight {
		return 0
	}
	return int(math.Floor(space/g.RowHeight + epsilon))
}

func (g PageGeometry) validate() error {
	if g.UsableHeight <= 0 || g.RowHeight <= 0 {
		return fmt.Errorf("%w: geometría sin alto útil o sin alto de fila", domain.ErrInvalidInput)
	}
	if g.HeaderHeight < 0 || g.FooterHeight < 0 || g.TableHeaderHeight < 0 ||
		g.FirstPageExtra < 0 || g.TrailerHeight < 0 {
		return fmt.Errorf("%w: geometría con alturas negativas", domain.ErrInvalidInput)
	}
	fixed := g.HeaderHeight + g.FooterHeight
	if fixed+g.TableHeaderHeight+g.RowHeight > g.UsableHeight+epsilon {
		return fmt.Errorf("%w: una fila no cabe en una página de continuación", domain.ErrInvalidInput)
	}
	if fixed+g.FirstPageExtra > g.UsableHeight+epsilon {
		return fmt.Errorf("%w: el bloque de la primera página no cabe", domain.ErrInvalidInput)
	}
	if fixed+g.TrailerHeight > g.UsableHeight+epsilon {
		return fmt.Errorf("%w: el bloque final no cabe en una página", domain.ErrInvalidInput)
	}
	return nil
}

// Remaining alto libre de la página entre el contenido y el pie; los
// generadores lo usan para empujar el pie al final de la página.
func (g PageGeometry) Remaining(span PageSpan) float64 {
	used := g.HeaderHeight + g.FooterHeight + float64(span.Rows())*g.RowHeight
	if span.Number == 1 {
		used += g.FirstPageExtra
	}
	if span.Table {
		used += g.TableHeaderHeight
	}
	if span.Trailer {
		used += g.TrailerHeight
	}
	return max(g.UsableHeight-used, 0)
}
