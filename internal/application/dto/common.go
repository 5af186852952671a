package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero o negativos.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse error legible por máquina (salida --json de la CLI).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
