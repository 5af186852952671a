package dto

import "github.com/shopspring/decimal"

// PurchaseListItem una fila del listado en pantalla.
type PurchaseListItem struct {
	GenerationCode string          `json:"generation_code"`
	ControlNumber  string          `json:"control_number"`
	Receiver       string          `json:"receiver"`
	Issuer         string          `json:"issuer"`
	IssueDate      string          `json:"issue_date,omitempty"` // YYYY-MM-DD
	Total          decimal.Decimal `json:"total"`
	TotalDisplay   string          `json:"total_display"` // "$12.50"
	Warnings       []string        `json:"warnings,omitempty"`
}

// PurchaseListResponse listado paginado.
type PurchaseListResponse struct {
	Items []PurchaseListItem `json:"items"`
	Page  PageResponse       `json:"page"`
}

// UploadPreview resumen de un archivo recién validado: emisor, receptor,
// los primeros ítems y el total.
type UploadPreview struct {
	File           string   `json:"file"`
	ControlNumber  string   `json:"control_number"`
	GenerationCode string   `json:"generation_code"`
	Issuer         string   `json:"issuer"`
	Receiver       string   `json:"receiver"`
	IssueDate      string   `json:"issue_date,omitempty"`
	Items          []string `json:"items"` // como máximo PreviewItems descripciones
	ItemCount      int      `json:"item_count"`
	MoreItems      bool     `json:"more_items"`
	TotalDisplay   string   `json:"total_display"`
	Warnings       []string `json:"warnings,omitempty"`
}

// PreviewItems cantidad de ítems mostrados en la vista previa.
const PreviewItems = 3
