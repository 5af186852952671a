package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// Ingesta de DTE.
	ErrInvalidEncoding    = errors.New("el archivo no es un JSON válido")
	ErrMalformedStructure = errors.New("el archivo no tiene la estructura de un DTE válido")

	// Generación de reportes.
	ErrEmptyResultSet = errors.New("no hay resultados para exportar")
	ErrEmptyLineItems = errors.New("el documento no tiene ítems")
	ErrDataQuality    = errors.New("dato del documento no normalizable")
)
