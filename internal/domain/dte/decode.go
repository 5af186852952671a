package dte

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// RawDocument árbol genérico clave-valor de un DTE recién decodificado.
// Los números se conservan como json.Number para no perder precisión.
type RawDocument = map[string]any

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode convierte el texto en un árbol JSON genérico.
// Elimina el BOM UTF-8 y, si el texto no es UTF-8 válido, lo transcodifica desde
// Windows-1252 (exportadores heredados). Cualquier fallo es KindInvalidEncoding.
func Decode(text []byte) (any, error) {
	text = bytes.TrimPrefix(text, utf8BOM)
	if !utf8.Valid(text) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(text)
		if err != nil {
			return nil, encodingError(fmt.Errorf("transcodificar Windows-1252: %w", err))
		}
		text = decoded
	}

	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, encodingError(err)
	}
	// Nada más que espacios después del valor.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("datos adicionales después del documento")
		}
		return nil, encodingError(err)
	}
	return v, nil
}
