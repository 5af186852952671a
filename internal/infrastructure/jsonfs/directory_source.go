// Package jsonfs carga DTE desde archivos .json de un directorio local.
package jsonfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/dte-compras/internal/domain"
	"github.com/jhoicas/dte-compras/internal/domain/dte"
	"github.com/jhoicas/dte-compras/internal/domain/entity"
	"github.com/jhoicas/dte-compras/internal/domain/repository"
	"github.com/jhoicas/dte-compras/pkg/logger"
)

var _ repository.InvoiceSource = (*DirectorySource)(nil)

// Rejection archivo que no se pudo cargar y el motivo.
type Rejection struct {
	File string
	Err  error
}

func (r Rejection) Error() string { return r.File + ": " + r.Err.Error() }

func (r Rejection) Unwrap() error { return r.Err }

// DirectorySource implementación de InvoiceSource sobre un directorio.
// Carga todo en memoria la primera vez que se consulta; Reload vuelve a leer.
type DirectorySource struct {
	dir string
	log zerolog.Logger

	mu       sync.RWMutex
	loaded   bool
	records  []entity.InvoiceRecord
	byCode   map[string]int // código de generación → índice en records
	rejected []Rejection
}

// NewDirectorySource construye el adaptador sin leer el disco todavía.
func NewDirectorySource(dir string) *DirectorySource {
	return &DirectorySource{
		dir: dir,
		log: logger.WithComponent("jsonfs").With().Str("dir", dir).Logger(),
	}
}

// Dir directorio de origen.
func (s *DirectorySource) Dir() string { return s.dir }

// List devuelve los registros válidos en orden de nombre de archivo.
func (s *DirectorySource) List(ctx context.Context) ([]entity.InvoiceRecord, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.InvoiceRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// GetByGenerationCode busca por código de generación (acepta el UUID en
// minúsculas o sin guiones). Devuelve (nil, nil) si no existe.
func (s *DirectorySource) GetByGenerationCode(ctx context.Context, code string) (*entity.InvoiceRecord, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byCode[dte.NormalizeGenerationCode(code)]
	if !ok {
		return nil, nil
	}
	rec := s.records[i]
	return &rec, nil
}

// Rejected archivos descartados en la última carga.
func (s *DirectorySource) Rejected() []Rejection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Rejection, len(s.rejected))
	copy(out, s.rejected)
	return out
}

// Reload vuelve a leer el directorio completo.
func (s *DirectorySource) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *DirectorySource) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	return s.load(ctx)
}

// load requiere s.mu tomado en escritura.
func (s *DirectorySource) load(ctx context.Context) error {
	entries, err := os.ReadDir(s.dir) // ya ordenado por nombre
	if err != nil {
		return fmt.Errorf("jsonfs: leer directorio %s: %w", s.dir, err)
	}

	var (
		records  []entity.InvoiceRecord
		rejected []Rejection
		byCode   = make(map[string]int)
	)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.IsDir() {
			continue
		}
		name := e.Name()

		rec, err := s.readFile(name)
		if err != nil {
			rejected = append(rejected, Rejection{File: name, Err: err})
			s.log.Warn().Str("file", name).Err(err).Msg("archivo descartado")
			continue
		}

		if code := rec.GenerationCode(); code != "" {
			if prev, dup := byCode[code]; dup {
				s.log.Warn().
					Str("file", name).
					Str("codigo_generacion", code).
					Str("control_previo", records[prev].ControlNumber()).
					Msg("código de generación duplicado; se conserva el primero")
			} else {
				byCode[code] = len(records)
			}
		}
		for _, w := range rec.Warnings {
			s.log.Warn().Str("file", name).Str("warning", w.String()).Msg("dato no normalizable")
		}
		records = append(records, rec)
	}

	s.records, s.rejected, s.byCode = records, rejected, byCode
	s.loaded = true
	s.log.Info().Int("records", len(records)).Int("rejected", len(rejected)).Msg("DTE cargados")
	return nil
}

func (s *DirectorySource) readFile(name string) (entity.InvoiceRecord, error) {
	if !strings.EqualFold(filepath.Ext(name), ".json") {
		return entity.InvoiceRecord{}, fmt.Errorf("%w: solo se aceptan archivos .json", domain.ErrInvalidInput)
	}
	text, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return entity.InvoiceRecord{}, fmt.Errorf("leer archivo: %w", err)
	}
	return dte.Validate(text)
}
