package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/catalogo/internal/application/dto"
	"github.com/jhoicas/catalogo/internal/domain"
	"github.com/jhoicas/catalogo/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ImportUseCase construye categorías con productos reales a partir del archivo JSON.
// A diferencia de Category.ParseJSON, cada elemento del arreglo produce su propia categoría.
type ImportUseCase struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewImportUseCase construye el caso de uso. fs nil usa el sistema de archivos del SO.
func NewImportUseCase(fs afero.Fs, log zerolog.Logger) *ImportUseCase {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &ImportUseCase{fs: fs, log: log}
}

// Import lee path y devuelve las categorías en el orden del archivo.
func (uc *ImportUseCase) Import(ctx context.Context, path string) ([]*entity.Category, dto.ImportSummary, error) {
	var summary dto.ImportSummary
	data, err := afero.ReadFile(uc.fs, path)
	if err != nil {
		return nil, summary, fmt.Errorf("leer %s: %v: %w", path, err, domain.ErrInvalidInput)
	}
	var entries []dto.CategoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, summary, fmt.Errorf("decodificar %s: %v: %w", path, err, domain.ErrInvalidInput)
	}

	categories := make([]*entity.Category, 0, len(entries))
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, summary, err
		}
		products, err := uc.buildProducts(e.Products, &summary)
		if err != nil {
			return nil, summary, fmt.Errorf("categoría %d (%q): %w", i, e.Name, err)
		}
		categories = append(categories, entity.NewCategory(e.Name, e.Description, products))
		summary.Categories++
	}

	uc.log.Info().
		Str("path", path).
		Int("categories", summary.Categories).
		Int("products", summary.Products).
		Int("merged", summary.Merged).
		Int("skipped", summary.Skipped).
		Msg("catálogo importado")
	return categories, summary, nil
}

// buildProducts conserva el orden del archivo; los duplicados por nombre se fusionan
// en la primera aparición.
func (uc *ImportUseCase) buildProducts(raw []json.RawMessage, summary *dto.ImportSummary) ([]any, error) {
	products := make([]any, 0, len(raw))
	var items []entity.Item
	for _, r := range raw {
		if len(bytes.TrimSpace(r)) == 0 || bytes.TrimSpace(r)[0] != '{' {
			var v any
			if err := json.Unmarshal(r, &v); err != nil {
				return nil, err
			}
			products = append(products, v)
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(r))
		dec.UseNumber()
		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			return nil, err
		}
		before := len(items)
		item, err := entity.NewProductFromFields(fields, &items)
		if err != nil {
			return nil, err
		}
		switch {
		case item == nil:
			summary.Skipped++
		case len(items) > before:
			products = append(products, item)
			summary.Products++
		default:
			summary.Merged++
		}
	}
	return products, nil
}
