package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// NoProductsMessage texto de Products() cuando la categoría está vacía.
const NoProductsMessage = "Нет товаров"

// Category agrupa productos. Los campos solo se modifican vía AddProduct y ParseJSON.
// Los elementos suelen ser Item, pero ParseJSON puede dejar valores crudos del JSON.
type Category struct {
	id          string
	name        string
	description string
	products    []any
}

// NewCategory construye la categoría e incrementa los contadores del proceso
// (una categoría más y len(products) productos más).
func NewCategory(name, description string, products []any) *Category {
	c := &Category{
		id:          uuid.New().String(),
		name:        name,
		description: description,
		products:    append([]any(nil), products...),
	}
	categoryCount.Inc()
	productCount.Add(int64(len(products)))
	return c
}

func (c *Category) ID() string          { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }
func (c *Category) Len() int            { return len(c.products) }

// Items copia de los elementos en orden de inserción.
func (c *Category) Items() []any {
	return append([]any(nil), c.products...)
}

// AddProduct agrega un producto. Cualquier valor que no sea Item devuelve domain.ErrType.
func (c *Category) AddProduct(v any) error {
	item, ok := AsItem(v)
	if !ok {
		return fmt.Errorf("agregar %T a la categoría %q: %w", v, c.name, domain.ErrType)
	}
	c.products = append(c.products, item)
	productCount.Inc()
	return nil
}

// Products una línea por elemento; los Item usan su formato de vitrina.
func (c *Category) Products() string {
	if len(c.products) == 0 {
		return NoProductsMessage
	}
	lines := make([]string, 0, len(c.products))
	for _, v := range c.products {
		if item, ok := AsItem(v); ok {
			lines = append(lines, item.String())
			continue
		}
		lines = append(lines, fmt.Sprint(v))
	}
	return strings.Join(lines, "\n")
}

// String "<name>, количество продуктов: <total quantity> шт.".
func (c *Category) String() string {
	total := 0
	for _, v := range c.products {
		if item, ok := AsItem(v); ok {
			total += item.Quantity()
		}
	}
	return fmt.Sprintf("%s, количество продуктов: %d шт.", c.name, total)
}

// ParseJSON lee path del sistema de archivos del SO. Ver ParseJSONFrom.
func (c *Category) ParseJSON(path string) []map[string]any {
	return c.ParseJSONFrom(afero.NewOsFs(), path)
}

// ParseJSONFrom importa name, description y products desde un arreglo JSON de objetos.
// Cada elemento sobrescribe los campos en orden, por lo que el último gana.
// Archivo inexistente o JSON mal formado devuelven un slice vacío. No toca los contadores.
func (c *Category) ParseJSONFrom(fs afero.Fs, path string) []map[string]any {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("no se pudo leer el archivo de categorías")
		return []map[string]any{}
	}
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("JSON de categorías mal formado")
		return []map[string]any{}
	}
	for _, e := range entries {
		if name, ok := e["name"].(string); ok {
			c.name = name
		}
		if description, ok := e["description"].(string); ok {
			c.description = description
		}
		if products, ok := e["products"].([]any); ok {
			c.products = append([]any(nil), products...)
		}
	}
	if entries == nil {
		entries = []map[string]any{}
	}
	return entries
}
