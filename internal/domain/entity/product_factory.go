package entity

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jhoicas/catalogo/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Claves obligatorias de un producto en formato map (JSON decodificado).
var requiredProductKeys = []string{"name", "description", "price", "quantity"}

// NewProductFromFields crea un producto desde un map de campos.
//   - Falta alguna clave obligatoria o su tipo no es válido: domain.ErrValidation.
//   - Precio <= 0 o cantidad negativa: devuelve (nil, nil) y registra un aviso.
//   - Si existing ya contiene un producto con el mismo nombre, se suman las cantidades,
//     se conserva el precio mayor y se devuelve esa misma instancia.
//   - Si no, el producto nuevo se agrega al final de *existing (si existing no es nil).
func NewProductFromFields(fields map[string]any, existing *[]Item) (Item, error) {
	for _, key := range requiredProductKeys {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("campo %q: %w", key, domain.ErrValidation)
		}
	}
	name, ok := fields["name"].(string)
	if !ok {
		return nil, fmt.Errorf("campo \"name\" debe ser texto: %w", domain.ErrValidation)
	}
	description, ok := fields["description"].(string)
	if !ok {
		return nil, fmt.Errorf("campo \"description\" debe ser texto: %w", domain.ErrValidation)
	}
	price, err := toDecimal(fields["price"])
	if err != nil {
		return nil, fmt.Errorf("campo \"price\": %v: %w", err, domain.ErrValidation)
	}
	quantity, err := toInt(fields["quantity"])
	if err != nil {
		return nil, fmt.Errorf("campo \"quantity\": %v: %w", err, domain.ErrValidation)
	}
	if !price.IsPositive() || quantity < 0 {
		log.Warn().Str("product", name).Str("price", price.String()).Int("quantity", quantity).
			Msg("producto descartado: precio o cantidad inválidos")
		return nil, nil
	}

	if existing != nil {
		key := norm.NFC.String(name)
		for _, it := range *existing {
			if norm.NFC.String(it.Name()) != key {
				continue
			}
			p := it.base()
			p.quantity += quantity
			if price.GreaterThan(p.price) {
				p.price = price
			}
			return it, nil
		}
	}

	p, err := NewProduct(name, description, price, quantity)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		*existing = append(*existing, p)
	}
	return p, nil
}

var (
	maxInt = decimal.NewFromInt(math.MaxInt)
	minInt = decimal.NewFromInt(math.MinInt)
)

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, fmt.Errorf("%v no es un número finito", n)
		}
		return decimal.NewFromFloat(n), nil
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, fmt.Errorf("%v no es un número finito", n)
		}
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(n)
	default:
		return decimal.Zero, fmt.Errorf("tipo %T no numérico", v)
	}
}

// toInt acepta cualquier valor numérico entero (8, 8.0, "1e1") dentro del rango de int.
func toInt(v any) (int, error) {
	if n, ok := v.(int); ok {
		return n, nil
	}
	d, err := toDecimal(v)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%s no es entero", d)
	}
	if d.GreaterThan(maxInt) || d.LessThan(minInt) {
		return 0, fmt.Errorf("%s fuera de rango", d)
	}
	return int(d.IntPart()), nil
}
