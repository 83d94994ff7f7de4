package entity

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Item es cualquier entidad compatible con Product (Product, Smartphone, LawnGrass).
type Item interface {
	Name() string
	Description() string
	Price() decimal.Decimal
	Quantity() int
	SetPrice(price decimal.Decimal, confirm Confirmer) error
	SetQuantity(quantity int) error
	String() string
	base() *Product
}

// Product representa un artículo del catálogo.
// Price y Quantity solo cambian a través de SetPrice/SetQuantity.
type Product struct {
	id          string
	name        string
	description string
	price       decimal.Decimal // siempre > 0
	quantity    int             // siempre >= 0
}

// NewProduct construye un producto validando precio y cantidad iniciales.
func NewProduct(name, description string, price decimal.Decimal, quantity int) (*Product, error) {
	if !price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return &Product{
		id:          uuid.New().String(),
		name:        name,
		description: description,
		price:       price,
		quantity:    quantity,
	}, nil
}

func (p *Product) ID() string             { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) base() *Product         { return p }

// SetPrice cambia el precio. Un precio <= 0 se rechaza; una rebaja requiere
// confirmación explícita (confirm nil equivale a rechazar).
func (p *Product) SetPrice(price decimal.Decimal, confirm Confirmer) error {
	if !price.IsPositive() {
		log.Warn().Str("product", p.name).Str("price", price.String()).
			Msg("precio no debe ser nulo o negativo, se mantiene el actual")
		return domain.ErrInvalidPrice
	}
	if price.LessThan(p.price) {
		prompt := fmt.Sprintf("Rebajar el precio de %q de %s a %s?", p.name, p.price.StringFixed(2), price.StringFixed(2))
		if confirm == nil || !confirm.Confirm(prompt) {
			log.Info().Str("product", p.name).Msg("rebaja de precio cancelada")
			return domain.ErrPriceChangeDeclined
		}
	}
	p.price = price
	return nil
}

// SetQuantity cambia la cantidad disponible. Valores negativos se rechazan.
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		log.Warn().Str("product", p.name).Int("quantity", quantity).
			Msg("cantidad negativa, se mantiene la actual")
		return domain.ErrInvalidQuantity
	}
	p.quantity = quantity
	return nil
}

// TotalValue devuelve price * quantity.
func (p *Product) TotalValue() decimal.Decimal {
	return p.price.Mul(decimal.NewFromInt(int64(p.quantity)))
}

// String formato de vitrina: "<name>, <price> руб. Остаток: <quantity> шт.".
func (p *Product) String() string {
	return fmt.Sprintf("%s, %s руб. Остаток: %d шт.", p.name, p.price.StringFixed(2), p.quantity)
}

// Add suma el valor en inventario (price * quantity) de dos productos del mismo tipo concreto.
// Tipos distintos u operandos que no son productos devuelven domain.ErrType.
func Add(a, b any) (decimal.Decimal, error) {
	ia, okA := AsItem(a)
	ib, okB := AsItem(b)
	if !okA || !okB {
		return decimal.Zero, fmt.Errorf("sumar %T + %T: %w", a, b, domain.ErrType)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return decimal.Zero, fmt.Errorf("sumar %T + %T: %w", a, b, domain.ErrType)
	}
	return ia.base().TotalValue().Add(ib.base().TotalValue()), nil
}

// AsItem acepta v solo si es un Item no nulo; un puntero nil tipado no cuenta.
func AsItem(v any) (Item, bool) {
	item, ok := v.(Item)
	if !ok {
		return nil, false
	}
	if rv := reflect.ValueOf(item); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	return item, true
}
