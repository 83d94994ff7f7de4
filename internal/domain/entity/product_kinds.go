package entity

import "github.com/shopspring/decimal"

// Smartphone extiende Product con datos técnicos; comparte sus validaciones.
type Smartphone struct {
	Product
	Efficiency float64
	Model      string
	Memory     int // GB
	Color      string
}

// NewSmartphone construye un smartphone validando precio y cantidad como NewProduct.
func NewSmartphone(name, description string, price decimal.Decimal, quantity int,
	efficiency float64, model string, memory int, color string) (*Smartphone, error) {
	p, err := NewProduct(name, description, price, quantity)
	if err != nil {
		return nil, err
	}
	return &Smartphone{
		Product:    *p,
		Efficiency: efficiency,
		Model:      model,
		Memory:     memory,
		Color:      color,
	}, nil
}

// LawnGrass extiende Product con datos de cultivo.
type LawnGrass struct {
	Product
	Country           string
	GerminationPeriod string
	Color             string
}

// NewLawnGrass construye césped validando precio y cantidad como NewProduct.
func NewLawnGrass(name, description string, price decimal.Decimal, quantity int,
	country, germinationPeriod, color string) (*LawnGrass, error) {
	p, err := NewProduct(name, description, price, quantity)
	if err != nil {
		return nil, err
	}
	return &LawnGrass{
		Product:           *p,
		Country:           country,
		GerminationPeriod: germinationPeriod,
		Color:             color,
	}, nil
}
