package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrValidation          = errors.New("faltan campos obligatorios")
	ErrType                = errors.New("tipo de producto incompatible")
	ErrInvalidPrice        = errors.New("el precio debe ser mayor que cero")
	ErrInvalidQuantity     = errors.New("la cantidad no puede ser negativa")
	ErrPriceChangeDeclined = errors.New("cambio de precio no confirmado")
)
