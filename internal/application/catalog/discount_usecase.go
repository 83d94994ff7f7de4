package catalog

import (
	"errors"
	"fmt"

	"github.com/jhoicas/catalogo/internal/domain"
	"github.com/jhoicas/catalogo/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountUseCase aplica una rebaja porcentual a todos los productos de las categorías.
// Cada rebaja pasa por SetPrice, así que requiere confirmación individual.
type DiscountUseCase struct {
	confirm entity.Confirmer
	log     zerolog.Logger
}

// NewDiscountUseCase construye el caso de uso.
func NewDiscountUseCase(confirm entity.Confirmer, log zerolog.Logger) *DiscountUseCase {
	return &DiscountUseCase{confirm: confirm, log: log}
}

// DiscountResult cuántos precios cambiaron y cuántas rebajas se rechazaron.
type DiscountResult struct {
	Applied  int
	Declined int
}

// Apply rebaja percent% (0 < percent < 100). Los elementos que no son productos se ignoran.
// El precio resultante se redondea a 2 decimales.
func (uc *DiscountUseCase) Apply(categories []*entity.Category, percent decimal.Decimal) (DiscountResult, error) {
	var res DiscountResult
	if !percent.IsPositive() || percent.GreaterThanOrEqual(hundred) {
		return res, fmt.Errorf("porcentaje %s fuera de rango: %w", percent, domain.ErrInvalidInput)
	}
	factor := hundred.Sub(percent).Div(hundred)
	for _, c := range categories {
		for v := range c.All() {
			item, ok := entity.AsItem(v)
			if !ok {
				continue
			}
			newPrice := item.Price().Mul(factor).Round(2)
			err := item.SetPrice(newPrice, uc.confirm)
			switch {
			case err == nil:
				res.Applied++
			case errors.Is(err, domain.ErrPriceChangeDeclined), errors.Is(err, domain.ErrInvalidPrice):
				res.Declined++
			default:
				return res, err
			}
		}
	}
	uc.log.Info().Str("percent", percent.String()).
		Int("applied", res.Applied).Int("declined", res.Declined).
		Msg("rebaja aplicada")
	return res, nil
}
