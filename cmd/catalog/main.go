package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/catalogo/internal/application/catalog"
	"github.com/jhoicas/catalogo/internal/domain/entity"
	"github.com/jhoicas/catalogo/internal/infrastructure/console"
	"github.com/jhoicas/catalogo/pkg/config"
	"github.com/jhoicas/catalogo/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog", cfg.Catalog.Path).
		Msg("iniciando aplicación")

	importUC := catalog.NewImportUseCase(afero.NewOsFs(), log.Zerolog())
	categories, _, err := importUC.Import(context.Background(), cfg.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("importar catálogo")
	}

	discount, err := decimal.NewFromString(cfg.Catalog.DiscountPercent)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Catalog.DiscountPercent).Msg("CATALOG_DISCOUNT_PERCENT inválido")
	}
	if discount.IsPositive() {
		var confirm entity.Confirmer = console.NewConfirmer(os.Stdin, os.Stdout)
		if cfg.Catalog.AssumeYes {
			confirm = console.AssumeYes
		}
		res, err := catalog.NewDiscountUseCase(confirm, log.Zerolog()).Apply(categories, discount)
		if err != nil {
			log.Fatal().Err(err).Msg("aplicar rebaja")
		}
		if res.Declined > 0 {
			log.Warn().Int("declined", res.Declined).Msg("algunas rebajas no se aplicaron")
		}
	}

	for _, c := range categories {
		log.Debug().Str("category", c.Name()).Int("items", c.Len()).Msg("mostrando categoría")
		fmt.Println(c)
		fmt.Println(c.Products())
		fmt.Println()
	}
	fmt.Printf("Категорий: %d, товаров: %d\n", entity.CategoryCount(), entity.ProductCount())
}
