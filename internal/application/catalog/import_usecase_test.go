package catalog_test

import (
	"context"
	"testing"

	"github.com/jhoicas/catalogo/internal/application/catalog"
	"github.com/jhoicas/catalogo/internal/domain"
	"github.com/jhoicas/catalogo/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
  {
    "name": "Смартфоны",
    "description": "Телефоны",
    "products": [
      {"name": "Iphone 15", "description": "512GB", "price": 210000.0, "quantity": 8},
      {"name": "Xiaomi", "description": "1024GB", "price": 31000.0, "quantity": 14},
      {"name": "Iphone 15", "description": "512GB", "price": 215000.5, "quantity": 2},
      {"name": "Roto", "description": "sin precio", "price": -1, "quantity": 1},
      "suelto"
    ]
  },
  {"name": "Vacía", "description": "", "products": []}
]`

func newImportUC(t *testing.T, files map[string]string) *catalog.ImportUseCase {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}
	return catalog.NewImportUseCase(fs, zerolog.Nop())
}

func TestImport_UnaCategoriaPorElemento(t *testing.T) {
	uc := newImportUC(t, map[string]string{"catalog.json": catalogJSON})
	catsBefore := entity.CategoryCount()

	cats, summary, err := uc.Import(context.Background(), "catalog.json")
	require.NoError(t, err)
	require.Len(t, cats, 2)

	phones := cats[0]
	assert.Equal(t, "Смартфоны", phones.Name())
	require.Equal(t, 3, phones.Len(), "duplicado fusionado e inválido descartado")

	items := phones.Items()
	iphone, ok := items[0].(entity.Item)
	require.True(t, ok)
	assert.Equal(t, "Iphone 15, 215000.50 руб. Остаток: 10 шт.", iphone.String())
	assert.Equal(t, "suelto", items[2], "los valores que no son objetos se conservan")

	assert.Equal(t, entity.NoProductsMessage, cats[1].Products())
	assert.Equal(t, catsBefore+2, entity.CategoryCount())

	assert.Equal(t, 2, summary.Categories)
	assert.Equal(t, 2, summary.Products)
	assert.Equal(t, 1, summary.Merged)
	assert.Equal(t, 1, summary.Skipped)
}

func TestImport_ErroresDeArchivo(t *testing.T) {
	uc := newImportUC(t, map[string]string{"roto.json": `[{"name":`})

	_, _, err := uc.Import(context.Background(), "no_existe.json")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.Import(context.Background(), "roto.json")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImport_ProductoSinClaves(t *testing.T) {
	uc := newImportUC(t, map[string]string{
		"c.json": `[{"name":"C","description":"d","products":[{"name":"sin precio","description":"d","quantity":1}]}]`,
	})

	_, _, err := uc.Import(context.Background(), "c.json")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestImport_ContextoCancelado(t *testing.T) {
	uc := newImportUC(t, map[string]string{"catalog.json": catalogJSON})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := uc.Import(ctx, "catalog.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImport_CantidadConDecimalesCero(t *testing.T) {
	uc := newImportUC(t, map[string]string{
		"c.json": `[{"name":"C","description":"d","products":[{"name":"té","description":"d","price":10,"quantity":8.0}]}]`,
	})

	cats, summary, err := uc.Import(context.Background(), "c.json")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "té, 10.00 руб. Остаток: 8 шт.", cats[0].Products())
	assert.Equal(t, 1, summary.Products)
}
