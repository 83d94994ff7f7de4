package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "catalogo", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "data/products.json", cfg.Catalog.Path)
	assert.False(t, cfg.Catalog.AssumeYes)
	assert.Equal(t, "0", cfg.Catalog.DiscountPercent)
}

func TestFromViper_Valores(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("LOG_LEVEL", "debug")
	v.Set("CATALOG_PATH", "/tmp/cats.json")
	v.Set("CATALOG_ASSUME_YES", "true")
	v.Set("CATALOG_DISCOUNT_PERCENT", "15")

	cfg := fromViper(v)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/cats.json", cfg.Catalog.Path)
	assert.True(t, cfg.Catalog.AssumeYes)
	assert.Equal(t, "15", cfg.Catalog.DiscountPercent)
}

func TestGetBool_ValorInvalidoUsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("CATALOG_ASSUME_YES", "tal vez")
	assert.False(t, getBool(v, "CATALOG_ASSUME_YES", false))
	assert.True(t, getBool(v, "CATALOG_ASSUME_YES", true))
}

func TestLoad_LeeEntorno(t *testing.T) {
	t.Setenv("CATALOG_PATH", "env.json")
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "env.json", cfg.Catalog.Path)
}
