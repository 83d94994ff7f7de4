package entity

import "go.uber.org/atomic"

// Contadores acumulados del proceso: solo crecen, nunca se reinician por instancia.
var (
	categoryCount atomic.Int64
	productCount  atomic.Int64
)

// CategoryCount total de categorías construidas en el proceso.
func CategoryCount() int64 { return categoryCount.Load() }

// ProductCount total de productos registrados en categorías (construcción + AddProduct).
func ProductCount() int64 { return productCount.Load() }
