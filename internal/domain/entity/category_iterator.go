package entity

import "iter"

// CategoryIterator recorrido de solo lectura sobre una instantánea de los productos.
type CategoryIterator struct {
	items []any
	pos   int
}

// Iterator devuelve un iterador nuevo en cada llamada.
func (c *Category) Iterator() *CategoryIterator {
	return &CategoryIterator{items: c.Items()}
}

// Next devuelve el siguiente elemento; ok es false al agotarse.
func (it *CategoryIterator) Next() (v any, ok bool) {
	if it.pos >= len(it.items) {
		return nil, false
	}
	v = it.items[it.pos]
	it.pos++
	return v, true
}

// All secuencia perezosa para range-over-func; cada range arranca desde el principio.
func (c *Category) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		it := c.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
