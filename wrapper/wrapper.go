// Package wrapper provides single-field combining wrappers whose derived
// parameter schema is identical to the wrapped field's own schema. The
// structural traversal sees each of them as a one-field struct and passes
// straight through; the wrappers add combining behavior, never schema
// constraints.
package wrapper

import "cmp"

// Number constrains the numeric element types accepted by Sum and Product.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum combines by addition.
type Sum[T Number] struct {
	Value T
}

// Combine returns the element-wise sum.
func (s Sum[T]) Combine(o Sum[T]) Sum[T] { return Sum[T]{Value: s.Value + o.Value} }

// Product combines by multiplication.
type Product[T Number] struct {
	Value T
}

// Combine returns the element-wise product.
func (p Product[T]) Combine(o Product[T]) Product[T] { return Product[T]{Value: p.Value * o.Value} }

// All combines by logical conjunction.
type All struct {
	Value bool
}

// Combine returns the conjunction of both values.
func (a All) Combine(o All) All { return All{Value: a.Value && o.Value} }

// Any combines by logical disjunction.
type Any struct {
	Value bool
}

// Combine returns the disjunction of both values.
func (a Any) Combine(o Any) Any { return Any{Value: a.Value || o.Value} }

// First keeps the first present value. A nil Value means absent.
type First[T any] struct {
	Value *T
}

// Combine returns f when it holds a value, o otherwise.
func (f First[T]) Combine(o First[T]) First[T] {
	if f.Value != nil {
		return f
	}
	return o
}

// Last keeps the last present value. A nil Value means absent.
type Last[T any] struct {
	Value *T
}

// Combine returns o when it holds a value, f otherwise.
func (l Last[T]) Combine(o Last[T]) Last[T] {
	if o.Value != nil {
		return o
	}
	return l
}

// Down inverts the natural ordering of its element.
type Down[T cmp.Ordered] struct {
	Value T
}

// Compare orders Down values opposite to cmp.Compare on the elements.
func (d Down[T]) Compare(o Down[T]) int { return cmp.Compare(o.Value, d.Value) }
