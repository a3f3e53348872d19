package conformance

import (
	"errors"
	"fmt"
	"math"

	apiNum "numericadt/pkg/api/numeric"
	num "numericadt/pkg/numeric"
)

type sample[T apiNum.Number[T]] struct {
	x, y, z T
}

type property[T apiNum.Number[T]] struct {
	name string
	// applies filters samples the law is defined for; nil means all
	applies func(s sample[T]) bool
	holds   func(s sample[T]) bool
}

func nonZeroX[T apiNum.Number[T]](s sample[T]) bool { return !s.x.IsZero() }

// notNearZeroX excludes x within the variant's own tolerance of zero,
// where x and 2x are legitimately equal.
func notNearZeroX[T apiNum.Number[T]](s sample[T]) bool {
	return !s.x.IsZero() && !s.x.EqualTo(s.x.Sub(s.x))
}

// properties lists the laws every variant has to satisfy.
// Division by zero must fail with numeric.ErrDivisionByZero.
func properties[T apiNum.Number[T]]() []property[T] {
	return []property[T]{
		{
			name:  "equal-reflexive",
			holds: func(s sample[T]) bool { return s.x.EqualTo(s.x) },
		},
		{
			name:    "equal-detects-doubling",
			applies: notNearZeroX[T],
			holds:   func(s sample[T]) bool { return !s.x.EqualTo(s.x.Add(s.x)) },
		},
		{
			name:  "add-commutative",
			holds: func(s sample[T]) bool { return s.x.Add(s.y).EqualTo(s.y.Add(s.x)) },
		},
		{
			name:  "add-associative",
			holds: func(s sample[T]) bool { return s.x.Add(s.y).Add(s.z).EqualTo(s.x.Add(s.y.Add(s.z))) },
		},
		{
			name:  "add-inverse",
			holds: func(s sample[T]) bool { return s.x.Add(s.x.Negative()).IsZero() },
		},
		{
			name:  "sub-is-add-negative",
			holds: func(s sample[T]) bool { return s.x.Sub(s.y).EqualTo(s.x.Add(s.y.Negative())) },
		},
		{
			name:  "negative-involution",
			holds: func(s sample[T]) bool { return s.x.Negative().Negative().EqualTo(s.x) },
		},
		{
			name:  "mul-commutative",
			holds: func(s sample[T]) bool { return s.x.Mul(s.y).EqualTo(s.y.Mul(s.x)) },
		},
		{
			name:  "mul-associative",
			holds: func(s sample[T]) bool { return s.x.Mul(s.y.Mul(s.z)).EqualTo(s.x.Mul(s.y).Mul(s.z)) },
		},
		{
			name:    "div-inverts-mul",
			applies: nonZeroX[T],
			holds: func(s sample[T]) bool {
				q, err := s.x.Mul(s.y).Div(s.x)
				return err == nil && q.EqualTo(s.y)
			},
		},
		{
			name: "div-by-zero-fails",
			holds: func(s sample[T]) bool {
				_, err := s.x.Div(s.x.Sub(s.x))
				return errors.Is(err, num.ErrDivisionByZero)
			},
		},
		{
			name:  "conjugate-involution",
			holds: func(s sample[T]) bool { return s.x.Conjugate().Conjugate().EqualTo(s.x) },
		},
		{
			name:  "conjugate-sum-is-real",
			holds: func(s sample[T]) bool { return s.x.Add(s.x.Conjugate()).ImagPart().IsZero() },
		},
		{
			name:    "real-valued-parts",
			applies: func(s sample[T]) bool { return s.x.Kind().RealValued() },
			holds: func(s sample[T]) bool {
				return s.x.RealPart().EqualTo(s.x) && s.x.ImagPart().IsZero() && s.x.Conjugate().EqualTo(s.x)
			},
		},
		{
			name: "float64-is-real-part",
			holds: func(s sample[T]) bool {
				f, re := s.x.Float64(), s.x.RealPart().Float64()
				return f == re || (math.IsNaN(f) && math.IsNaN(re))
			},
		},
	}
}

type outcome struct {
	checked bool
	failed  bool
	reason  string
}

// evaluate runs one property on one sample. A panicking implementation fails the property.
func (p property[T]) evaluate(s sample[T]) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = outcome{checked: true, failed: true, reason: "panic: " + fmt.Sprint(r)}
		}
	}()
	if p.applies != nil && !p.applies(s) {
		return outcome{}
	}
	return outcome{checked: true, failed: !p.holds(s)}
}
