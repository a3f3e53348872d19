package numeric

import (
	api "numericadt/pkg/api/numeric"

	"github.com/pkg/errors"
)

// boxed erases the variant of a Number.
type boxed[T api.Number[T]] struct {
	x T
}

// Box wraps x into a Value. Operations on the result dispatch to x.
func Box[T api.Number[T]](x T) api.Value {
	return boxed[T]{x: x}
}

// Cast attempts to recover the variant T from a Value.
func Cast[T api.Number[T]](v api.Value) (T, error) {
	var zero T
	if v == nil {
		return zero, errors.Wrap(ErrInvalidType, "nil value")
	}
	b, ok := v.(boxed[T])
	if !ok {
		return zero, errors.Wrapf(ErrInvalidType, "%s is not %s", v.Kind(), zero.Kind())
	}
	return b.x, nil
}

func kindOf(v api.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

// operand unboxes y for a binary operation with b.
func (b boxed[T]) operand(op string, y api.Value) (T, error) {
	o, ok := y.(boxed[T])
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrKindMismatch, "%s: %s with %s", op, b.x.Kind(), kindOf(y))
	}
	return o.x, nil
}

func (b boxed[T]) Kind() api.Kind   { return b.x.Kind() }
func (b boxed[T]) IsZero() bool     { return b.x.IsZero() }
func (b boxed[T]) String() string   { return b.x.String() }
func (b boxed[T]) Float64() float64 { return b.x.Float64() }

func (b boxed[T]) RealPart() api.Value  { return boxed[T]{x: b.x.RealPart()} }
func (b boxed[T]) ImagPart() api.Value  { return boxed[T]{x: b.x.ImagPart()} }
func (b boxed[T]) Conjugate() api.Value { return boxed[T]{x: b.x.Conjugate()} }
func (b boxed[T]) Negative() api.Value  { return boxed[T]{x: b.x.Negative()} }

func (b boxed[T]) Add(y api.Value) (api.Value, error) {
	o, err := b.operand("add", y)
	if err != nil {
		return nil, err
	}
	return boxed[T]{x: b.x.Add(o)}, nil
}

func (b boxed[T]) Sub(y api.Value) (api.Value, error) {
	o, err := b.operand("sub", y)
	if err != nil {
		return nil, err
	}
	return boxed[T]{x: b.x.Sub(o)}, nil
}

func (b boxed[T]) Mul(y api.Value) (api.Value, error) {
	o, err := b.operand("mul", y)
	if err != nil {
		return nil, err
	}
	return boxed[T]{x: b.x.Mul(o)}, nil
}

func (b boxed[T]) Div(y api.Value) (api.Value, error) {
	o, err := b.operand("div", y)
	if err != nil {
		return nil, err
	}
	q, err := b.x.Div(o)
	if err != nil {
		return nil, err
	}
	return boxed[T]{x: q}, nil
}

// EqualTo implements numeric.Value.
func (b boxed[T]) EqualTo(y api.Value) bool {
	o, ok := y.(boxed[T])
	if !ok {
		return false
	}
	return b.x.EqualTo(o.x)
}
