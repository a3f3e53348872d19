package numeric

import (
	"log/slog"
	"math"

	api "numericadt/pkg/api/numeric"

	apd "github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

var _ api.Number[Decimal] = Decimal{}

const (
	decimalPrecision = 34
	// decimal128 exponent range, well inside the limits apd enforces itself
	decimalMaxExponent = 6144
	decimalMinExponent = -6143
)

var (
	// arithCtx never traps: overflow gives an infinite decimal, as with floats.
	arithCtx = apd.Context{
		Precision:   decimalPrecision,
		MaxExponent: decimalMaxExponent,
		MinExponent: decimalMinExponent,
		Traps:       0,
		Rounding:    apd.RoundHalfEven,
	}

	// decimalTolerance is the relative bound used by Decimal equality.
	decimalTolerance = apd.New(1, -30)

	decZero = apd.New(0, 0)
)

// Decimal is a base-10 number rounded half-even to 34 significant digits.
// The zero value is 0.
type Decimal struct {
	d *apd.Decimal
}

// NewDecimal creates the decimal coeff·10^exponent.
func NewDecimal(coeff int64, exponent int32) Decimal {
	return Decimal{d: apd.New(coeff, exponent)}
}

// DecimalFromApd creates a decimal holding a copy of value.
func DecimalFromApd(value *apd.Decimal) Decimal {
	if value == nil {
		return Decimal{}
	}
	return Decimal{d: new(apd.Decimal).Set(value)}
}

// GetDecimal returns a copy of the underlying apd.Decimal.
func (x Decimal) GetDecimal() *apd.Decimal {
	return new(apd.Decimal).Set(x.dec())
}

// dec returns the decimal for reading only.
func (x Decimal) dec() *apd.Decimal {
	if x.d == nil {
		return decZero
	}
	return x.d
}

type decimalOp func(d, x, y *apd.Decimal) (apd.Condition, error)

// apply runs op on x and y. When apd fails outright the result is NaN.
func (x Decimal) apply(op decimalOp, y Decimal) (Decimal, error) {
	d := new(apd.Decimal)
	if _, err := op(d, x.dec(), y.dec()); err != nil {
		d.Form = apd.NaN
		return Decimal{d: d}, err
	}
	return Decimal{d: d}, nil
}

// total is apply for operations without an error return; failures are logged.
func (x Decimal) total(name string, op decimalOp, y Decimal) Decimal {
	d, err := x.apply(op, y)
	if err != nil {
		slog.Warn("Decimal arithmetic failed", "op", name, "x", x.String(), "y", y.String(), "error", err)
	}
	return d
}

// Kind implements numeric.Number.
func (x Decimal) Kind() api.Kind { return api.Decimal }

// IsZero implements numeric.Number.
func (x Decimal) IsZero() bool { return x.dec().IsZero() }

// String implements numeric.Number.
func (x Decimal) String() string { return x.dec().String() }

// RealPart implements numeric.Number.
func (x Decimal) RealPart() Decimal { return DecimalFromApd(x.d) }

// ImagPart implements numeric.Number.
func (x Decimal) ImagPart() Decimal { return NewDecimal(0, 0) }

// Conjugate implements numeric.Number.
func (x Decimal) Conjugate() Decimal { return DecimalFromApd(x.d) }

// Negative implements numeric.Number.
func (x Decimal) Negative() Decimal {
	return Decimal{d: new(apd.Decimal).Neg(x.dec())}
}

// Add implements numeric.Number.
func (x Decimal) Add(y Decimal) Decimal { return x.total("add", arithCtx.Add, y) }

// Sub implements numeric.Number.
func (x Decimal) Sub(y Decimal) Decimal { return x.total("sub", arithCtx.Sub, y) }

// Mul implements numeric.Number.
func (x Decimal) Mul(y Decimal) Decimal { return x.total("mul", arithCtx.Mul, y) }

// Div implements numeric.Number.
func (x Decimal) Div(y Decimal) (Decimal, error) {
	if y.IsZero() {
		return Decimal{}, errors.Wrapf(ErrDivisionByZero, "%s / %s", x, y)
	}
	q, err := x.apply(arithCtx.Quo, y)
	if err != nil {
		return q, errors.Wrapf(err, "%s / %s", x, y)
	}
	return q, nil
}

// Float64 implements numeric.Number.
func (x Decimal) Float64() float64 {
	f, err := x.dec().Float64()
	if err != nil {
		return math.NaN()
	}
	return f
}

// EqualTo implements numeric.Number. Finite decimals are equal when
// |x-y| <= decimalTolerance·max(|x|,|y|).
func (x Decimal) EqualTo(y Decimal) bool {
	a, b := x.dec(), y.dec()
	if a.Form != apd.Finite || b.Form != apd.Finite {
		if a.Form == apd.Infinite && b.Form == apd.Infinite {
			return a.Negative == b.Negative
		}
		return a.Form != apd.Finite && a.Form != apd.Infinite &&
			b.Form != apd.Finite && b.Form != apd.Infinite
	}
	if a.Cmp(b) == 0 {
		return true
	}

	diff := new(apd.Decimal)
	if _, err := arithCtx.Sub(diff, a, b); err != nil {
		return false
	}
	diff.Abs(diff)

	scale := new(apd.Decimal).Abs(a)
	if absB := new(apd.Decimal).Abs(b); absB.Cmp(scale) > 0 {
		scale = absB
	}
	bound := new(apd.Decimal)
	if _, err := arithCtx.Mul(bound, scale, decimalTolerance); err != nil {
		return false
	}
	return diff.Cmp(bound) <= 0
}
