package numeric

import (
	"math/big"

	api "numericadt/pkg/api/numeric"

	"github.com/pkg/errors"
)

var _ api.Number[Rational] = Rational{}

// Rational is an exact fraction. Arithmetic never rounds, so equality is exact.
// The zero value is 0.
type Rational struct {
	r *big.Rat
}

// NewRational creates the fraction num/den.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, errors.Wrapf(ErrDivisionByZero, "%d / %d", num, den)
	}
	return Rational{r: big.NewRat(num, den)}, nil
}

// RationalFromRat creates a rational number holding a copy of r.
func RationalFromRat(r *big.Rat) Rational {
	if r == nil {
		return Rational{}
	}
	return Rational{r: new(big.Rat).Set(r)}
}

// Rat returns a copy of the underlying fraction.
func (x Rational) Rat() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

var ratZero = new(big.Rat)

// rat returns the fraction for reading only.
func (x Rational) rat() *big.Rat {
	if x.r == nil {
		return ratZero
	}
	return x.r
}

// Kind implements numeric.Number.
func (x Rational) Kind() api.Kind { return api.Rational }

// IsZero implements numeric.Number.
func (x Rational) IsZero() bool { return x.rat().Sign() == 0 }

// String implements numeric.Number.
func (x Rational) String() string { return x.rat().RatString() }

// RealPart implements numeric.Number.
func (x Rational) RealPart() Rational { return RationalFromRat(x.r) }

// ImagPart implements numeric.Number.
func (x Rational) ImagPart() Rational { return Rational{r: new(big.Rat)} }

// Conjugate implements numeric.Number.
func (x Rational) Conjugate() Rational { return RationalFromRat(x.r) }

// Negative implements numeric.Number.
func (x Rational) Negative() Rational {
	return Rational{r: new(big.Rat).Neg(x.rat())}
}

// Add implements numeric.Number.
func (x Rational) Add(y Rational) Rational {
	return Rational{r: new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub implements numeric.Number.
func (x Rational) Sub(y Rational) Rational {
	return Rational{r: new(big.Rat).Sub(x.rat(), y.rat())}
}

// Mul implements numeric.Number.
func (x Rational) Mul(y Rational) Rational {
	return Rational{r: new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div implements numeric.Number.
func (x Rational) Div(y Rational) (Rational, error) {
	if y.IsZero() {
		return Rational{}, errors.Wrapf(ErrDivisionByZero, "%s / %s", x, y)
	}
	return Rational{r: new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Float64 implements numeric.Number.
func (x Rational) Float64() float64 {
	f, _ := x.rat().Float64()
	return f
}

// EqualTo implements numeric.Number.
func (x Rational) EqualTo(y Rational) bool {
	return x.rat().Cmp(y.rat()) == 0
}
