package numeric

import (
	"math"
	"math/cmplx"
	"strconv"

	api "numericadt/pkg/api/numeric"

	"github.com/pkg/errors"
)

var _ api.Number[Complex] = Complex(0)

// Complex is a complex128 number.
//
// Float64 yields the real component; use Complex128 when both are needed.
// Two complex numbers are equal when the modulus of their difference is
// within tolerance of the larger modulus.
type Complex complex128

// NewComplex creates a new complex number re + im·i.
func NewComplex(re, im float64) Complex {
	return Complex(complex(re, im))
}

// Kind implements numeric.Number.
func (x Complex) Kind() api.Kind { return api.Complex }

// IsZero implements numeric.Number.
func (x Complex) IsZero() bool { return x == 0 }

// String implements numeric.Number.
func (x Complex) String() string {
	return strconv.FormatComplex(complex128(x), 'g', -1, 128)
}

// Complex128 returns both components of x.
func (x Complex) Complex128() complex128 { return complex128(x) }

// RealPart implements numeric.Number.
func (x Complex) RealPart() Complex {
	return Complex(complex(real(x), 0))
}

// ImagPart implements numeric.Number.
func (x Complex) ImagPart() Complex {
	return Complex(complex(imag(x), 0))
}

// Conjugate implements numeric.Number.
func (x Complex) Conjugate() Complex {
	return Complex(cmplx.Conj(complex128(x)))
}

// Negative implements numeric.Number.
func (x Complex) Negative() Complex { return -x }

// Add implements numeric.Number.
func (x Complex) Add(y Complex) Complex { return x + y }

// Sub implements numeric.Number.
func (x Complex) Sub(y Complex) Complex { return x - y }

// Mul implements numeric.Number.
func (x Complex) Mul(y Complex) Complex { return x * y }

// Div implements numeric.Number.
func (x Complex) Div(y Complex) (Complex, error) {
	if y.IsZero() {
		return 0, errors.Wrapf(ErrDivisionByZero, "%s / %s", x, y)
	}
	return x / y, nil
}

// Float64 implements numeric.Number.
func (x Complex) Float64() float64 { return real(x) }

// EqualTo implements numeric.Number.
func (x Complex) EqualTo(y Complex) bool {
	a, b := complex128(x), complex128(y)
	if a == b {
		return true
	}
	// parts holding NaN or an infinity are compared one by one
	if !finite(a) || !finite(b) {
		return floatsEqual(real(a), real(b)) && floatsEqual(imag(a), imag(b))
	}
	return withinTolerance(cmplx.Abs(a-b), math.Max(cmplx.Abs(a), cmplx.Abs(b)))
}

func finite(c complex128) bool {
	re, im := real(c), imag(c)
	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}
