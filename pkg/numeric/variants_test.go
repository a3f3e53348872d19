package numeric

import (
	"math"
	"math/big"
	"testing"

	api "numericadt/pkg/api/numeric"

	apd "github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealEqualTo(t *testing.T) {
	tests := []struct {
		name string
		x, y Real
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"within relative tolerance", 1, 1 + 1e-10, true},
		{"outside relative tolerance", 1, 1.001, false},
		{"near zero absolute floor", 0, 1e-13, true},
		{"near zero beyond floor", 0, 1e-6, false},
		{"large magnitudes", 1e12, 1e12 + 1, true},
		{"signed zeros", Real(math.Copysign(0, -1)), 0, true},
		{"both nan", Real(math.NaN()), Real(math.NaN()), true},
		{"nan and number", Real(math.NaN()), 1, false},
		{"same infinity", Real(math.Inf(1)), Real(math.Inf(1)), true},
		{"opposite infinities", Real(math.Inf(1)), Real(math.Inf(-1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.x.EqualTo(tt.y))
			assert.Equal(t, tt.want, tt.y.EqualTo(tt.x))
		})
	}
}

func TestRealParts(t *testing.T) {
	x := NewReal(-2.5)
	assert.Equal(t, api.Real, x.Kind())
	assert.Equal(t, Real(-2.5), x.RealPart())
	assert.True(t, x.ImagPart().IsZero())
	assert.Equal(t, Real(-2.5), x.Conjugate())
	assert.Equal(t, Real(2.5), x.Negative())
	assert.Equal(t, -2.5, x.Float64())
	assert.Equal(t, "-2.5", x.String())
}

func TestRealDivByZero(t *testing.T) {
	for _, x := range []Real{5, 0, -1e300} {
		q, err := x.Div(0)
		require.ErrorIs(t, err, ErrDivisionByZero)
		assert.Equal(t, Real(0), q)
	}
}

func TestComplexScenario(t *testing.T) {
	x := NewComplex(3, 4)
	y := NewComplex(1, -2)

	assert.Equal(t, NewComplex(4, 2), x.Add(y))
	assert.Equal(t, NewComplex(2, 6), x.Sub(y))
	assert.Equal(t, NewComplex(11, -2), x.Mul(y))
	assert.Equal(t, NewComplex(3, -4), x.Conjugate())
	assert.Equal(t, NewComplex(-3, -4), x.Negative())
	assert.Equal(t, NewComplex(3, 0), x.RealPart())
	assert.Equal(t, NewComplex(4, 0), x.ImagPart())
	assert.Equal(t, 3.0, x.Float64())
	assert.Equal(t, complex(3, 4), x.Complex128())

	q, err := x.Div(y)
	require.NoError(t, err)
	assert.True(t, q.EqualTo(NewComplex(-1, 2)), "got %s", q)

	_, err = x.Div(NewComplex(0, 0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestComplexEqualTo(t *testing.T) {
	x := NewComplex(3, 4)
	assert.True(t, x.EqualTo(NewComplex(3, 4+1e-10)))
	assert.False(t, x.EqualTo(NewComplex(3, -4)))
	assert.False(t, x.EqualTo(NewComplex(3.001, 4)))
	assert.True(t, NewComplex(0, 0).EqualTo(NewComplex(1e-13, -1e-13)))
	nan := NewComplex(math.NaN(), 0)
	assert.True(t, nan.EqualTo(nan))
	assert.False(t, nan.EqualTo(x))
}

func TestComplexEqualToNonFinite(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	tests := []struct {
		name string
		x, y Complex
		want bool
	}{
		{"nan real infinite imaginary", NewComplex(nan, inf), NewComplex(nan, inf), true},
		{"infinite real nan imaginary", NewComplex(inf, nan), NewComplex(inf, nan), true},
		{"infinite product", NewComplex(inf, 0).Mul(NewComplex(0, 1)), NewComplex(inf, 0).Mul(NewComplex(0, 1)), true},
		{"same infinity different imaginary", NewComplex(inf, 1), NewComplex(inf, 2), false},
		{"opposite infinities", NewComplex(inf, 1), NewComplex(-inf, 1), false},
		{"nan in different parts", NewComplex(nan, inf), NewComplex(inf, nan), false},
		{"infinite and finite", NewComplex(inf, 1), NewComplex(1e300, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.x.EqualTo(tt.y))
			assert.Equal(t, tt.want, tt.y.EqualTo(tt.x))
			assert.Equal(t, tt.want, Box(tt.x).EqualTo(Box(tt.y)))
		})
	}
}

func TestRational(t *testing.T) {
	third := mustRational(t, 1, 3)
	sixth := mustRational(t, 1, 6)

	assert.Equal(t, "1/2", third.Add(sixth).String())
	assert.Equal(t, "1/6", third.Sub(sixth).String())
	assert.Equal(t, "1/18", third.Mul(sixth).String())
	q, err := third.Div(sixth)
	require.NoError(t, err)
	assert.Equal(t, "2", q.String())
	assert.Equal(t, "-1/3", third.Negative().String())
	assert.Equal(t, 0.25, mustRational(t, 1, 4).Float64())
	assert.Equal(t, api.Rational, third.Kind())

	// exact arithmetic leaves no room for tolerance
	assert.True(t, third.Mul(mustRational(t, 3, 1)).EqualTo(mustRational(t, 1, 1)))
	assert.False(t, third.EqualTo(mustRational(t, 333333333, 1000000000)))

	_, err = NewRational(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = third.Div(Rational{})
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRationalDoesNotAlias(t *testing.T) {
	src := big.NewRat(1, 2)
	x := RationalFromRat(src)
	src.SetInt64(7)
	assert.Equal(t, "1/2", x.String())

	x.Rat().SetInt64(9)
	assert.Equal(t, "1/2", x.String())

	y := x.RealPart()
	z := x.Add(y)
	assert.Equal(t, "1/2", x.String())
	assert.Equal(t, "1/2", y.String())
	assert.Equal(t, "1", z.String())
}

func TestRationalZeroValue(t *testing.T) {
	var zero Rational
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, "3/4", zero.Add(mustRational(t, 3, 4)).String())
	assert.True(t, RationalFromRat(nil).IsZero())
}

func TestDecimal(t *testing.T) {
	a := NewDecimal(1, -1)
	b := NewDecimal(2, -1)

	assert.Equal(t, "0.3", a.Add(b).String())
	assert.Equal(t, "-0.1", a.Sub(b).String())
	assert.Equal(t, "0.02", a.Mul(b).String())
	q, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, q.EqualTo(NewDecimal(5, -1)), "got %s", q)
	assert.Equal(t, 12.34, NewDecimal(1234, -2).Float64())
	assert.Equal(t, api.Decimal, a.Kind())

	_, err = a.Div(NewDecimal(0, 3))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDecimalEqualTo(t *testing.T) {
	one := NewDecimal(1, 0)
	third, err := one.Div(NewDecimal(3, 0))
	require.NoError(t, err)
	nearlyOne := third.Mul(NewDecimal(3, 0))

	assert.NotEqual(t, 0, nearlyOne.GetDecimal().Cmp(one.GetDecimal()))
	assert.True(t, nearlyOne.EqualTo(one))
	assert.False(t, one.EqualTo(NewDecimal(10001, -4)))
	assert.True(t, NewDecimal(100, -2).EqualTo(one))

	inf := DecimalFromApd(&apd.Decimal{Form: apd.Infinite})
	negInf := DecimalFromApd(&apd.Decimal{Form: apd.Infinite, Negative: true})
	nan := DecimalFromApd(&apd.Decimal{Form: apd.NaN})
	assert.True(t, inf.EqualTo(inf))
	assert.False(t, inf.EqualTo(negInf))
	assert.False(t, inf.EqualTo(one))
	assert.True(t, nan.EqualTo(nan))
	assert.False(t, nan.EqualTo(one))
}

func TestDecimalOverflow(t *testing.T) {
	huge := NewDecimal(9, 6143)

	sq := huge.Mul(huge).GetDecimal()
	assert.Equal(t, apd.Infinite, sq.Form)
	assert.False(t, sq.Negative)

	negSq := huge.Negative().Mul(huge).GetDecimal()
	assert.Equal(t, apd.Infinite, negSq.Form)
	assert.True(t, negSq.Negative)

	q, err := huge.Div(NewDecimal(1, -6143))
	require.NoError(t, err)
	assert.Equal(t, apd.Infinite, q.GetDecimal().Form)
	assert.False(t, q.GetDecimal().Negative)
	assert.True(t, q.EqualTo(huge.Mul(huge)))
}

func TestDecimalDoesNotAlias(t *testing.T) {
	src := apd.New(25, -1)
	x := DecimalFromApd(src)
	src.SetInt64(0)
	assert.Equal(t, "2.5", x.String())

	x.GetDecimal().SetInt64(1)
	assert.Equal(t, "2.5", x.String())

	_ = x.Negative()
	assert.Equal(t, "2.5", x.String())
}

func TestDecimalZeroValue(t *testing.T) {
	var zero Decimal
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, "1.5", zero.Add(NewDecimal(15, -1)).String())
	assert.True(t, DecimalFromApd(nil).IsZero())
}
