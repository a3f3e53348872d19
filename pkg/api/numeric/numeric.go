package numeric

import "fmt"

// Kind represents the representation behind a numeric value
type Kind int

const (
	// Nothing marks the absence of a number
	Nothing Kind = iota
	// Real represents a float64 value
	Real
	// Complex represents a complex128 value
	Complex
	// Rational represents an exact fraction of arbitrary size
	Rational
	// Decimal represents an arbitrary decimal value with fixed precision
	Decimal
)

var kindNames = [...]string{
	Nothing:  "nothing",
	Real:     "real",
	Complex:  "complex",
	Rational: "rational",
	Decimal:  "decimal",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// RealValued reports whether values of this kind have no imaginary component.
func (k Kind) RealValued() bool {
	return k == Real || k == Rational || k == Decimal
}

// Number is the operation set every numeric variant provides.
// T is the variant itself, so operands and results never change representation.
// Implementations are immutable: no method modifies its receiver or arguments,
// and results never share memory with them.
type Number[T any] interface {
	fmt.Stringer
	// Kind returns the representation of the value
	Kind() Kind
	// IsZero reports whether the value is the additive identity
	IsZero() bool

	// RealPart returns Re(x)
	RealPart() T
	// ImagPart returns Im(x) as a value of the same variant
	ImagPart() T
	// Conjugate returns x*
	Conjugate() T
	// Negative returns -x
	Negative() T

	// Add returns x + y
	Add(y T) T
	// Sub returns x - y
	Sub(y T) T
	// Mul returns x * y
	Mul(y T) T
	// Div returns x / y, or an error when y is the additive identity
	Div(y T) (T, error)

	// Float64 returns the float64 nearest to the real component of x
	Float64() float64
	// EqualTo checks if two values are equal within the variant's tolerance
	EqualTo(y T) bool
}

// Value is a Number with its variant erased. Binary operations fail
// when the operands have different kinds.
type Value interface {
	fmt.Stringer
	Kind() Kind
	IsZero() bool

	RealPart() Value
	ImagPart() Value
	Conjugate() Value
	Negative() Value

	Add(y Value) (Value, error)
	Sub(y Value) (Value, error)
	Mul(y Value) (Value, error)
	Div(y Value) (Value, error)

	Float64() float64
	// EqualTo is false for values of different kinds
	EqualTo(y Value) bool
}
