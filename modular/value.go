package modular

import (
	"fmt"
	"math"
)

// Value is an integer residue modulo a positive modulus. The value is always
// kept in the range [0, modulus). Values are immutable; every operation
// returns a new Value.
//
// Arithmetic is only defined between values that share the same modulus. The
// operator style methods (Add, Sub, Mul) panic when this is violated, in the
// same way that indexing out of range panics, whereas TryDiv reports it as an
// error because division can also fail for legitimate inputs.
type Value struct {
	value   int32
	modulus int32
}

// New returns the residue of value modulo modulus. Negative values wrap, so
// that New(-1, 11) is 10. It panics if the modulus is not positive or does not
// fit in 31 bits.
func New(value, modulus int) Value {
	if modulus <= 0 || modulus > math.MaxInt32 {
		panic(fmt.Sprintf("modulus should be positive: got %v", modulus))
	}
	return Value{value: int32(floorMod(int64(value), int64(modulus))), modulus: int32(modulus)}
}

// Zero returns the zero residue for the given modulus.
func Zero(modulus int) Value {
	return New(0, modulus)
}

// One returns the residue 1 for the given modulus.
func One(modulus int) Value {
	return New(1, modulus)
}

// Int returns the value as an integer in [0, modulus).
func (v Value) Int() int {
	return int(v.value)
}

// Modulus returns the modulus of the value.
func (v Value) Modulus() int {
	return int(v.modulus)
}

// IsZero returns true if the value is the zero residue.
func (v Value) IsZero() bool {
	return v.value == 0
}

// Eq returns true if the two values are the same residue. Only the value is
// compared; callers must not compare values of differing moduli.
func (v Value) Eq(other Value) bool {
	return v.value == other.value
}

// EqInt returns true if the value equals the given integer. The integer is not
// reduced first.
func (v Value) EqInt(x int) bool {
	return int(v.value) == x
}

// String implements the Stringer interface.
func (v Value) String() string {
	return fmt.Sprintf("%v mod %v", v.value, v.modulus)
}

// Add returns v + rhs.
func (v Value) Add(rhs Value) Value {
	v.mustMatch(rhs)
	return v.reduce(int64(v.value) + int64(rhs.value))
}

// Sub returns v - rhs.
func (v Value) Sub(rhs Value) Value {
	v.mustMatch(rhs)
	return v.reduce(int64(v.value) - int64(rhs.value))
}

// Mul returns v * rhs.
func (v Value) Mul(rhs Value) Value {
	v.mustMatch(rhs)
	return v.reduce(int64(v.value) * int64(rhs.value))
}

// Neg returns -v.
func (v Value) Neg() Value {
	return v.reduce(-int64(v.value))
}

// Scale returns v * k for a plain integer k.
func (v Value) Scale(k int) Value {
	return v.Mul(New(k, int(v.modulus)))
}

// Pow returns v raised to the power n by repeated multiplication. Pow(0) is
// one. It panics if n is negative.
func (v Value) Pow(n int) Value {
	if n < 0 {
		panic(fmt.Sprintf("exponent should be non-negative: got %v", n))
	}
	acc := One(int(v.modulus))
	for i := 0; i < n; i++ {
		acc = acc.Mul(v)
	}
	return acc
}

// TryDiv returns the unique k in [0, modulus) such that k * rhs = v. The
// quotient is found by scanning every candidate, which is fine for the small
// moduli this package is used with.
func (v Value) TryDiv(rhs Value) (Value, error) {
	if v.modulus != rhs.modulus {
		return Value{}, fmt.Errorf("dividing %v by %v: %w", v, rhs, ErrModulusMismatch)
	}
	if rhs.value == 0 {
		return Value{}, fmt.Errorf("dividing %v: %w", v, ErrDivideByZero)
	}
	if gcd(int64(rhs.value), int64(v.modulus)) != 1 {
		return Value{}, fmt.Errorf("dividing %v by %v: %w", v, rhs, ErrNoInverse)
	}
	for k := int32(0); k < v.modulus; k++ {
		if floorMod(int64(k)*int64(rhs.value), int64(v.modulus)) == int64(v.value) {
			return Value{value: k, modulus: v.modulus}, nil
		}
	}
	// Unreachable when rhs is a unit.
	return Value{}, fmt.Errorf("dividing %v by %v: %w", v, rhs, ErrNoInverse)
}

// Sqrt returns the smallest x in [0, modulus) such that x * x = v.
func (v Value) Sqrt() (Value, error) {
	for x := int32(0); x < v.modulus; x++ {
		if floorMod(int64(x)*int64(x), int64(v.modulus)) == int64(v.value) {
			return Value{value: x, modulus: v.modulus}, nil
		}
	}
	return Value{}, fmt.Errorf("square root of %v: %w", v, ErrNoSquareRoot)
}

func (v Value) reduce(x int64) Value {
	return Value{value: int32(floorMod(x, int64(v.modulus))), modulus: v.modulus}
}

func (v Value) mustMatch(rhs Value) {
	if v.modulus != rhs.modulus {
		panic(fmt.Sprintf("modulus mismatch: %v and %v", v, rhs))
	}
}

func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
