package modular

import "errors"

var (
	// ErrModulusMismatch is returned when an operation is given two values
	// that are residues of different moduli.
	ErrModulusMismatch = errors.New("modulus mismatch")

	// ErrDivideByZero is returned when the divisor is the zero residue.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrNoInverse is returned when the divisor shares a factor with the
	// modulus and so has no multiplicative inverse.
	ErrNoInverse = errors.New("no multiplicative inverse")

	// ErrNoSquareRoot is returned when the value is not a quadratic residue.
	ErrNoSquareRoot = errors.New("no square root")
)
