package bch

import (
	"github.com/renproject/checkdigit/hamming"
	"github.com/renproject/checkdigit/modular"
)

// Locator holds the coefficients of the error locator quadratic
//
//	P x^2 + Q x + R
//
// derived from a syndrome vector. When all three coefficients are zero the
// syndromes are consistent with a single error; otherwise the roots of the
// quadratic are the positions of two errors.
type Locator struct {
	P, Q, R modular.Value
}

// NewLocator computes the error locator coefficients
//
//	P = S1^2 - S0 S2
//	Q = S0 S3 - S1 S2
//	R = S2^2 - S1 S3
func NewLocator(s hamming.Syndrome) Locator {
	return Locator{
		P: s[1].Pow(2).Sub(s[0].Mul(s[2])),
		Q: s[0].Mul(s[3]).Sub(s[1].Mul(s[2])),
		R: s[2].Pow(2).Sub(s[1].Mul(s[3])),
	}
}

// IsZero returns true if all coefficients are zero.
func (l Locator) IsZero() bool {
	return l.P.IsZero() && l.Q.IsZero() && l.R.IsZero()
}

// Discriminant returns Q^2 - 4PR.
func (l Locator) Discriminant() modular.Value {
	return l.Q.Pow(2).Sub(l.P.Mul(l.R).Scale(4))
}

// Roots returns the two roots (-Q +- sqrt(D)) / 2P, with the root for the
// smallest square root of the discriminant first. It returns NoValidRoots if
// the discriminant has no square root and DivisionError if P is zero.
func (l Locator) Roots() (modular.Value, modular.Value, Reason) {
	root, err := l.Discriminant().Sqrt()
	if err != nil {
		return modular.Value{}, modular.Value{}, NoValidRoots
	}
	twoP := l.P.Scale(2)
	x1, err := root.Sub(l.Q).TryDiv(twoP)
	if err != nil {
		return modular.Value{}, modular.Value{}, DivisionError
	}
	x2, err := l.Q.Neg().Sub(root).TryDiv(twoP)
	if err != nil {
		return modular.Value{}, modular.Value{}, DivisionError
	}
	return x1, x2, NoReason
}
