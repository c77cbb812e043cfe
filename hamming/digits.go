package hamming

import (
	"strings"
	"unicode/utf8"
)

// Digits is a sequence of decimal digits. Each element should be in [0, 9].
// Positions in the sequence are reported 1-indexed.
type Digits []uint8

// ParseDigits converts a string of decimal characters into a Digits sequence.
func ParseDigits(s string) (Digits, error) {
	digits := make(Digits, 0, len(s))
	for i, r := range []rune(s) {
		if r < '0' || r > '9' {
			return nil, digitError(i + 1)
		}
		digits = append(digits, uint8(r-'0'))
	}
	return digits, nil
}

// parseExact parses s and checks that it holds exactly n digits. The length
// is checked first.
func parseExact(s string, n int) (Digits, error) {
	if l := utf8.RuneCountInString(s); l != n {
		return nil, lengthError(n, l)
	}
	return ParseDigits(s)
}

// Validate returns an error if any element is not a decimal digit.
func (digits Digits) Validate() error {
	for i, d := range digits {
		if d > 9 {
			return digitError(i + 1)
		}
	}
	return nil
}

// validateExact checks the length of the sequence and then its elements.
func (digits Digits) validateExact(n int) error {
	if len(digits) != n {
		return lengthError(n, len(digits))
	}
	return digits.Validate()
}

// Clone returns a copy of the sequence.
func (digits Digits) Clone() Digits {
	if digits == nil {
		return nil
	}
	cloned := make(Digits, len(digits))
	copy(cloned, digits)
	return cloned
}

// Equal returns true if both sequences hold the same digits.
func (digits Digits) Equal(other Digits) bool {
	if len(digits) != len(other) {
		return false
	}
	for i := range digits {
		if digits[i] != other[i] {
			return false
		}
	}
	return true
}

// String implements the Stringer interface. Elements that are not decimal
// digits are written as '?'.
func (digits Digits) String() string {
	var b strings.Builder
	b.Grow(len(digits))
	for _, d := range digits {
		if d > 9 {
			b.WriteByte('?')
			continue
		}
		b.WriteByte('0' + d)
	}
	return b.String()
}
