package hamming

import (
	"fmt"
	"strings"

	"github.com/renproject/checkdigit/modular"
)

// Syndrome is the vector of four syndromes of a received word. It is zero
// exactly when the word is judged to be free of detectable errors.
type Syndrome [CheckLength]modular.Value

// IsZero returns true if every syndrome is zero.
func (s Syndrome) IsZero() bool {
	for _, v := range s {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// Ints returns the syndromes as integers in [0, 11).
func (s Syndrome) Ints() [CheckLength]int {
	var ints [CheckLength]int
	for i, v := range s {
		ints[i] = v.Int()
	}
	return ints
}

// String implements the Stringer interface.
func (s Syndrome) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v.Int())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Code computes check digits and syndromes for a fixed set of weights. A Code
// holds no mutable state and is safe for concurrent use.
type Code struct {
	weights Weights
}

// New returns a Code for the given weights, or an error if the weights are
// not consistent.
func New(weights Weights) (Code, error) {
	if err := weights.Validate(); err != nil {
		return Code{}, err
	}
	return Code{weights: weights}, nil
}

// Standard returns the Code for the standard weights.
func Standard() Code {
	return Code{weights: StandardWeights()}
}

// Weights returns a copy of the weights used by the code.
func (code Code) Weights() Weights {
	return code.weights
}

// CheckDigits computes the four check digits for a six digit payload. Each
// check digit is the weighted sum of the payload modulo 11; if any of them is
// 10 the payload is unusable.
func (code Code) CheckDigits(payload Digits) (Digits, error) {
	if err := payload.validateExact(PayloadLength); err != nil {
		return nil, err
	}

	check := make(Digits, CheckLength)
	for j, weights := range code.weights.Check {
		sum := 0
		for i, w := range weights {
			sum += w * int(payload[i])
		}
		c := modular.New(sum, Modulus)
		if c.Int() > 9 {
			return nil, &InputError{Kind: UnusableNumber}
		}
		check[j] = uint8(c.Int())
	}
	return check, nil
}

// Codeword returns the payload followed by its check digits.
func (code Code) Codeword(payload Digits) (Digits, error) {
	check, err := code.CheckDigits(payload)
	if err != nil {
		return nil, err
	}
	codeword := make(Digits, 0, CodewordLength)
	codeword = append(codeword, payload...)
	return append(codeword, check...), nil
}

// SyndromeSums returns the four weighted sums of a ten digit word, before
// reduction modulo 11.
func (code Code) SyndromeSums(word Digits) ([CheckLength]int, error) {
	var sums [CheckLength]int
	if err := word.validateExact(CodewordLength); err != nil {
		return sums, err
	}
	for k, weights := range code.weights.Syndrome {
		for i, w := range weights {
			sums[k] += w * int(word[i])
		}
	}
	return sums, nil
}

// Syndromes returns the syndrome vector of a ten digit word.
func (code Code) Syndromes(word Digits) (Syndrome, error) {
	var syndrome Syndrome
	sums, err := code.SyndromeSums(word)
	if err != nil {
		return syndrome, err
	}
	for k, sum := range sums {
		syndrome[k] = modular.New(sum, Modulus)
	}
	return syndrome, nil
}

// ParsePayload parses a six digit payload. The length is checked before the
// characters.
func ParsePayload(s string) (Digits, error) {
	return parseExact(s, PayloadLength)
}

// ParseCodeword parses a ten digit word. The length is checked before the
// characters.
func ParseCodeword(s string) (Digits, error) {
	return parseExact(s, CodewordLength)
}
