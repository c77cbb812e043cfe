package hamming

import (
	"fmt"

	"github.com/renproject/checkdigit/modular"
)

const (
	// Modulus is the prime over which all checksums are computed.
	Modulus = 11

	// PayloadLength is the number of digits in a payload.
	PayloadLength = 6

	// CheckLength is the number of check digits, and also the number of
	// syndromes.
	CheckLength = 4

	// CodewordLength is the number of digits in a codeword.
	CodewordLength = PayloadLength + CheckLength
)

// checkWeights were generated over GF(11) so that appending the four
// checksums to a payload gives a word whose syndromes are all zero.
var checkWeights = [CheckLength][PayloadLength]int{
	{4, 10, 9, 2, 1, 7},
	{7, 8, 7, 1, 9, 6},
	{9, 1, 7, 8, 7, 7},
	{1, 2, 9, 10, 4, 1},
}

// syndromeWeights row k holds i^k mod 11 for the positions i = 1..10.
var syndromeWeights = [CheckLength][CodewordLength]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	{1, 4, 9, 5, 3, 3, 5, 9, 4, 1},
	{1, 8, 5, 9, 4, 7, 2, 6, 3, 10},
}

// Weights holds the weight vectors of the code. Check holds one length 6
// vector per check digit; Syndrome holds one length 10 vector per syndrome.
type Weights struct {
	Check    [CheckLength][PayloadLength]int
	Syndrome [CheckLength][CodewordLength]int
}

// StandardWeights returns the weight tables of the standard code. The tables
// are returned by value, so modifying the result does not affect other
// callers.
func StandardWeights() Weights {
	return Weights{Check: checkWeights, Syndrome: syndromeWeights}
}

// PowerSyndromeWeights computes the syndrome weights from first principles:
// row k, column i is (i+1)^k mod 11.
func PowerSyndromeWeights() [CheckLength][CodewordLength]int {
	var table [CheckLength][CodewordLength]int
	for i := 0; i < CodewordLength; i++ {
		position := modular.New(i+1, Modulus)
		for k := 0; k < CheckLength; k++ {
			table[k][i] = position.Pow(k).Int()
		}
	}
	return table
}

// Validate returns an error if the weights cannot be used by the decoder. The
// syndrome weights must be powers of the digit positions, since the decoder
// reads error positions off the ratios between syndromes, and the check
// weights must generate words that the syndrome weights map to zero.
func (w Weights) Validate() error {
	powers := PowerSyndromeWeights()
	for k := range w.Syndrome {
		for i := range w.Syndrome[k] {
			if !modular.New(w.Syndrome[k][i], Modulus).EqInt(powers[k][i]) {
				return fmt.Errorf("%w: syndrome weight %v at row %v, position %v should be %v",
					ErrInvalidWeights, w.Syndrome[k][i], k, i+1, powers[k][i])
			}
		}
	}

	// Encoding the unit payload with a one at position i must give a word
	// with a zero syndrome. By linearity this covers every payload.
	for i := 0; i < PayloadLength; i++ {
		for k := 0; k < CheckLength; k++ {
			acc := modular.New(w.Syndrome[k][i], Modulus)
			for j := 0; j < CheckLength; j++ {
				term := modular.New(w.Syndrome[k][PayloadLength+j], Modulus).Scale(w.Check[j][i])
				acc = acc.Add(term)
			}
			if !acc.IsZero() {
				return fmt.Errorf("%w: payload position %v gives non-zero syndrome %v",
					ErrInvalidWeights, i+1, k)
			}
		}
	}
	return nil
}
