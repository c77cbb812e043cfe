// Package bch implements a (10,6) BCH check-digit code over GF(11). Six digit
// payloads are extended with four check digits, and received ten digit words
// are checked and corrected for up to two corrupted digits.
//
// Decoding computes the syndrome vector S0..S3 of the received word. A zero
// vector means the word is accepted. Otherwise the error locator
// coefficients P, Q and R are computed: when all three vanish there is a
// single error whose position is S1/S0 and whose magnitude is S0, and
// otherwise the two error positions are the roots of the quadratic
// P x^2 + Q x + R. Anything that does not fit either case is reported as
// Uncorrectable with the reason that the decoder gave up. A correction in
// either branch that would leave a 10 in the word gives ValueCorrectedToTen.
package bch

import (
	"fmt"

	"github.com/renproject/checkdigit/hamming"
)

var standard = New(hamming.Standard())

// Encode returns the codeword for a six character decimal payload using the
// standard code.
func Encode(payload string) (string, error) {
	digits, err := hamming.ParsePayload(payload)
	if err != nil {
		return "", fmt.Errorf("encoding %q: %w", payload, err)
	}
	codeword, err := standard.Encode(digits)
	if err != nil {
		return "", fmt.Errorf("encoding %q: %w", payload, err)
	}
	return codeword.String(), nil
}

// EncodeDigits returns the codeword for a six digit payload using the standard
// code.
func EncodeDigits(payload hamming.Digits) (hamming.Digits, error) {
	return standard.Encode(payload)
}

// Decode checks and corrects a ten character decimal word using the standard
// code.
func Decode(word string) (Result, error) {
	digits, err := hamming.ParseCodeword(word)
	if err != nil {
		return Result{}, fmt.Errorf("decoding %q: %w", word, err)
	}
	return standard.Decode(digits)
}

// DecodeDigits checks and corrects a ten digit word using the standard code.
func DecodeDigits(word hamming.Digits) (Result, error) {
	return standard.Decode(word)
}
