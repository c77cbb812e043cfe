package bch

import (
	"errors"
	"fmt"
)

var (
	// ErrCorrected is matched by the error of a result that corrected one or
	// two digits. The received word was not a valid codeword, but the
	// correction can be applied.
	ErrCorrected = errors.New("corrected invalid codeword")

	// ErrUncorrectable is matched by the error of a result for a word that is
	// corrupted beyond the capacity of the code.
	ErrUncorrectable = errors.New("uncorrectable codeword")
)

// CorrectionError is returned by Result.Err for single and double error
// results.
type CorrectionError struct {
	Result Result
}

// Error implements the error interface.
func (err *CorrectionError) Error() string {
	switch err.Result.Outcome() {
	case SingleError:
		return fmt.Sprintf("%v: single error at position %v with magnitude %v, corrected to %v",
			ErrCorrected, err.Result.Position(), err.Result.Magnitude(), err.Result.corrected)
	default:
		p1, p2 := err.Result.Positions()
		m1, m2 := err.Result.Magnitudes()
		return fmt.Sprintf("%v: double error at positions (%v, %v) with magnitudes (%v, %v), corrected to %v",
			ErrCorrected, p1, p2, m1, m2, err.Result.corrected)
	}
}

// Unwrap returns ErrCorrected.
func (err *CorrectionError) Unwrap() error {
	return ErrCorrected
}

// UncorrectableError is returned by Result.Err for uncorrectable results.
type UncorrectableError struct {
	Reason Reason
}

// Error implements the error interface.
func (err *UncorrectableError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUncorrectable, err.Reason)
}

// Unwrap returns ErrUncorrectable.
func (err *UncorrectableError) Unwrap() error {
	return ErrUncorrectable
}
