package hamming

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is matched by input errors for sequences of the wrong
	// length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidDigit is matched by input errors for sequences containing a
	// character or element that is not a decimal digit.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrUnusableNumber is matched by input errors for payloads where one of
	// the check digits would be 10.
	ErrUnusableNumber = errors.New("unusable number")

	// ErrInvalidWeights is returned when a set of weight tables does not form
	// a consistent code.
	ErrInvalidWeights = errors.New("invalid weights")
)

// ErrorKind classifies an InputError.
type ErrorKind uint8

const (
	// InvalidLength means the sequence did not have the required length.
	InvalidLength = ErrorKind(iota)

	// InvalidDigit means an element of the sequence was not in [0, 9].
	InvalidDigit

	// UnusableNumber means a check digit computed from the payload was 10
	// and cannot be written as a single decimal digit.
	UnusableNumber
)

// String implements the Stringer interface.
func (kind ErrorKind) String() string {
	switch kind {
	case InvalidLength:
		return "InvalidLength"
	case InvalidDigit:
		return "InvalidDigit"
	case UnusableNumber:
		return "UnusableNumber"
	default:
		return fmt.Sprintf("Unknown(%v)", uint8(kind))
	}
}

// InputError describes input that cannot be encoded or checked. For
// InvalidLength, Expected and Actual hold the required and given lengths. For
// InvalidDigit, Position holds the 1-indexed position of the offending
// element.
type InputError struct {
	Kind     ErrorKind
	Expected int
	Actual   int
	Position int
}

// Error implements the error interface.
func (err *InputError) Error() string {
	switch err.Kind {
	case InvalidLength:
		return fmt.Sprintf("input is of wrong length: given input is of length %v but a length of %v is required", err.Actual, err.Expected)
	case InvalidDigit:
		return fmt.Sprintf("invalid digit received in input at position %v", err.Position)
	case UnusableNumber:
		return "input is unusable: a check digit would be 10"
	default:
		return fmt.Sprintf("input error: %v", err.Kind)
	}
}

// Unwrap returns the sentinel error that corresponds to the error kind, so
// that callers can use errors.Is.
func (err *InputError) Unwrap() error {
	switch err.Kind {
	case InvalidLength:
		return ErrInvalidLength
	case InvalidDigit:
		return ErrInvalidDigit
	case UnusableNumber:
		return ErrUnusableNumber
	default:
		return nil
	}
}

func lengthError(expected, actual int) error {
	return &InputError{Kind: InvalidLength, Expected: expected, Actual: actual}
}

func digitError(position int) error {
	return &InputError{Kind: InvalidDigit, Position: position}
}
