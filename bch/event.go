package bch

import (
	"fmt"
)

// Outcome represents the different results of decoding a received word.
type Outcome uint8

const (
	// NoError signifies that every syndrome was zero and the word was
	// accepted as a valid codeword.
	NoError = Outcome(iota)

	// SingleError signifies that the word differed from a codeword in exactly
	// one digit, and that this digit was corrected.
	SingleError

	// DoubleError signifies that the word differed from a codeword in exactly
	// two digits, and that both digits were corrected.
	DoubleError

	// Uncorrectable signifies that the word was corrupted beyond what the
	// code can correct. No correction is proposed; the Reason says which
	// step of the decoder failed.
	Uncorrectable
)

// String implements the Stringer interface.
func (o Outcome) String() string {
	switch o {
	case NoError:
		return "NoError"
	case SingleError:
		return "SingleError"
	case DoubleError:
		return "DoubleError"
	case Uncorrectable:
		return "Uncorrectable"
	default:
		return fmt.Sprintf("Unknown(%v)", uint8(o))
	}
}

// Reason describes why a word was uncorrectable.
type Reason uint8

const (
	// NoReason is the reason attached to every outcome other than
	// Uncorrectable.
	NoReason = Reason(iota)

	// DivisionError signifies that locating the errors required dividing by a
	// zero residue.
	DivisionError

	// ErrorAtPositionZero signifies that an error was located at position
	// zero, which does not exist since positions are 1-indexed.
	ErrorAtPositionZero

	// NoValidRoots signifies that the discriminant of the error locator was
	// not a quadratic residue, so no pair of error positions exists.
	NoValidRoots

	// ValueCorrectedToTen signifies that applying the correction would have
	// produced a digit of ten. The two error hypothesis was wrong and more
	// than two digits are corrupt.
	ValueCorrectedToTen
)

// String implements the Stringer interface.
func (r Reason) String() string {
	switch r {
	case NoReason:
		return "NoReason"
	case DivisionError:
		return "DivisionError"
	case ErrorAtPositionZero:
		return "ErrorAtPositionZero"
	case NoValidRoots:
		return "NoValidRoots"
	case ValueCorrectedToTen:
		return "ValueCorrectedToTen"
	default:
		return fmt.Sprintf("Unknown(%v)", uint8(r))
	}
}
