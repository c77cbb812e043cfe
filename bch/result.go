package bch

import (
	"fmt"

	"github.com/renproject/checkdigit/hamming"
)

// Correction is a single corrected digit. Position is 1-indexed and
// Magnitude is the residue that was removed from the received digit.
type Correction struct {
	Position  int
	Magnitude int
}

// Result is the outcome of decoding a received word. The zero value is a
// NoError result with no corrected word.
//
// For SingleError only the first position and magnitude are used. For
// DoubleError the pair is reported in the order the decoder found the roots
// of the error locator, which is not necessarily ascending.
type Result struct {
	outcome    Outcome
	reason     Reason
	corrected  hamming.Digits
	positions  [2]uint8
	magnitudes [2]uint8
}

func noError(word hamming.Digits) Result {
	return Result{outcome: NoError, corrected: word.Clone()}
}

func singleError(corrected hamming.Digits, position, magnitude int) Result {
	return Result{
		outcome:    SingleError,
		corrected:  corrected,
		positions:  [2]uint8{uint8(position)},
		magnitudes: [2]uint8{uint8(magnitude)},
	}
}

func doubleError(corrected hamming.Digits, positions, magnitudes [2]int) Result {
	return Result{
		outcome:    DoubleError,
		corrected:  corrected,
		positions:  [2]uint8{uint8(positions[0]), uint8(positions[1])},
		magnitudes: [2]uint8{uint8(magnitudes[0]), uint8(magnitudes[1])},
	}
}

func uncorrectable(reason Reason) Result {
	return Result{outcome: Uncorrectable, reason: reason}
}

// Outcome returns the tag of the result.
func (r Result) Outcome() Outcome {
	return r.outcome
}

// Reason returns why the word was uncorrectable, or NoReason.
func (r Result) Reason() Reason {
	return r.reason
}

// Corrected returns the corrected word. For NoError this is the received
// word itself, and for Uncorrectable it is nil.
func (r Result) Corrected() hamming.Digits {
	return r.corrected.Clone()
}

// IsCorrected returns true for SingleError and DoubleError results.
func (r Result) IsCorrected() bool {
	return r.outcome == SingleError || r.outcome == DoubleError
}

// Position returns the 1-indexed position of the first corrected digit, or
// zero if nothing was corrected.
func (r Result) Position() int {
	return int(r.positions[0])
}

// Magnitude returns the magnitude of the first corrected digit.
func (r Result) Magnitude() int {
	return int(r.magnitudes[0])
}

// Positions returns the positions of both corrected digits.
func (r Result) Positions() (int, int) {
	return int(r.positions[0]), int(r.positions[1])
}

// Magnitudes returns the magnitudes of both corrected digits.
func (r Result) Magnitudes() (int, int) {
	return int(r.magnitudes[0]), int(r.magnitudes[1])
}

// Corrections returns the corrected digits: none for NoError and
// Uncorrectable, one for SingleError and two for DoubleError.
func (r Result) Corrections() []Correction {
	n := 0
	switch r.outcome {
	case SingleError:
		n = 1
	case DoubleError:
		n = 2
	}
	corrections := make([]Correction, n)
	for i := range corrections {
		corrections[i] = Correction{
			Position:  int(r.positions[i]),
			Magnitude: int(r.magnitudes[i]),
		}
	}
	return corrections
}

// Err maps the result onto an error. A NoError result gives nil, a corrected
// result gives a *CorrectionError and an uncorrectable result gives an
// *UncorrectableError.
func (r Result) Err() error {
	switch r.outcome {
	case NoError:
		return nil
	case SingleError, DoubleError:
		return &CorrectionError{Result: r}
	default:
		return &UncorrectableError{Reason: r.reason}
	}
}

// String implements the Stringer interface.
func (r Result) String() string {
	switch r.outcome {
	case NoError:
		return "NoError"
	case SingleError:
		return fmt.Sprintf("SingleError(corrected=%v, position=%v, magnitude=%v)",
			r.corrected, r.Position(), r.Magnitude())
	case DoubleError:
		p1, p2 := r.Positions()
		m1, m2 := r.Magnitudes()
		return fmt.Sprintf("DoubleError(corrected=%v, positions=(%v, %v), magnitudes=(%v, %v))",
			r.corrected, p1, p2, m1, m2)
	default:
		return fmt.Sprintf("%v(%v)", r.outcome, r.reason)
	}
}
