package bch

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/renproject/surge"

	"github.com/renproject/checkdigit/hamming"
)

// SizeHint implements the surge.SizeHinter interface.
func (r Result) SizeHint() int {
	u8 := surge.SizeHint(uint8(0))
	return u8 + // outcome
		u8 + // reason
		u8 + len(r.corrected)*u8 + // corrected
		len(r.positions)*u8 +
		len(r.magnitudes)*u8
}

// Marshal implements the surge.Marshaler interface.
func (r Result) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU8(uint8(r.outcome), buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling outcome: %v", err)
	}
	buf, rem, err = surge.MarshalU8(uint8(r.reason), buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling reason: %v", err)
	}
	if len(r.corrected) > hamming.CodewordLength {
		return buf, rem, fmt.Errorf("marshaling corrected: %v digits", len(r.corrected))
	}
	buf, rem, err = surge.MarshalU8(uint8(len(r.corrected)), buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling corrected length: %v", err)
	}
	for _, d := range r.corrected {
		buf, rem, err = surge.MarshalU8(d, buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("marshaling corrected: %v", err)
		}
	}
	for _, p := range r.positions {
		buf, rem, err = surge.MarshalU8(p, buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("marshaling positions: %v", err)
		}
	}
	for _, m := range r.magnitudes {
		buf, rem, err = surge.MarshalU8(m, buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("marshaling magnitudes: %v", err)
		}
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface.
func (r *Result) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var outcome, reason, n uint8
	buf, rem, err := surge.UnmarshalU8(&outcome, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling outcome: %v", err)
	}
	if Outcome(outcome) > Uncorrectable {
		return buf, rem, fmt.Errorf("invalid marshalled data: unknown outcome %v", outcome)
	}
	buf, rem, err = surge.UnmarshalU8(&reason, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling reason: %v", err)
	}
	if Reason(reason) > ValueCorrectedToTen {
		return buf, rem, fmt.Errorf("invalid marshalled data: unknown reason %v", reason)
	}
	buf, rem, err = surge.UnmarshalU8(&n, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling corrected length: %v", err)
	}
	if n > hamming.CodewordLength {
		return buf, rem, fmt.Errorf("invalid marshalled data: %v corrected digits", n)
	}
	if Outcome(outcome) == Uncorrectable && n > 0 {
		return buf, rem, fmt.Errorf("invalid marshalled data: uncorrectable result with %v corrected digits", n)
	}
	if Outcome(outcome) != Uncorrectable && Reason(reason) != NoReason {
		return buf, rem, fmt.Errorf("invalid marshalled data: %v result with reason %v", Outcome(outcome), Reason(reason))
	}
	var corrected hamming.Digits
	if n > 0 {
		corrected = make(hamming.Digits, n)
	}
	for i := range corrected {
		buf, rem, err = surge.UnmarshalU8(&corrected[i], buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("unmarshaling corrected: %v", err)
		}
	}
	if err := corrected.Validate(); err != nil {
		return buf, rem, fmt.Errorf("invalid marshalled data: %v", err)
	}
	var positions, magnitudes [2]uint8
	for i := range positions {
		buf, rem, err = surge.UnmarshalU8(&positions[i], buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("unmarshaling positions: %v", err)
		}
		if positions[i] > hamming.CodewordLength {
			return buf, rem, fmt.Errorf("invalid marshalled data: position %v", positions[i])
		}
	}
	for i := range magnitudes {
		buf, rem, err = surge.UnmarshalU8(&magnitudes[i], buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("unmarshaling magnitudes: %v", err)
		}
		if magnitudes[i] >= hamming.Modulus {
			return buf, rem, fmt.Errorf("invalid marshalled data: magnitude %v", magnitudes[i])
		}
	}

	*r = Result{
		outcome:    Outcome(outcome),
		reason:     Reason(reason),
		corrected:  corrected,
		positions:  positions,
		magnitudes: magnitudes,
	}
	return buf, rem, nil
}

// Generate implements the quick.Generator interface.
func (Result) Generate(rand *rand.Rand, size int) reflect.Value {
	randomWord := func() hamming.Digits {
		word := make(hamming.Digits, hamming.CodewordLength)
		for i := range word {
			word[i] = uint8(rand.Intn(10))
		}
		return word
	}
	position := func() int { return rand.Intn(hamming.CodewordLength) + 1 }
	magnitude := func() int { return rand.Intn(hamming.Modulus) }

	var r Result
	switch Outcome(rand.Intn(int(Uncorrectable) + 1)) {
	case NoError:
		r = noError(randomWord())
	case SingleError:
		r = singleError(randomWord(), position(), magnitude())
	case DoubleError:
		r = doubleError(randomWord(),
			[2]int{position(), position()},
			[2]int{magnitude(), magnitude()})
	default:
		r = uncorrectable(Reason(rand.Intn(int(ValueCorrectedToTen)) + 1))
	}
	return reflect.ValueOf(r)
}
