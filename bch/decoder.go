package bch

import (
	"github.com/charmbracelet/log"

	"github.com/renproject/checkdigit/hamming"
	"github.com/renproject/checkdigit/modular"
)

// Codec encodes payloads into codewords and decodes received words. It holds
// no mutable state and is safe for concurrent use.
type Codec struct {
	code   hamming.Code
	logger *log.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger makes the Codec write debug records of the syndromes and error
// locator of every word it decodes.
func WithLogger(logger *log.Logger) Option {
	return func(codec *Codec) {
		codec.logger = logger
	}
}

// New returns a Codec for the given code.
func New(code hamming.Code, opts ...Option) Codec {
	codec := Codec{code: code}
	for _, opt := range opts {
		opt(&codec)
	}
	return codec
}

// Code returns the underlying code.
func (codec Codec) Code() hamming.Code {
	return codec.code
}

// Encode returns the ten digit codeword for a six digit payload.
func (codec Codec) Encode(payload hamming.Digits) (hamming.Digits, error) {
	return codec.code.Codeword(payload)
}

// Decode checks a ten digit word and corrects up to two corrupted digits. The
// returned error is only non-nil for input errors; invalid codewords are
// reported through the Result.
func (codec Codec) Decode(word hamming.Digits) (Result, error) {
	syndrome, err := codec.code.Syndromes(word)
	if err != nil {
		return Result{}, err
	}
	if syndrome.IsZero() {
		return noError(word), nil
	}

	locator := NewLocator(syndrome)
	codec.debug("located", "word", word, "syndrome", syndrome, "p", locator.P.Int(), "q", locator.Q.Int(), "r", locator.R.Int())

	var result Result
	if locator.IsZero() {
		result = correctSingle(word, syndrome)
	} else {
		result = correctDouble(word, syndrome, locator)
	}
	codec.debug("decoded", "word", word, "result", result)
	return result, nil
}

func (codec Codec) debug(msg interface{}, keyvals ...interface{}) {
	if codec.logger != nil {
		codec.logger.Debug(msg, keyvals...)
	}
}

// correctSingle handles syndromes of the form S_k = e i^k, where i is the
// error position and e its magnitude. Subtracting the magnitude can leave a
// residue of 10, which is not a digit; the word is then Uncorrectable with
// ValueCorrectedToTen, as in the double error branch, rather than corrected
// to a non-digit.
func correctSingle(word hamming.Digits, s hamming.Syndrome) Result {
	position, err := s[1].TryDiv(s[0])
	if err != nil {
		return uncorrectable(DivisionError)
	}
	magnitude := s[0]
	if position.IsZero() {
		return uncorrectable(ErrorAtPositionZero)
	}

	corrected := word.Clone()
	i := position.Int() - 1
	digit := modular.New(int(corrected[i]), hamming.Modulus).Sub(magnitude)
	if digit.Int() > 9 {
		return uncorrectable(ValueCorrectedToTen)
	}
	corrected[i] = uint8(digit.Int())

	return singleError(corrected, position.Int(), magnitude.Int())
}

// correctDouble handles syndromes of the form S_k = e1 i1^k + e2 i2^k. The
// positions are the roots of the error locator and the magnitudes follow from
// S0 = e1 + e2 and S1 = e1 i1 + e2 i2.
func correctDouble(word hamming.Digits, s hamming.Syndrome, locator Locator) Result {
	pos1, pos2, reason := locator.Roots()
	if reason != NoReason {
		return uncorrectable(reason)
	}
	if pos1.IsZero() || pos2.IsZero() {
		return uncorrectable(ErrorAtPositionZero)
	}

	mag2, err := pos1.Mul(s[0]).Sub(s[1]).TryDiv(pos1.Sub(pos2))
	if err != nil {
		return uncorrectable(DivisionError)
	}
	mag1 := s[0].Sub(mag2)

	corrected := word.Clone()
	for _, c := range [2]struct{ pos, mag modular.Value }{{pos1, mag1}, {pos2, mag2}} {
		i := c.pos.Int() - 1
		digit := modular.New(int(corrected[i])+hamming.Modulus-c.mag.Int(), hamming.Modulus)
		corrected[i] = uint8(digit.Int())
	}
	if corrected.Validate() != nil {
		return uncorrectable(ValueCorrectedToTen)
	}

	return doubleError(corrected,
		[2]int{pos1.Int(), pos2.Int()},
		[2]int{mag1.Int(), mag2.Int()})
}
