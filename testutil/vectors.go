// Package testutil holds reference vectors for the check-digit code that are
// shared by the test suites of several packages.
package testutil

import "github.com/renproject/checkdigit/bch"

// ValidCodeword is the codeword that every corrupted vector below decodes
// back to.
const ValidCodeword = "3745195876"

// EncodeVector is a payload and its codeword.
type EncodeVector struct {
	Payload  string
	Codeword string
}

// EncodeVectors are usable payloads.
var EncodeVectors = []EncodeVector{
	{"000011", "0000118435"},
	{"374519", ValidCodeword},
	{"123450", "1234509504"},
	{"654321", "6543214503"},
	{"271828", "2718287810"},
	{"314159", "3141597383"},
}

// UnusablePayloads have at least one check digit equal to 10.
var UnusablePayloads = []string{"000003", "000111", "123456", "999999"}

// SingleErrorVector is a corruption of ValidCodeword in one digit.
type SingleErrorVector struct {
	Input     string
	Position  int
	Magnitude int
}

// SingleErrorVectors all decode to ValidCodeword.
var SingleErrorVectors = []SingleErrorVector{
	{"3945195876", 2, 2},
	{"0745195876", 1, 8},
	{"3785195876", 3, 4},
	{"3745995876", 5, 8},
	{"3745192876", 7, 8},
	{"3745195870", 10, 5},
}

// DoubleErrorVector is a corruption of ValidCodeword in two digits. The
// positions and magnitudes are in the order the decoder reports them.
type DoubleErrorVector struct {
	Input      string
	Positions  [2]int
	Magnitudes [2]int
}

// DoubleErrorVectors all decode to ValidCodeword.
var DoubleErrorVectors = []DoubleErrorVector{
	{"3715195076", [2]int{8, 3}, [2]int{3, 8}},
	{"0743195876", [2]int{4, 1}, [2]int{9, 8}},
	{"3745195840", [2]int{10, 9}, [2]int{5, 8}},
	{"8745105876", [2]int{6, 1}, [2]int{2, 5}},
	{"3745102876", [2]int{6, 7}, [2]int{2, 8}},
	{"1145195876", [2]int{1, 2}, [2]int{9, 5}},
	{"3745191976", [2]int{8, 7}, [2]int{1, 7}},
	{"3745190872", [2]int{7, 10}, [2]int{6, 7}},
}

// UncorrectableVector is a word with more than two corrupted digits.
type UncorrectableVector struct {
	Input  string
	Reason bch.Reason
}

// RepeatedRootVectors have a non-zero error locator whose discriminant is
// zero, so both candidate positions coincide.
var RepeatedRootVectors = []UncorrectableVector{
	{"9198844954", bch.DivisionError},
	{"6519885079", bch.DivisionError},
	{"4190070931", bch.DivisionError},
	{"7261675136", bch.ErrorAtPositionZero},
}

// UncorrectableVectors cover every reason the decoder can give up.
var UncorrectableVectors = append([]UncorrectableVector{
	{"1115195876", bch.NoValidRoots},
	{"2745795878", bch.NoValidRoots},
	{"3742102896", bch.NoValidRoots},
	{"3121195876", bch.NoValidRoots},
	{"1135694766", bch.NoValidRoots},
	{"0888888074", bch.ErrorAtPositionZero},
	{"5614216009", bch.ErrorAtPositionZero},
	{"9990909923", bch.DivisionError},
	{"1836703776", bch.DivisionError},
	{"9885980731", bch.ValueCorrectedToTen},

	// Syndromes that look like a single error but cannot be corrected.
	{"0941472132", bch.DivisionError},
	{"0533009820", bch.ErrorAtPositionZero},
	{"2771625817", bch.ValueCorrectedToTen},
}, RepeatedRootVectors...)
