package bchutil

import (
	"math/rand"

	"github.com/renproject/checkdigit/bch"
	"github.com/renproject/checkdigit/hamming"
)

// RandomPayload returns a random six digit payload. The payload might be
// unusable.
func RandomPayload() hamming.Digits {
	payload := make(hamming.Digits, hamming.PayloadLength)
	for i := range payload {
		payload[i] = uint8(rand.Intn(10))
	}
	return payload
}

// RandomCodeword returns a random valid codeword, retrying until the random
// payload is usable.
func RandomCodeword() hamming.Digits {
	for {
		codeword, err := bch.EncodeDigits(RandomPayload())
		if err == nil {
			return codeword
		}
	}
}

// RandomPositions returns n distinct 1-indexed positions of a codeword in
// random order.
func RandomPositions(n int) []int {
	perm := rand.Perm(hamming.CodewordLength)[:n]
	for i := range perm {
		perm[i]++
	}
	return perm
}

// CorruptAt returns a copy of the word with the digit at each of the given
// 1-indexed positions replaced by the corresponding digit.
func CorruptAt(word hamming.Digits, positions []int, digits []uint8) hamming.Digits {
	corrupted := word.Clone()
	for i, p := range positions {
		corrupted[p-1] = digits[i]
	}
	return corrupted
}

// Corrupt returns a copy of the word with n distinct digits changed to
// different random digits, and the positions that were changed.
func Corrupt(word hamming.Digits, n int) (hamming.Digits, []int) {
	positions := RandomPositions(n)
	digits := make([]uint8, n)
	for i, p := range positions {
		// Shift by 1..9 so that the digit always changes.
		digits[i] = uint8((int(word[p-1]) + 1 + rand.Intn(9)) % 10)
	}
	return CorruptAt(word, positions, digits), positions
}
