package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/renproject/checkdigit/bch"
	"github.com/renproject/checkdigit/hamming"
)

// CheckDigitsResponse is the body returned for check digit requests.
type CheckDigitsResponse struct {
	Input       string `json:"input"`
	CheckDigits string `json:"check_digits"`
	Codeword    string `json:"codeword"`
}

// SyndromesResponse is the body returned for syndrome requests.
type SyndromesResponse struct {
	Input     string `json:"input"`
	Syndromes [hamming.CheckLength]int `json:"syndromes"`
}

// EncodeResponse is the body returned for encode requests.
type EncodeResponse struct {
	Input    string `json:"input"`
	Codeword string `json:"codeword"`
}

// DecodeResponse is the body returned for decode requests. Reason is only set
// for uncorrectable words; Corrected, Positions and Magnitudes are only set
// when there is a corrected word.
type DecodeResponse struct {
	Input      string `json:"input"`
	Outcome    string `json:"outcome"`
	Reason     string `json:"reason,omitempty"`
	Corrected  string `json:"corrected,omitempty"`
	Positions  []int  `json:"positions,omitempty"`
	Magnitudes []int  `json:"magnitudes,omitempty"`
}

// NewDecodeResponse formats a decode result.
func NewDecodeResponse(input string, result bch.Result) DecodeResponse {
	resp := DecodeResponse{
		Input:   input,
		Outcome: result.Outcome().String(),
	}
	if result.Outcome() == bch.Uncorrectable {
		resp.Reason = result.Reason().String()
		return resp
	}
	resp.Corrected = result.Corrected().String()
	for _, c := range result.Corrections() {
		resp.Positions = append(resp.Positions, c.Position)
		resp.Magnitudes = append(resp.Magnitudes, c.Magnitude)
	}
	return resp
}

// ErrorResponse is the body returned for rejected input.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorCode returns the response code and status for an error.
func errorCode(err error) (string, int) {
	var inputErr *hamming.InputError
	if errors.As(err, &inputErr) {
		switch inputErr.Kind {
		case hamming.InvalidLength:
			return "invalid_length", http.StatusBadRequest
		case hamming.InvalidDigit:
			return "invalid_digit", http.StatusBadRequest
		case hamming.UnusableNumber:
			return "unusable_number", http.StatusBadRequest
		}
	}
	return "internal_error", http.StatusInternalServerError
}
