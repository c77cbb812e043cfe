// Package server exposes the check-digit code over HTTP.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/renproject/checkdigit/bch"
	"github.com/renproject/checkdigit/hamming"
)

// Handler wires the check-digit endpoints to a codec.
type Handler struct {
	codec   bch.Codec
	logger  *log.Logger
	metrics *Metrics
}

// NewHandler constructs a handler. The metrics may be nil.
func NewHandler(codec bch.Codec, logger *log.Logger, metrics *Metrics) *Handler {
	return &Handler{
		codec:   codec,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/hamming/checkdigits/{input}", h.HandleCheckDigits)
	r.Get("/hamming/syndromes/{input}", h.HandleSyndromes)
	r.Get("/bch/encode/{input}", h.HandleEncode)
	r.Get("/bch/decode/{input}", h.HandleDecode)
}

// HandleCheckDigits handles GET /hamming/checkdigits/{input}.
func (h *Handler) HandleCheckDigits(w http.ResponseWriter, r *http.Request) {
	const route = "checkdigits"
	input := chi.URLParam(r, "input")

	payload, err := hamming.ParsePayload(input)
	if err != nil {
		h.writeError(w, route, input, err)
		return
	}
	check, err := h.codec.Code().CheckDigits(payload)
	if err != nil {
		h.writeError(w, route, input, err)
		return
	}

	h.write(w, route, http.StatusOK, CheckDigitsResponse{
		Input:       input,
		CheckDigits: check.String(),
		Codeword:    input + check.String(),
	})
}

// HandleSyndromes handles GET /hamming/syndromes/{input}.
func (h *Handler) HandleSyndromes(w http.ResponseWriter, r *http.Request) {
	const route = "syndromes"
	input := chi.URLParam(r, "input")

	word, err := hamming.ParseCodeword(input)
	if err != nil {
		h.writeError(w, route, input, err)
		return
	}
	syndrome, err := h.codec.Code().Syndromes(word)
	if err != nil {
		h.writeError(w, route, input, err)
		return
	}

	h.write(w, route, http.StatusOK, SyndromesResponse{
		Input:     input,
		Syndromes: syndrome.Ints(),
	})
}

// HandleEncode handles GET /bch/encode/{input}.
func (h *Handler) HandleEncode(w http.ResponseWriter, r *http.Request) {
	const route = "encode"
	input := chi.URLParam(r, "input")

	payload, err := hamming.ParsePayload(input)
	if err != nil {
		h.writeError(w, route, input, err)
		return
	}
	codeword, err := h.codec.Encode(payload)
	if err != nil {
		h.writeError(w, route, input, err)
		return
	}

	h.write(w, route, http.StatusOK, EncodeResponse{
		Input:    input,
		Codeword: codeword.String(),
	})
}

// HandleDecode handles GET /bch/decode/{input}. Corrected and uncorrectable
// words are successful requests; only malformed input is rejected.
func (h *Handler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	const route = "decode"
	input := chi.URLParam(r, "input")

	word, err := hamming.ParseCodeword(input)
	if err != nil {
		h.writeError(w, route, input, err)
		return
	}
	result, err := h.codec.Decode(word)
	if err != nil {
		h.writeError(w, route, input, err)
		return
	}

	h.metrics.IncrementDecode(result.Outcome().String(), result.Reason().String())
	if result.Outcome() != bch.NoError {
		h.logger.Info("invalid codeword", "input", input, "result", result)
	}
	h.write(w, route, http.StatusOK, NewDecodeResponse(input, result))
}

func (h *Handler) write(w http.ResponseWriter, route string, status int, v interface{}) {
	h.metrics.IncrementRequest(route, status)
	writeJSON(w, status, v)
}

func (h *Handler) writeError(w http.ResponseWriter, route, input string, err error) {
	code, status := errorCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "route", route, "input", input, "err", err)
	} else {
		h.logger.Debug("rejected input", "route", route, "input", input, "err", err)
		h.metrics.IncrementInputError(code)
	}
	h.write(w, route, status, ErrorResponse{Error: err.Error(), Code: code})
}
