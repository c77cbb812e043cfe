package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the requests served and the outcomes of decoding.
type Metrics struct {
	// Requests by route and response status
	Requests *prometheus.CounterVec

	// Decode outcomes by outcome and uncorrectable reason
	Decodes *prometheus.CounterVec

	// Rejected inputs on any route, by error kind
	InputErrors *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkdigit_http_requests_total",
			Help: "Total HTTP requests by route and status",
		}, []string{"route", "status"}),

		Decodes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkdigit_decode_outcomes_total",
			Help: "Total decoded words by outcome and reason",
		}, []string{"outcome", "reason"}),

		InputErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkdigit_input_errors_total",
			Help: "Total rejected inputs by error kind",
		}, []string{"kind"}),
	}
}

// IncrementRequest records a served request.
func (m *Metrics) IncrementRequest(route string, status int) {
	if m != nil {
		m.Requests.WithLabelValues(route, statusLabel(status)).Inc()
	}
}

// IncrementDecode records the outcome of a decode.
func (m *Metrics) IncrementDecode(outcome, reason string) {
	if m != nil {
		m.Decodes.WithLabelValues(outcome, reason).Inc()
	}
}

// IncrementInputError records a rejected input.
func (m *Metrics) IncrementInputError(kind string) {
	if m != nil {
		m.InputErrors.WithLabelValues(kind).Inc()
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}
