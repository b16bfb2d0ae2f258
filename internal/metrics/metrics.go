// Package metrics defines the Prometheus metrics exported by intervald.
//
// Naming follows Prometheus conventions: an intervald_ prefix and a _total
// suffix on counters. Each Recorder owns its registry so tests and multiple
// servers in one process do not collide.
package metrics

import (
	"errors"
	"net/http"

	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation status labels.
const (
	StatusOK          = "ok"
	StatusParseError  = "parse_error"
	StatusTypeError   = "type_error"
	StatusUnsupported = "unsupported"
	StatusError       = "error"
)

// Recorder counts interval operations on its own registry. A nil
// *Recorder is valid and records nothing.
type Recorder struct {
	registry    *prometheus.Registry
	operations  *prometheus.CounterVec
	parseErrors prometheus.Counter
}

// New builds a Recorder with the operation counters and the Go and process
// collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intervald_operations_total",
				Help: "Total interval operations by operation and outcome.",
			},
			[]string{"op", "status"},
		),
		parseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intervald_parse_errors_total",
			Help: "Total interval texts rejected by the parser.",
		}),
	}
	r.registry.MustRegister(
		r.operations,
		r.parseErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Observe counts one operation. A nil Recorder is a no-op.
func (r *Recorder) Observe(op string, err error) {
	if r == nil {
		return
	}
	status := StatusFor(err)
	if status == StatusParseError {
		r.parseErrors.Inc()
	}
	r.operations.WithLabelValues(op, status).Inc()
}

// StatusFor classifies an operation error into a status label.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, interval.ErrParse):
		return StatusParseError
	case errors.Is(err, interval.ErrType):
		return StatusTypeError
	case errors.Is(err, interval.ErrUnsupported):
		return StatusUnsupported
	default:
		return StatusError
	}
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
