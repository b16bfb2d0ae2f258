package metrics

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func getCounterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestStatusFor(t *testing.T) {
	_, parseErr := interval.Parse("soon")
	_, typeErr := interval.Zero.Apply(interval.Operand{})
	_, unsupportedErr := interval.New(1, 0, 0).Terse()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, StatusOK},
		{"parse", parseErr, StatusParseError},
		{"wrapped parse", fmt.Errorf("left: %w", parseErr), StatusParseError},
		{"type", typeErr, StatusTypeError},
		{"unsupported", unsupportedErr, StatusUnsupported},
		{"other", errors.New("boom"), StatusError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

func TestRecorder_Observe(t *testing.T) {
	r := New()
	_, parseErr := interval.Parse("soon")

	r.Observe("parse", nil)
	r.Observe("parse", nil)
	r.Observe("parse", parseErr)
	r.Observe("combine", nil)

	require.Equal(t, float64(2), testutil.ToFloat64(r.operations.WithLabelValues("parse", StatusOK)))
	require.Equal(t, float64(1), testutil.ToFloat64(r.operations.WithLabelValues("parse", StatusParseError)))
	require.Equal(t, float64(1), testutil.ToFloat64(r.operations.WithLabelValues("combine", StatusOK)))
	require.Equal(t, float64(1), getCounterValue(r.parseErrors))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	require.NotPanics(t, func() { r.Observe("parse", nil) })
}

func TestRecorder_Handler(t *testing.T) {
	r := New()
	r.Observe("terse", nil)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `intervald_operations_total{op="terse",status="ok"} 1`)
	require.Contains(t, string(body), "intervald_parse_errors_total 0")
}
