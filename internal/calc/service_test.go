package calc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/aevon-lab/interval/internal/api/v1"
	httperr "github.com/aevon-lab/interval/internal/core/errors"
	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/stretchr/testify/require"
)

func TestService_EvaluateKeepsRequestOrder(t *testing.T) {
	svc := NewService(3, 1000, 1, nil)

	base := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	items := make([]v1.EvaluateItem, 50)
	for i := range items {
		items[i] = v1.EvaluateItem{
			Interval: fmt.Sprintf("%d months", i),
			Operand:  v1.Operand{Kind: "time", Time: &base},
		}
	}

	results, err := svc.Evaluate(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, len(items))
	for i, res := range results {
		require.Equal(t, i, res.Index)
		require.Nil(t, res.Error)
		want := interval.New(int64(i), 0, 0).AddTo(base)
		require.True(t, res.Time.Equal(want), "item %d: got %s want %s", i, res.Time, want)
	}
}

func TestService_EvaluateReportsItemErrors(t *testing.T) {
	svc := NewService(2, 1000, 1, nil)

	results, err := svc.Evaluate(context.Background(), []v1.EvaluateItem{
		{Interval: "soon", Operand: v1.Operand{Kind: "interval", Interval: "1 day"}},
		{Interval: "1 day", Operand: v1.Operand{Kind: "time"}},
		{Interval: "1 day", Operand: v1.Operand{}},
	})
	require.NoError(t, err)

	require.Equal(t, httperr.HttpInvalidIntervalError, results[0].Error.ErrorType)
	require.Equal(t, httperr.HttpInvalidOperandError, results[1].Error.ErrorType)
	require.Contains(t, results[1].Error.Message, "operand time is required")
	require.Equal(t, "interval.Apply type error: got empty operand", results[2].Error.Message)
}

func TestService_EvaluateCancelled(t *testing.T) {
	svc := NewService(1, 1000, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Evaluate(ctx, []v1.EvaluateItem{{Interval: "1 day", Operand: v1.Operand{Kind: "interval", Interval: "1 day"}}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestClassify(t *testing.T) {
	_, parseErr := interval.Parse("1 fortnight")
	_, typeErr := interval.New(0, 1, 0).Scale(nanFactor())
	_, unsupportedErr := interval.New(0, 1, 0).Terse()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"parse", parseErr, http.StatusBadRequest, httperr.HttpInvalidIntervalError},
		{"type", typeErr, http.StatusBadRequest, httperr.HttpInvalidOperandError},
		{"unsupported", unsupportedErr, http.StatusUnprocessableEntity, httperr.HttpUnsupportedFormatError},
		{"cancelled", fmt.Errorf("batch: %w", context.Canceled), http.StatusServiceUnavailable, httperr.HttpInternalError},
		{"other", errors.New("boom"), http.StatusBadRequest, "fallback"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err, "fallback")
			require.Equal(t, tc.wantStatus, got.statusCode)
			require.Equal(t, tc.wantType, got.errorType)
		})
	}
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(0, 0, 0, nil)
	require.Equal(t, 1, svc.workerCount)
	require.Equal(t, 1000, svc.maxBatchSize)
	require.Equal(t, 1024*1024, svc.maxBodySizeBytes)
}

func nanFactor() float64 {
	zero := 0.0
	return zero / zero
}
