package calc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	v1 "github.com/aevon-lab/interval/internal/api/v1"
	httperr "github.com/aevon-lab/interval/internal/core/errors"
	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/aevon-lab/interval/internal/metrics"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Operation names, used as the op metric label.
const (
	opParse    = "parse"
	opCombine  = "combine"
	opScale    = "scale"
	opApply    = "apply"
	opBetween  = "between"
	opTerse    = "terse"
	opEvaluate = "evaluate"
)

// Service exposes interval arithmetic over HTTP.
type Service struct {
	workerCount      int
	maxBatchSize     int
	maxBodySizeBytes int
	metrics          *metrics.Recorder
}

// NewService builds the calculator service. rec may be nil to disable metrics.
func NewService(workerCount, maxBatchSize, maxBodySizeMB int, rec *metrics.Recorder) *Service {
	if workerCount <= 0 {
		workerCount = 1
	}
	if maxBatchSize <= 0 {
		maxBatchSize = 1000
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	return &Service{
		workerCount:      workerCount,
		maxBatchSize:     maxBatchSize,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		metrics:          rec,
	}
}

// RegisterRoutes registers the interval routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/intervals")
	g.POST("/parse", s.ParseHandler)
	g.POST("/combine", s.CombineHandler)
	g.POST("/scale", s.ScaleHandler)
	g.POST("/apply", s.ApplyHandler)
	g.POST("/between", s.BetweenHandler)
	g.POST("/terse", s.TerseHandler)
	g.POST("/evaluate", s.EvaluateHandler)
}

// parse wraps interval.Parse and records the outcome.
func (s *Service) parse(text string) (interval.Value, error) {
	v, err := interval.Parse(text)
	s.metrics.Observe(opParse, err)
	return v, err
}

// Evaluate applies every item concurrently on at most workerCount
// goroutines. Item failures are reported per result; only cancellation of
// ctx fails the whole batch.
func (s *Service) Evaluate(ctx context.Context, items []v1.EvaluateItem) ([]v1.EvaluateResult, error) {
	results := make([]v1.EvaluateResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerCount)
	for i := range items {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.evaluateOne(i, items[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate batch: %w", err)
	}
	return results, nil
}

func (s *Service) evaluateOne(index int, item v1.EvaluateItem) v1.EvaluateResult {
	out := v1.EvaluateResult{Index: index}

	res, err := s.apply(item)
	s.metrics.Observe(opEvaluate, err)
	if err != nil {
		apiErr := classify(err, httperr.HttpInvalidOperandError)
		out.Error = &httperr.ErrorResponse{
			ErrorType: apiErr.errorType,
			Message:   apiErr.message,
			Details:   apiErr.details,
		}
		return out
	}

	out.Kind = string(res.Kind)
	switch res.Kind {
	case interval.KindInterval:
		out.Interval = res.Interval.String()
	case interval.KindTime:
		t := res.Time
		out.Time = &t
	}
	return out
}

func (s *Service) apply(item v1.EvaluateItem) (interval.Result, error) {
	v, err := s.parse(item.Interval)
	if err != nil {
		return interval.Result{}, err
	}
	op, err := item.Operand.ToOperand()
	if err != nil {
		return interval.Result{}, err
	}
	return v.Apply(op)
}

// apiError carries the HTTP error shape from helpers back to the handler.
type apiError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *apiError) Error() string {
	return e.message
}

// classify maps an interval error to its HTTP shape. Errors outside the
// interval package are client errors of type fallback.
func classify(err error, fallback string) *apiError {
	var parseErr *interval.ParseError
	switch {
	case errors.As(err, &parseErr):
		return &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidIntervalError,
			message:    parseErr.Error(),
			details:    map[string]interface{}{"input": parseErr.Input},
		}
	case errors.Is(err, interval.ErrType):
		return &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidOperandError,
			message:    err.Error(),
		}
	case errors.Is(err, interval.ErrUnsupported):
		return &apiError{
			statusCode: http.StatusUnprocessableEntity,
			errorType:  httperr.HttpUnsupportedFormatError,
			message:    err.Error(),
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &apiError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpInternalError,
			message:    "Request cancelled",
		}
	default:
		return &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  fallback,
			message:    err.Error(),
		}
	}
}

// evaluateTimeout bounds a single batch evaluation.
const evaluateTimeout = 30 * time.Second
