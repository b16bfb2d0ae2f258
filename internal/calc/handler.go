package calc

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/interval/internal/api/v1"
	httperr "github.com/aevon-lab/interval/internal/core/errors"
	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/gin-gonic/gin"
)

const (
	// MIMEProtobuf selects the binary interval encoding on /parse.
	MIMEProtobuf = "application/x-protobuf"

	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
)

// ParseHandler handles POST /v1/intervals/parse. Clients sending
// Accept: application/x-protobuf receive the protowire encoding instead of
// JSON.
func (s *Service) ParseHandler(c *gin.Context) {
	var req v1.ParseRequest
	if err := s.bind(c, &req); err != nil {
		writeError(c, err)
		return
	}

	v, err := s.parse(req.Text)
	if err != nil {
		slog.Debug("Rejected interval text", "error", err)
		writeError(c, classify(err, httperr.HttpInvalidIntervalError))
		return
	}

	if c.NegotiateFormat(gin.MIMEJSON, MIMEProtobuf) == MIMEProtobuf {
		data, err := v.MarshalBinary()
		if err != nil {
			slog.Error("Failed to encode interval", "error", err)
			writeError(c, &apiError{statusCode: http.StatusInternalServerError, errorType: httperr.HttpInternalError, message: "Failed to encode interval"})
			return
		}
		c.Data(http.StatusOK, MIMEProtobuf, data)
		return
	}

	c.JSON(http.StatusOK, v1.NewIntervalResponse(v))
}

// CombineHandler handles POST /v1/intervals/combine.
func (s *Service) CombineHandler(c *gin.Context) {
	var req v1.CombineRequest
	if err := s.bind(c, &req); err != nil {
		writeError(c, err)
		return
	}

	left, err := s.parse(req.Left)
	if err != nil {
		writeError(c, classify(err, httperr.HttpInvalidIntervalError))
		return
	}
	right, err := s.parse(req.Right)
	if err != nil {
		writeError(c, classify(err, httperr.HttpInvalidIntervalError))
		return
	}

	s.metrics.Observe(opCombine, nil)
	c.JSON(http.StatusOK, v1.NewIntervalResponse(left.Combine(right)))
}

// ScaleHandler handles POST /v1/intervals/scale. The factor is applied
// exactly; each field of the product is truncated toward zero.
func (s *Service) ScaleHandler(c *gin.Context) {
	var req v1.ScaleRequest
	if err := s.bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, &apiError{statusCode: http.StatusBadRequest, errorType: httperr.HttpInvalidJsonError, message: err.Error()})
		return
	}

	v, err := s.parse(req.Interval)
	if err != nil {
		writeError(c, classify(err, httperr.HttpInvalidIntervalError))
		return
	}

	s.metrics.Observe(opScale, nil)
	c.JSON(http.StatusOK, v1.NewIntervalResponse(v.ScaleDecimal(*req.Factor)))
}

// ApplyHandler handles POST /v1/intervals/apply: the interval is added to
// the given instant with calendar semantics.
func (s *Service) ApplyHandler(c *gin.Context) {
	var req v1.ApplyRequest
	if err := s.bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, &apiError{statusCode: http.StatusBadRequest, errorType: httperr.HttpInvalidJsonError, message: err.Error()})
		return
	}

	v, err := s.parse(req.Interval)
	if err != nil {
		writeError(c, classify(err, httperr.HttpInvalidIntervalError))
		return
	}

	res, err := v.Apply(interval.TimeOperand(req.At))
	s.metrics.Observe(opApply, err)
	if err != nil {
		writeError(c, classify(err, httperr.HttpInvalidOperandError))
		return
	}
	c.JSON(http.StatusOK, v1.TimeResponse{Time: res.Time})
}

// BetweenHandler handles POST /v1/intervals/between.
func (s *Service) BetweenHandler(c *gin.Context) {
	var req v1.BetweenRequest
	if err := s.bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, &apiError{statusCode: http.StatusBadRequest, errorType: httperr.HttpInvalidJsonError, message: err.Error()})
		return
	}

	s.metrics.Observe(opBetween, nil)
	c.JSON(http.StatusOK, v1.NewIntervalResponse(interval.Between(req.From, req.To)))
}

// TerseHandler handles POST /v1/intervals/terse. Intervals with a month or
// day part cannot be rendered and yield 422.
func (s *Service) TerseHandler(c *gin.Context) {
	var req v1.TerseRequest
	if err := s.bind(c, &req); err != nil {
		writeError(c, err)
		return
	}

	v, err := s.parse(req.Interval)
	if err != nil {
		writeError(c, classify(err, httperr.HttpInvalidIntervalError))
		return
	}

	text, err := v.Terse()
	s.metrics.Observe(opTerse, err)
	if err != nil {
		writeError(c, classify(err, httperr.HttpUnsupportedFormatError))
		return
	}
	c.JSON(http.StatusOK, v1.TerseResponse{Text: text})
}

// EvaluateHandler handles POST /v1/intervals/evaluate. Each item is
// evaluated independently; a failing item carries its own error and does
// not fail the request.
func (s *Service) EvaluateHandler(c *gin.Context) {
	var req v1.EvaluateRequest
	if err := s.bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	if len(req.Items) > s.maxBatchSize {
		writeError(c, &apiError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpBatchTooLargeError,
			message:    "Batch exceeds maximum allowed size",
			details:    map[string]interface{}{"max_batch_size": s.maxBatchSize, "items": len(req.Items)},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), evaluateTimeout)
	defer cancel()

	results, err := s.Evaluate(ctx, req.Items)
	if err != nil {
		slog.Warn("Batch evaluation aborted", "items", len(req.Items), "error", err)
		writeError(c, classify(err, httperr.HttpInternalError))
		return
	}

	slog.Info("Evaluated batch", "items", len(req.Items))
	c.JSON(http.StatusOK, v1.EvaluateResponse{Results: results})
}

// bind reads at most maxBodySizeBytes and decodes the JSON body into dst.
func (s *Service) bind(c *gin.Context, dst interface{}) *apiError {
	maxBytes := int64(s.maxBodySizeBytes)
	bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return &apiError{statusCode: http.StatusInternalServerError, errorType: httperr.HttpInternalError, message: msgReadBodyFailed}
	}
	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return &apiError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details:    map[string]interface{}{"max_size_mb": maxBytes / (1024 * 1024)},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return &apiError{statusCode: http.StatusBadRequest, errorType: httperr.HttpInvalidJsonError, message: msgInvalidJSON}
	}
	return nil
}

// writeError serializes an apiError as the JSON HTTP response.
func writeError(c *gin.Context, err *apiError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
