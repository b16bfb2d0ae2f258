package v1

import (
	"fmt"
	"strings"
	"time"

	httperr "github.com/aevon-lab/interval/internal/core/errors"
	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/shopspring/decimal"
)

// Interval texts travel as strings and are parsed by the handlers, so a
// malformed interval is reported as invalid_interval rather than as a JSON
// binding failure.

type ParseRequest struct {
	Text string `json:"text"`
}

// IntervalResponse describes a single interval value.
type IntervalResponse struct {
	Interval string  `json:"interval"` // canonical form
	Months   int64   `json:"months"`
	Days     int64   `json:"days"`
	Seconds  int64   `json:"seconds"`
	Minutes  float64 `json:"minutes"`
}

func NewIntervalResponse(v interval.Value) IntervalResponse {
	return IntervalResponse{
		Interval: v.String(),
		Months:   v.Months(),
		Days:     v.Days(),
		Seconds:  v.Seconds(),
		Minutes:  v.Minutes(),
	}
}

type CombineRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// ScaleRequest multiplies an interval by Factor, which may be a JSON number
// or a decimal string such as "0.5".
type ScaleRequest struct {
	Interval string           `json:"interval"`
	Factor   *decimal.Decimal `json:"factor"`
}

func (r *ScaleRequest) Validate() error {
	if r.Factor == nil {
		return fmt.Errorf("factor is required")
	}
	return nil
}

type ApplyRequest struct {
	Interval string    `json:"interval"`
	At       time.Time `json:"at"`
}

func (r *ApplyRequest) Validate() error {
	if r.At.IsZero() {
		return fmt.Errorf("at is required")
	}
	return nil
}

type TimeResponse struct {
	Time time.Time `json:"time"`
}

type BetweenRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r *BetweenRequest) Validate() error {
	if r.From.IsZero() {
		return fmt.Errorf("from is required")
	}
	if r.To.IsZero() {
		return fmt.Errorf("to is required")
	}
	return nil
}

type TerseRequest struct {
	Interval string `json:"interval"`
}

type TerseResponse struct {
	Text string `json:"text"`
}

// Operand is the JSON form of interval.Operand. Exactly one of Interval or
// Time is read, selected by Kind ("interval" or "time").
type Operand struct {
	Kind     string     `json:"kind"`
	Interval string     `json:"interval,omitempty"`
	Time     *time.Time `json:"time,omitempty"`
}

// ToOperand converts the payload. Kind is passed through unchecked so that
// interval.Value.Apply owns the unknown-kind error.
func (o Operand) ToOperand() (interval.Operand, error) {
	op := interval.Operand{Kind: interval.OperandKind(strings.TrimSpace(o.Kind))}
	switch op.Kind {
	case interval.KindInterval:
		v, err := interval.Parse(o.Interval)
		if err != nil {
			return interval.Operand{}, err
		}
		op.Interval = v
	case interval.KindTime:
		if o.Time == nil {
			return interval.Operand{}, fmt.Errorf("operand time is required for kind %q", o.Kind)
		}
		op.Time = *o.Time
	}
	return op, nil
}

type EvaluateItem struct {
	Interval string  `json:"interval"`
	Operand  Operand `json:"operand"`
}

type EvaluateRequest struct {
	Items []EvaluateItem `json:"items"`
}

// EvaluateResult holds either the result of one item or its error. Results
// are returned in request order.
type EvaluateResult struct {
	Index    int                    `json:"index"`
	Kind     string                 `json:"kind,omitempty"`
	Interval string                 `json:"interval,omitempty"`
	Time     *time.Time             `json:"time,omitempty"`
	Error    *httperr.ErrorResponse `json:"error,omitempty"`
}

type EvaluateResponse struct {
	Results []EvaluateResult `json:"results"`
}
