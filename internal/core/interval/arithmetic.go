package interval

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	maxField = decimal.NewFromInt(math.MaxInt64)
	minField = decimal.NewFromInt(math.MinInt64)
)

// Combine returns the field-wise sum of v and other. A field that would
// overflow int64 saturates at the nearest bound.
func (v Value) Combine(other Value) Value {
	return Value{
		months:  saturatingAdd(v.months, other.months),
		days:    saturatingAdd(v.days, other.days),
		seconds: saturatingAdd(v.seconds, other.seconds),
	}
}

// Mul multiplies every accumulator by an integral factor. A field that
// would overflow int64 saturates at the nearest bound.
func (v Value) Mul(n int64) Value {
	return Value{
		months:  saturatingMul(v.months, n),
		days:    saturatingMul(v.days, n),
		seconds: saturatingMul(v.seconds, n),
	}
}

// ScaleDecimal multiplies every accumulator by k and truncates each
// product toward zero. No rounding takes place: "1 day" scaled by 1.9 is
// still "1 day". Products beyond int64 saturate at the nearest bound.
func (v Value) ScaleDecimal(k decimal.Decimal) Value {
	return Value{
		months:  scaleField(v.months, k),
		days:    scaleField(v.days, k),
		seconds: scaleField(v.seconds, k),
	}
}

// Scale is ScaleDecimal for a float64 factor. The factor is converted
// using its shortest decimal representation, so 0.1 scales by exactly one
// tenth. This differs from multiplying in float64 and truncating:
// 100 seconds scaled by 0.57 is 57 seconds here, not 56.
// NaN and infinite factors return a *TypeError.
func (v Value) Scale(k float64) (Value, error) {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return Zero, &TypeError{Op: "Scale", Got: fmt.Sprintf("non-finite factor %v", k)}
	}
	return v.ScaleDecimal(decimal.NewFromFloat(k)), nil
}

func scaleField(n int64, k decimal.Decimal) int64 {
	if n == 0 {
		return 0
	}
	p := decimal.NewFromInt(n).Mul(k).Truncate(0)
	switch {
	case p.GreaterThan(maxField):
		return math.MaxInt64
	case p.LessThan(minField):
		return math.MinInt64
	}
	return p.IntPart()
}

func saturatingAdd(a, b int64) int64 {
	if c, ok := addInt64(a, b); ok {
		return c
	}
	if b > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

func saturatingMul(a, b int64) int64 {
	if c, ok := mulInt64(a, b); ok {
		return c
	}
	if (a < 0) != (b < 0) {
		return math.MinInt64
	}
	return math.MaxInt64
}

// OperandKind tags the active member of an Operand.
type OperandKind string

const (
	KindInterval OperandKind = "interval"
	KindTime     OperandKind = "time"
)

// Operand is the right-hand side of Apply: either another interval or a
// point in time.
type Operand struct {
	Kind     OperandKind
	Interval Value
	Time     time.Time
}

// IntervalOperand wraps a Value for Apply.
func IntervalOperand(v Value) Operand {
	return Operand{Kind: KindInterval, Interval: v}
}

// TimeOperand wraps a point in time for Apply.
func TimeOperand(t time.Time) Operand {
	return Operand{Kind: KindTime, Time: t}
}

// Result is what Apply produced; Kind mirrors the operand kind.
type Result struct {
	Kind     OperandKind
	Interval Value
	Time     time.Time
}

// Apply adds v to the operand: Combine for an interval operand, AddTo for
// a time operand. An operand with any other kind is a *TypeError.
func (v Value) Apply(op Operand) (Result, error) {
	switch op.Kind {
	case KindInterval:
		return Result{Kind: KindInterval, Interval: v.Combine(op.Interval)}, nil
	case KindTime:
		return Result{Kind: KindTime, Time: v.AddTo(op.Time)}, nil
	default:
		got := string(op.Kind)
		if got == "" {
			got = "empty operand"
		}
		return Result{}, &TypeError{Op: "Apply", Got: got}
	}
}
