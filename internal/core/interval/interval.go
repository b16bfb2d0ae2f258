// Package interval implements a calendar-aware time span that follows
// PostgreSQL interval semantics.
//
// A Value keeps three independent accumulators: months, days and seconds.
// Years fold into months and weeks into days when parsed, but the three
// buckets are never renormalised into one another, because a month and a
// day have no fixed length until the value is applied to a point in time:
//
//	m, _ := interval.Parse("2 months")
//	w, _ := interval.Parse("1 week")
//	m.Combine(w).String() // "2 mons 7 days"
//
//	jan31 := time.Date(2009, time.January, 31, 0, 0, 0, 0, time.Local)
//	month, _ := interval.Parse("1 month")
//	month.AddTo(jan31) // 2009-02-28, not March 3rd
//
// Values are immutable. Every operation returns a new Value, so a Value can
// be shared between goroutines freely.
package interval

import "time"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPerWeek      = 7
	monthsPerYear    = 12
)

// Value is an interval reduced to (months, days, seconds).
// The zero Value is the empty interval and formats as "00:00:00".
type Value struct {
	months  int64
	days    int64
	seconds int64
}

// Zero is the empty interval.
var Zero = Value{}

// New builds a Value from raw accumulator values without normalisation.
func New(months, days, seconds int64) Value {
	return Value{months: months, days: days, seconds: seconds}
}

// Clone returns a copy of v. Plain assignment does the same thing.
func (v Value) Clone() Value {
	return v
}

// Months returns the month accumulator (years are stored as 12 months).
func (v Value) Months() int64 { return v.months }

// Days returns the day accumulator (weeks are stored as 7 days).
func (v Value) Days() int64 { return v.days }

// Seconds returns the second accumulator, which also holds hours, minutes
// and any HH:MM:SS clock segment.
func (v Value) Seconds() int64 { return v.seconds }

// Minutes returns the seconds accumulator expressed in minutes.
// Months and days are not included.
func (v Value) Minutes() float64 {
	return float64(v.seconds) / secondsPerMinute
}

// IsZero reports whether all three accumulators are zero.
func (v Value) IsZero() bool {
	return v == Zero
}

// Between returns the distance from one point in time to another.
// The result never carries months: the elapsed time is truncated to whole
// seconds (rounding toward negative infinity), days take floor(total/86400)
// and seconds keep the truncated remainder of total, which is negative
// whenever total is.
func Between(from, to time.Time) Value {
	total := elapsedSeconds(from, to)

	days := total / secondsPerDay
	if total%secondsPerDay != 0 && total < 0 {
		days--
	}

	return Value{
		days:    days,
		seconds: total % secondsPerDay,
	}
}

// elapsedSeconds is floor((to-from) / 1s) computed on Unix seconds, so spans
// beyond the range of time.Duration do not saturate.
func elapsedSeconds(from, to time.Time) int64 {
	total := to.Unix() - from.Unix()
	if to.Nanosecond() < from.Nanosecond() {
		total--
	}
	return total
}
