package interval

import "time"

// clampThreshold is the smallest day of month the end-of-month pull back
// settles on. No Gregorian month is shorter than this.
const clampThreshold = 20

// AddTo adds v to t the way PostgreSQL adds an interval to a timestamp.
// Months move first and clamp to the end of the target month
// (2009-01-31 + 1 month = 2009-02-28), then days, then seconds, each
// letting the calendar normalise overflow. Arithmetic happens on the wall
// clock fields of t in t's own location; the sub-second part of t is kept.
func (v Value) AddTo(t time.Time) time.Time {
	loc := t.Location()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	nsec := t.Nanosecond()
	clock := int64(hour)*secondsPerHour + int64(min)*secondsPerMinute + int64(sec)

	// Shift months from the 1st so the shift itself never overflows.
	first := time.Date(year, month+time.Month(v.months), 1, 0, 0, 0, 0, loc)
	out := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc)
	if day > clampThreshold {
		// The day rolled into the following month; step back to the last
		// valid day of the target month.
		for out.Day() < clampThreshold {
			out = time.Date(out.Year(), out.Month(), out.Day()-1, 0, 0, 0, 0, loc)
		}
	}

	out = time.Date(out.Year(), out.Month(), out.Day()+int(v.days), 0, 0, 0, 0, loc)

	return time.Date(out.Year(), out.Month(), out.Day(), 0, 0, int(clock+v.seconds), nsec, loc)
}
