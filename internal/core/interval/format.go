package interval

import (
	"strconv"
	"strings"
)

const zeroClock = "00:00:00"

// String renders v in PostgreSQL's canonical output style, for example
// "1 year 2 mons 3 days 04:05:06". Zero-valued parts are omitted and the
// empty interval is "00:00:00". Parse accepts everything String produces.
func (v Value) String() string {
	if v.IsZero() {
		return zeroClock
	}

	var parts []string

	m := v.months
	if m >= monthsPerYear {
		parts = append(parts, plural(floorDiv(v.months, monthsPerYear), "year"))
		m %= monthsPerYear
	}
	if m != 0 {
		parts = append(parts, plural(m, "mon"))
	}
	if v.days != 0 {
		parts = append(parts, plural(v.days, "day"))
	}
	if v.seconds != 0 {
		h, mm, s := clockParts(v.seconds)
		parts = append(parts, h+":"+mm+":"+s)
	}

	return strings.Join(parts, " ")
}

// Terse renders a pure clock interval as e.g. "01hr 30min" or "02hrs 05s".
// Values carrying months or days return an *UnsupportedError. The empty
// interval renders as "".
func (v Value) Terse() (string, error) {
	if v.months != 0 {
		return "", &UnsupportedError{Field: "months"}
	}
	if v.days != 0 {
		return "", &UnsupportedError{Field: "days"}
	}
	if v.seconds == 0 {
		return "", nil
	}

	h, m, s := clockParts(v.seconds)
	var parts []string
	if h != "00" {
		if h == "01" {
			parts = append(parts, h+"hr")
		} else {
			parts = append(parts, h+"hrs")
		}
	}
	if m != "00" {
		parts = append(parts, m+"min")
	}
	if s != "00" {
		parts = append(parts, s+"s")
	}
	return strings.Join(parts, " "), nil
}

// clockParts splits seconds into padded hours, minutes and seconds.
// Hours are unbounded; minutes and seconds keep the sign of their input.
func clockParts(seconds int64) (string, string, string) {
	hours := floorDiv(seconds, secondsPerHour)
	minutes := floorDiv(seconds, secondsPerMinute) % 60
	secs := seconds % 60
	return pad2(hours), pad2(minutes), pad2(secs)
}

func pad2(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func plural(n int64, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.FormatInt(n, 10) + " " + noun + "s"
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
