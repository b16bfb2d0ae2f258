package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aevon-lab/interval/internal/core/interval"
)

var (
	ErrInvalid = errors.New("invalid schedule")
)

// approxSecondsPerMonth is PostgreSQL's 30-day month, used only to estimate
// how many steps to skip before walking occurrences exactly.
const approxSecondsPerMonth = 30 * 24 * 60 * 60

// maxWalk bounds the exact walk after estimation. Valid schedules need a
// handful of steps; only a non-monotonic Every gets near it.
const maxWalk = 100000

// Schedule is a named recurrence: occurrence n falls at Anchor + n*Every.
// Each occurrence is computed from the anchor, so a monthly schedule
// anchored on January 31st lands on the last day of every month instead of
// drifting to the 28th after February.
type Schedule struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Anchor      time.Time      `json:"anchor"`
	Every       interval.Value `json:"every"`
	Fingerprint string         `json:"fingerprint,omitempty"` // SHA-256 of the definition file, empty for API-created schedules
	CreatedAt   time.Time      `json:"created_at"`
}

// Validate checks that the schedule has a name and that Every moves the
// anchor forward.
func (s *Schedule) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if s.Anchor.IsZero() {
		return fmt.Errorf("%w: anchor is required", ErrInvalid)
	}
	if !s.Every.AddTo(s.Anchor).After(s.Anchor) {
		return fmt.Errorf("%w: every %q does not move %s forward", ErrInvalid, s.Every, s.Anchor.Format(time.RFC3339))
	}
	return nil
}

// Occurrence returns the n-th occurrence; n = 0 is the anchor itself.
func (s *Schedule) Occurrence(n int64) time.Time {
	return s.Every.Mul(n).AddTo(s.Anchor)
}

// Occurrences returns up to limit occurrences strictly after the given
// time and no later than until. A zero until means no upper bound.
func (s *Schedule) Occurrences(after, until time.Time, limit int) []time.Time {
	if limit <= 0 {
		return nil
	}

	n := s.estimateIndex(after)
	for n > 0 && s.Occurrence(n-1).After(after) {
		n--
	}
	for walked := 0; !s.Occurrence(n).After(after); walked++ {
		if walked == maxWalk {
			return nil
		}
		n++
	}

	out := make([]time.Time, 0, limit)
	for len(out) < limit {
		next := s.Occurrence(n)
		if !until.IsZero() && next.After(until) {
			break
		}
		out = append(out, next)
		n++
	}
	return out
}

func (s *Schedule) estimateIndex(after time.Time) int64 {
	if !after.After(s.Anchor) {
		return 0
	}
	step := s.Every.Months()*approxSecondsPerMonth + s.Every.Days()*24*60*60 + s.Every.Seconds()
	if step <= 0 {
		return 0
	}
	// after is past the anchor, so the distance has no negative parts.
	d := interval.Between(s.Anchor, after)
	n := (d.Days()*24*60*60 + d.Seconds()) / step
	if n > 0 {
		n--
	}
	return n
}
