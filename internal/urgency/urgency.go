// Package urgency classifies review requests into time-based urgency buckets.
// Everything here is a pure function of the request's timestamps and an
// explicit "now", so callers inject the clock and tests stay deterministic.
package urgency

import (
	"fmt"
	"time"

	"github.com/sevigo/review-radar/internal/core"
)

// Bucket is an urgency level derived from the elapsed days since the
// request's relevant time. The four buckets partition [0, inf) days:
// new [0,1), medium [1,3), high [3,7), critical [7,inf).
type Bucket int

const (
	New Bucket = iota
	Medium
	High
	Critical
)

func (b Bucket) String() string {
	switch b {
	case Critical:
		return "critical"
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "new"
	}
}

// Glyph is the one-character marker shown next to a request in list views.
func (b Bucket) Glyph() string {
	switch b {
	case Critical:
		return "🚨"
	case High:
		return "🔥"
	case Medium:
		return "⚠️"
	default:
		return "🆕"
	}
}

// RelevantTime picks the timestamp urgency is measured from: the update time
// when the request has seen activity after creation, otherwise the creation
// time. A malformed pair (updated before created) degrades to the creation
// time rather than failing.
func RelevantTime(r core.ReviewRequest) time.Time {
	if r.UpdatedAt.After(r.CreatedAt) {
		return r.UpdatedAt
	}
	return r.CreatedAt
}

// AgeDays returns the whole days elapsed between t and now, truncated toward
// zero. Negative ages (clock skew) clamp to zero so a future timestamp still
// lands in the "new" bucket.
func AgeDays(t, now time.Time) int {
	d := int(now.Sub(t).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Classify maps a request to its bucket at the given instant.
func Classify(r core.ReviewRequest, now time.Time) Bucket {
	return ForAge(AgeDays(RelevantTime(r), now))
}

// ForAge maps an age in whole days to a bucket. First match wins.
func ForAge(days int) Bucket {
	switch {
	case days >= 7:
		return Critical
	case days >= 3:
		return High
	case days >= 1:
		return Medium
	default:
		return New
	}
}

// TimeAgo renders a compact human age: days when at least one full day has
// passed, else hours, else minutes. Always floored, never rounded up.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	if days := int(diff.Hours() / 24); days > 0 {
		return fmt.Sprintf("%dd ago", days)
	}
	if hours := int(diff.Hours()); hours > 0 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dm ago", int(diff.Minutes()))
}
