package tracker

import (
	"time"

	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/urgency"
)

// Summarize counts the snapshot's requests per urgency bucket at the given
// instant. The four bucket counts always sum to Total.
func Summarize(requests []core.ReviewRequest, now time.Time) core.StatusSummary {
	s := core.StatusSummary{Total: len(requests)}
	for _, r := range requests {
		switch urgency.Classify(r, now) {
		case urgency.Critical:
			s.Critical++
		case urgency.High:
			s.High++
		case urgency.Medium:
			s.Medium++
		default:
			s.New++
		}
	}
	return s
}
