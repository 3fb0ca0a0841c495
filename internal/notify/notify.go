// Package notify defines the notification boundary between the aggregation
// logic and whatever host surface presents it. Implementations return an
// enumerated action instead of a button label, so callers can match on the
// outcome exhaustively.
package notify

import "github.com/sevigo/review-radar/internal/core"

// Notifier receives the user-facing signals the refresh cycle produces.
type Notifier interface {
	// NewReviews announces requests that appeared since the previous poll.
	NewReviews(requests []core.ReviewRequest) core.NotifyAction

	// NotConfigured signals the persistent "no token" state.
	NotConfigured()

	// APIError reports a failed fetch; the previous snapshot stays visible.
	APIError(err error)

	// PlaySound emits the audible cue when popups are disabled.
	PlaySound()
}

// Noop discards every signal. Useful for tests and one-shot commands that
// render their own output.
type Noop struct{}

func (Noop) NewReviews([]core.ReviewRequest) core.NotifyAction { return core.ActionNone }
func (Noop) NotConfigured()                                    {}
func (Noop) APIError(error)                                    {}
func (Noop) PlaySound()                                        {}
