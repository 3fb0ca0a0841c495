package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sevigo/review-radar/internal/core"
)

// Poller drives the tracker on a fixed cadence and pushes each resulting
// snapshot to a callback. The interval is expected to be clamped already by
// the configuration layer; the poll cadence is also the de facto retry
// cadence, there is no extra backoff.
type Poller struct {
	tracker  *Tracker
	interval time.Duration
	onUpdate func(core.Snapshot)
	logger   *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewPoller creates a poller. onUpdate may be nil.
func NewPoller(t *Tracker, interval time.Duration, onUpdate func(core.Snapshot), logger *slog.Logger) *Poller {
	return &Poller{
		tracker:  t,
		interval: interval,
		onUpdate: onUpdate,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start polls immediately, then on every tick, until Stop is called or the
// context is cancelled. It blocks; run it in a goroutine.
func (p *Poller) Start(ctx context.Context) {
	defer close(p.done)

	p.logger.Info("starting poller", "interval", p.interval)
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-p.stop:
			p.logger.Info("poller stopped")
			return
		case <-ctx.Done():
			p.logger.Info("poller context cancelled")
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	snap, err := p.tracker.Refresh(ctx)
	if err != nil {
		// Already surfaced through the notifier; the next tick retries.
		p.logger.Debug("poll failed", "error", err)
	}

	select {
	case <-p.stop:
		// Disposed mid-flight: the result is simply not delivered.
		return
	default:
	}
	if p.onUpdate != nil {
		p.onUpdate(snap)
	}
}

// Stop halts the timer. An in-flight fetch completes or fails silently; its
// result is not delivered once Stop has been called.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}
