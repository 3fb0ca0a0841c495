// Package tracker owns the in-memory snapshot of review requests and the
// refresh cycle that keeps it current: fetch, filter, detect newly appeared
// items, group, and summarize.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/github"
	"github.com/sevigo/review-radar/internal/notify"
)

// identity is the stable key used for new-item detection across polls.
type identity struct {
	repository string
	number     int
}

// Tracker polls GitHub for review requests and maintains the current
// snapshot. The snapshot is exclusively owned here; callers only ever see
// copies or derived views.
type Tracker struct {
	cfg      *config.Config
	client   github.Client
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.Mutex
	refreshing bool
	snapshot   []core.ReviewRequest
}

// New creates a tracker. The notifier must not be nil; pass notify.Noop{}
// when no notification surface exists.
func New(cfg *config.Config, client github.Client, notifier notify.Notifier, logger *slog.Logger) *Tracker {
	return &Tracker{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// SetNow overrides the clock. Tests only.
func (t *Tracker) SetNow(now func() time.Time) { t.now = now }

// Refresh runs one poll cycle and returns the resulting snapshot view.
//
// A refresh that arrives while another is in flight is dropped: it gets the
// current view back without fetching, which keeps overlapping timer and
// manual triggers from corrupting the new-item baseline or double-notifying.
// Fetch failures keep the previous snapshot (stale-but-valid beats blank).
func (t *Tracker) Refresh(ctx context.Context) (core.Snapshot, error) {
	if !t.cfg.IsConfigured() {
		t.notifier.NotConfigured()
		return t.Current(), core.ErrNotConfigured
	}

	t.mu.Lock()
	if t.refreshing {
		t.mu.Unlock()
		t.logger.Debug("refresh already in flight, dropping trigger")
		return t.Current(), nil
	}
	t.refreshing = true
	previous := identitySet(t.snapshot)
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.refreshing = false
		t.mu.Unlock()
	}()

	fetched, err := t.client.SearchReviewRequested(ctx)
	if err != nil {
		t.notifier.APIError(err)
		return t.Current(), fmt.Errorf("refresh failed: %w", err)
	}

	filtered := filterByRepository(fetched, t.cfg.RepositoryFilter)
	if len(t.cfg.RepositoryFilter) > 0 {
		t.logger.Info("repository filter applied",
			"kept", len(filtered), "fetched", len(fetched),
			"repositories", t.cfg.RepositoryFilter)
	}

	t.mu.Lock()
	t.snapshot = filtered
	t.mu.Unlock()

	snap := t.buildView(filtered, previous)

	if len(snap.NewItems) > 0 {
		switch {
		case t.cfg.ShowNotifications:
			t.notifier.NewReviews(snap.NewItems)
		case t.cfg.PlaySound:
			t.notifier.PlaySound()
		}
	}

	t.logger.Info("refresh complete",
		"total", snap.Summary.Total, "new", len(snap.NewItems))
	return snap, nil
}

// Current returns the view derived from the last successful poll, with an
// empty new-item delta.
func (t *Tracker) Current() core.Snapshot {
	t.mu.Lock()
	snapshot := slices.Clone(t.snapshot)
	t.mu.Unlock()
	return t.buildView(snapshot, identitySet(snapshot))
}

func (t *Tracker) buildView(requests []core.ReviewRequest, previous map[identity]struct{}) core.Snapshot {
	now := t.now()

	snap := core.Snapshot{
		Requests: requests,
		Summary:  Summarize(requests, now),
	}
	if t.cfg.GroupByRepository {
		snap.Groups = GroupByRepository(requests)
	}
	for _, r := range requests {
		if _, seen := previous[identity{r.Repository, r.Number}]; !seen {
			snap.NewItems = append(snap.NewItems, r)
		}
	}
	return snap
}

func identitySet(requests []core.ReviewRequest) map[identity]struct{} {
	set := make(map[identity]struct{}, len(requests))
	for _, r := range requests {
		set[identity{r.Repository, r.Number}] = struct{}{}
	}
	return set
}

// filterByRepository keeps only requests whose repository is in the
// allow-list, preserving order. An empty allow-list is the identity.
func filterByRepository(requests []core.ReviewRequest, allow []string) []core.ReviewRequest {
	if len(allow) == 0 {
		return requests
	}
	allowed := make(map[string]struct{}, len(allow))
	for _, repo := range allow {
		allowed[repo] = struct{}{}
	}

	filtered := make([]core.ReviewRequest, 0, len(requests))
	for _, r := range requests {
		if _, ok := allowed[r.Repository]; ok {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
