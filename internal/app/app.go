// Package app bundles the assembled components of Review Radar and hosts the
// cross-component flows: refreshing the aggregate and running one AI review
// end to end.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/github"
	"github.com/sevigo/review-radar/internal/notify"
	"github.com/sevigo/review-radar/internal/review"
	"github.com/sevigo/review-radar/internal/tracker"
)

// App holds the wired application components.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	GitHub    github.Client
	Notifier  notify.Notifier
	Tracker   *tracker.Tracker
	Gatherer  *review.Gatherer
	Deliverer *review.Deliverer
	Records   *review.Store
}

// New assembles the application from its already-constructed parts.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	gh github.Client,
	notifier notify.Notifier,
	tr *tracker.Tracker,
	gatherer *review.Gatherer,
	deliverer *review.Deliverer,
	records *review.Store,
) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		GitHub:    gh,
		Notifier:  notifier,
		Tracker:   tr,
		Gatherer:  gatherer,
		Deliverer: deliverer,
		Records:   records,
	}
}

// NewPoller creates a poller over the tracker using the configured refresh
// interval.
func (a *App) NewPoller(onUpdate func(core.Snapshot)) *tracker.Poller {
	interval := time.Duration(a.Config.RefreshInterval) * time.Second
	return tracker.NewPoller(a.Tracker, interval, onUpdate, a.Logger)
}

// Refresh fetches the current review requests and returns the new snapshot.
func (a *App) Refresh(ctx context.Context) (core.Snapshot, error) {
	return a.Tracker.Refresh(ctx)
}

// FindRequest locates a pending review request by repository and number,
// refreshing first when the snapshot is still empty.
func (a *App) FindRequest(ctx context.Context, repository string, number int) (core.ReviewRequest, error) {
	snapshot := a.Tracker.Current()
	if !snapshot.HasRequests() {
		var err error
		snapshot, err = a.Tracker.Refresh(ctx)
		if err != nil {
			return core.ReviewRequest{}, err
		}
	}

	for _, req := range snapshot.Requests {
		if req.Repository == repository && req.Number == number {
			return req, nil
		}
	}
	return core.ReviewRequest{}, fmt.Errorf("no pending review request for %s#%d", repository, number)
}

// ReviewOutcome is the result of one RunReview call.
type ReviewOutcome struct {
	Method     core.DeliveryMethod
	Language   review.Language
	Prompt     string
	Review     string // formatted assistant response; set for CLI delivery only
	RecordPath string // written record; set when the review was persisted
}

// RunReview executes the full review pipeline for one request: gather
// context, render the prompt, deliver it, and for CLI delivery normalize and
// persist the assistant's response. A failed record write does not fail the
// review; the formatted text is still returned.
func (a *App) RunReview(ctx context.Context, req core.ReviewRequest, method core.DeliveryMethod) (ReviewOutcome, error) {
	rc, err := a.Gatherer.Gather(ctx, req)
	if err != nil {
		return ReviewOutcome{}, err
	}

	prompt, lang, err := review.BuildPrompt(rc)
	if err != nil {
		return ReviewOutcome{}, err
	}

	outcome := ReviewOutcome{Method: method, Language: lang, Prompt: prompt}

	result, err := a.Deliverer.Deliver(ctx, method, prompt)
	if err != nil {
		return ReviewOutcome{}, err
	}
	if method != core.DeliverCLI {
		return outcome, nil
	}

	outcome.Review = review.FormatResult(result)

	path, err := a.Records.Save(req, outcome.Review, lang)
	if err != nil {
		a.Logger.Warn("could not persist review record",
			"repo", req.Repository, "pr", req.Number, "error", err)
	} else {
		outcome.RecordPath = path
		a.Logger.Info("review record saved", "path", path)
	}
	return outcome, nil
}
