package review

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/github"
)

// Gatherer assembles the context bundle for one AI review: diff, description,
// existing review threads, and the optional workspace conventions document.
type Gatherer struct {
	client        github.Client
	workspaceRoot string
	logger        *slog.Logger
}

// NewGatherer creates a gatherer. workspaceRoot may be empty when no
// workspace is open; the rules probe then yields nothing.
func NewGatherer(client github.Client, workspaceRoot string, logger *slog.Logger) *Gatherer {
	return &Gatherer{client: client, workspaceRoot: workspaceRoot, logger: logger}
}

// Gather fetches all context parts concurrently and joins on the result.
// There is no degraded mode: if any required fetch fails (after the diff
// strategy's own fallback), the whole gather fails and nothing is returned.
func (g *Gatherer) Gather(ctx context.Context, req core.ReviewRequest) (core.ReviewContext, error) {
	rc := core.ReviewContext{Request: req}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		diff, err := g.client.GetDiff(egCtx, req.Repository, req.Number, true)
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}
		rc.Diff = diff
		return nil
	})
	eg.Go(func() error {
		desc, err := g.client.GetDescription(egCtx, req.Repository, req.Number)
		if err != nil {
			return fmt.Errorf("description: %w", err)
		}
		rc.Description = desc
		return nil
	})
	eg.Go(func() error {
		threads, err := g.client.ListReviews(egCtx, req.Repository, req.Number)
		if err != nil {
			return fmt.Errorf("reviews: %w", err)
		}
		rc.Threads = threads
		return nil
	})
	eg.Go(func() error {
		// Local filesystem probe; absence is not an error.
		rc.Rules = FindProjectRules(g.workspaceRoot, g.logger)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return core.ReviewContext{}, fmt.Errorf("%w: %w", core.ErrContextGather, err)
	}

	g.logger.Debug("review context gathered",
		"repo", req.Repository, "pr", req.Number,
		"diff_source", rc.Diff.Source,
		"has_rules", rc.Rules != nil,
		"reviews", len(rc.Threads.Reviews),
		"comments", len(rc.Threads.Comments))
	return rc, nil
}
