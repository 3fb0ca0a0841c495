// Package github provides the focused GitHub API surface the application
// consumes: searching pull requests awaiting the current user's review and
// fetching the diff, description, and review history of a single pull request.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/review-radar/internal/core"
)

const reviewRequestedQuery = "type:pr state:open review-requested:@me"

// Client defines the operations the aggregation and review pipelines need.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks github.com/sevigo/review-radar/internal/github Client
type Client interface {
	// SearchReviewRequested returns every open pull request where the
	// authenticated user is a requested reviewer, enriched with per-item
	// detail. A failed detail lookup degrades that one item to safe
	// defaults instead of failing the batch.
	SearchReviewRequested(ctx context.Context) ([]core.ReviewRequest, error)

	// GetDiff fetches the unified diff. With nonMergeOnly the diff is
	// computed from the PR's base to its last non-merge commit, falling
	// back to the whole-PR diff when that comparison fails.
	GetDiff(ctx context.Context, repository string, number int, nonMergeOnly bool) (core.Diff, error)

	// GetDescription returns the PR body, empty string when absent.
	GetDescription(ctx context.Context, repository string, number int) (string, error)

	// ListReviews returns submitted review summaries and line comments.
	ListReviews(ctx context.Context, repository string, number int) (core.ReviewThreads, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient wraps an existing go-github client.
func NewClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient creates a client authenticated with a personal access token.
// The token is supplied externally; no authentication flow lives here.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &gitHubClient{client: github.NewClient(tc), logger: logger}
}

// splitRepository splits an "owner/name" identifier.
func splitRepository(repository string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository identifier %q, expected owner/name", repository)
	}
	return owner, name, nil
}

// repositoryFromURL extracts "owner/name" from an API repository URL like
// https://api.github.com/repos/owner/name.
func repositoryFromURL(url string) string {
	parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

func (g *gitHubClient) SearchReviewRequested(ctx context.Context) ([]core.ReviewRequest, error) {
	opts := &github.SearchOptions{
		Sort:        "updated",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var requests []core.ReviewRequest
	for {
		result, resp, err := g.client.Search.Issues(ctx, reviewRequestedQuery, opts)
		if err != nil {
			g.logger.Error("failed to search review requests", "error", err)
			return nil, fmt.Errorf("%w: %w", core.ErrUpstreamFetch, err)
		}

		for _, issue := range result.Issues {
			requests = append(requests, g.toReviewRequest(ctx, issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return requests, nil
}

// toReviewRequest converts a search result into the domain model, enriching
// it with pull request detail. Detail failure keeps the basic fields and
// fills the rest with safe defaults so one broken item cannot sink the batch.
func (g *gitHubClient) toReviewRequest(ctx context.Context, issue *github.Issue) core.ReviewRequest {
	repository := repositoryFromURL(issue.GetRepositoryURL())

	req := core.ReviewRequest{
		Number:     issue.GetNumber(),
		Title:      issue.GetTitle(),
		URL:        issue.GetHTMLURL(),
		Repository: repository,
		Author:     "Unknown",
		CreatedAt:  issue.GetCreatedAt().Time,
		UpdatedAt:  issue.GetUpdatedAt().Time,
		Mergeable:  core.MergeableUnknown,
	}
	if user := issue.GetUser(); user != nil {
		if user.GetLogin() != "" {
			req.Author = user.GetLogin()
		}
		req.AuthorAvatarURL = user.GetAvatarURL()
	}

	owner, name, err := splitRepository(repository)
	if err != nil {
		g.logger.Warn("skipping detail lookup for malformed repository URL",
			"url", issue.GetRepositoryURL(), "pr", req.Number)
		return req
	}

	pr, _, err := g.client.PullRequests.Get(ctx, owner, name, req.Number)
	if err != nil {
		g.logger.Warn("detail lookup failed, using defaults",
			"repo", repository, "pr", req.Number, "error", err)
		return req
	}

	req.Draft = pr.GetDraft()
	req.Mergeable = core.MergeableFrom(pr.Mergeable)
	req.Additions = pr.GetAdditions()
	req.Deletions = pr.GetDeletions()
	req.ChangedFiles = pr.GetChangedFiles()
	req.ReviewComments = pr.GetReviewComments()
	return req
}

func (g *gitHubClient) GetDescription(ctx context.Context, repository string, number int) (string, error) {
	owner, name, err := splitRepository(repository)
	if err != nil {
		return "", err
	}

	pr, _, err := g.client.PullRequests.Get(ctx, owner, name, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "repo", repository, "pr", number, "error", err)
		return "", fmt.Errorf("%w: %w", core.ErrUpstreamFetch, err)
	}
	return pr.GetBody(), nil
}

func (g *gitHubClient) ListReviews(ctx context.Context, repository string, number int) (core.ReviewThreads, error) {
	owner, name, err := splitRepository(repository)
	if err != nil {
		return core.ReviewThreads{}, err
	}

	var threads core.ReviewThreads

	reviewOpts := &github.ListOptions{PerPage: 100}
	for {
		reviews, resp, err := g.client.PullRequests.ListReviews(ctx, owner, name, number, reviewOpts)
		if err != nil {
			g.logger.Error("failed to list reviews", "repo", repository, "pr", number, "error", err)
			return core.ReviewThreads{}, fmt.Errorf("%w: %w", core.ErrUpstreamFetch, err)
		}
		for _, rv := range reviews {
			threads.Reviews = append(threads.Reviews, core.PullRequestReview{
				Author:      rv.GetUser().GetLogin(),
				State:       rv.GetState(),
				SubmittedAt: rv.GetSubmittedAt().Time,
				Body:        rv.GetBody(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		reviewOpts.Page = resp.NextPage
	}

	commentOpts := &github.PullRequestListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		comments, resp, err := g.client.PullRequests.ListComments(ctx, owner, name, number, commentOpts)
		if err != nil {
			g.logger.Error("failed to list review comments", "repo", repository, "pr", number, "error", err)
			return core.ReviewThreads{}, fmt.Errorf("%w: %w", core.ErrUpstreamFetch, err)
		}
		for _, c := range comments {
			threads.Comments = append(threads.Comments, core.ReviewComment{
				Author:    c.GetUser().GetLogin(),
				Path:      c.GetPath(),
				Line:      c.GetLine(),
				CreatedAt: c.GetCreatedAt().Time,
				DiffHunk:  c.GetDiffHunk(),
				Body:      c.GetBody(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		commentOpts.Page = resp.NextPage
	}

	return threads, nil
}
