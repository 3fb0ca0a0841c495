package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/review-radar/internal/core"
)

// noNonMergeCommits is emitted verbatim when a PR consists of merge commits
// only, so the prompt still carries an explanation instead of an empty block.
const noNonMergeCommits = "No non-merge commits found in this PR."

func (g *gitHubClient) GetDiff(ctx context.Context, repository string, number int, nonMergeOnly bool) (core.Diff, error) {
	owner, name, err := splitRepository(repository)
	if err != nil {
		return core.Diff{}, err
	}

	if !nonMergeOnly {
		text, err := g.fullDiff(ctx, owner, name, number)
		if err != nil {
			return core.Diff{}, err
		}
		return core.Diff{Text: text, Source: core.DiffSourceFallback}, nil
	}

	// Preferred strategy: diff from the PR base to the last non-merge
	// commit, so reviewers never wade through merged-in mainline noise.
	text, primaryErr := g.nonMergeDiff(ctx, owner, name, number)
	if primaryErr == nil {
		return core.Diff{Text: text, Source: core.DiffSourcePrimary}, nil
	}
	g.logger.Warn("non-merge diff failed, falling back to full PR diff",
		"repo", repository, "pr", number, "error", primaryErr)

	text, fallbackErr := g.fullDiff(ctx, owner, name, number)
	if fallbackErr == nil {
		return core.Diff{Text: text, Source: core.DiffSourceFallback}, nil
	}

	return core.Diff{}, fmt.Errorf("%w: %w", core.ErrUpstreamFetch, errors.Join(primaryErr, fallbackErr))
}

// nonMergeDiff lists the PR's commits, drops every commit with more than one
// parent, and compares the PR base against the last remaining commit.
func (g *gitHubClient) nonMergeDiff(ctx context.Context, owner, name string, number int) (string, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, owner, name, number)
	if err != nil {
		return "", fmt.Errorf("failed to get pull request: %w", err)
	}
	baseSHA := pr.GetBase().GetSHA()
	if baseSHA == "" {
		return "", fmt.Errorf("pull request %d has no base SHA", number)
	}

	commits, err := g.listCommits(ctx, owner, name, number)
	if err != nil {
		return "", err
	}

	headSHA := lastNonMergeSHA(commits)
	if headSHA == "" {
		return noNonMergeCommits, nil
	}

	diff, _, err := g.client.Repositories.CompareCommitsRaw(ctx, owner, name, baseSHA, headSHA, github.RawOptions{
		Type: github.Diff,
	})
	if err != nil {
		return "", fmt.Errorf("failed to compare %s...%s: %w", baseSHA, headSHA, err)
	}
	return diff, nil
}

func (g *gitHubClient) listCommits(ctx context.Context, owner, name string, number int) ([]*github.RepositoryCommit, error) {
	var all []*github.RepositoryCommit
	opts := &github.ListOptions{PerPage: 100}
	for {
		commits, resp, err := g.client.PullRequests.ListCommits(ctx, owner, name, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list commits: %w", err)
		}
		all = append(all, commits...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// lastNonMergeSHA returns the SHA of the last commit with at most one parent,
// or "" when every commit is a merge.
func lastNonMergeSHA(commits []*github.RepositoryCommit) string {
	for i := len(commits) - 1; i >= 0; i-- {
		if len(commits[i].Parents) <= 1 {
			return commits[i].GetSHA()
		}
	}
	return ""
}

func (g *gitHubClient) fullDiff(ctx context.Context, owner, name string, number int) (string, error) {
	diff, _, err := g.client.PullRequests.GetRaw(ctx, owner, name, number, github.RawOptions{
		Type: github.Diff,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get pull request diff: %w", err)
	}
	return diff, nil
}
