package core

import "time"

// ProjectRules is an optional conventions document found in the workspace root
// and included verbatim in the review prompt.
type ProjectRules struct {
	Content string
	File    string // relative path the content was loaded from
}

// PullRequestReview is a submitted review summary on a pull request.
type PullRequestReview struct {
	Author      string
	State       string // APPROVED, CHANGES_REQUESTED, COMMENTED, ...
	SubmittedAt time.Time
	Body        string
}

// ReviewComment is a single line-level comment from an existing review thread.
type ReviewComment struct {
	Author    string
	Path      string
	Line      int // 0 when the comment is not anchored to a line
	CreatedAt time.Time
	DiffHunk  string
	Body      string
}

// ReviewThreads bundles the existing review activity on a pull request.
type ReviewThreads struct {
	Reviews  []PullRequestReview
	Comments []ReviewComment
}

// HasActivity reports whether at least one review or comment exists.
func (t ReviewThreads) HasActivity() bool {
	return len(t.Reviews) > 0 || len(t.Comments) > 0
}

// DiffSource records which strategy produced the diff text: the preferred
// non-merge-commit comparison or the whole-PR fallback.
type DiffSource string

const (
	DiffSourcePrimary  DiffSource = "non-merge-commits"
	DiffSourceFallback DiffSource = "full-pr"
)

// Diff is the unified diff of a pull request together with its provenance.
type Diff struct {
	Text   string
	Source DiffSource
}

// ReviewContext is the bundle assembled for one AI review request. It is
// built once, rendered into a prompt, and discarded; nothing here is cached.
type ReviewContext struct {
	Request     ReviewRequest
	Diff        Diff
	Description string
	Rules       *ProjectRules // nil when no conventions document was found
	Threads     ReviewThreads
}
