// Package core defines the essential data structures shared across the
// application: review requests, their grouped views, urgency buckets, and the
// context bundle used to generate AI review prompts. These types are
// deliberately free of transport or UI concerns so every other package can
// depend on them without cycles.
package core

import "time"

// Mergeable is the tri-state mergeability reported by the hosting platform.
// GitHub computes mergeability lazily, so "unknown" is a normal transient
// state and not an error.
type Mergeable int8

const (
	MergeableUnknown Mergeable = iota
	MergeableClean
	MergeableConflict
)

func (m Mergeable) String() string {
	switch m {
	case MergeableClean:
		return "clean"
	case MergeableConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// MergeableFrom converts go-github's *bool mergeable field into the tri-state.
func MergeableFrom(v *bool) Mergeable {
	if v == nil {
		return MergeableUnknown
	}
	if *v {
		return MergeableClean
	}
	return MergeableConflict
}

// ReviewRequest is one open pull request where the current user is a requested
// reviewer. The (Number, Repository) pair is the stable identity used to detect
// newly appeared items between polls; instances themselves are rebuilt on every
// poll and never mutated.
type ReviewRequest struct {
	Number          int
	Title           string
	URL             string
	Repository      string // "owner/name"
	Author          string
	AuthorAvatarURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Draft           bool
	Mergeable       Mergeable
	Additions       int
	Deletions       int
	ChangedFiles    int
	ReviewComments  int
}

// Owner returns the owner half of the Repository identifier.
func (r ReviewRequest) Owner() string {
	for i := 0; i < len(r.Repository); i++ {
		if r.Repository[i] == '/' {
			return r.Repository[:i]
		}
	}
	return r.Repository
}

// Name returns the repository-name half of the Repository identifier.
func (r ReviewRequest) Name() string {
	for i := 0; i < len(r.Repository); i++ {
		if r.Repository[i] == '/' {
			return r.Repository[i+1:]
		}
	}
	return ""
}

// RepositoryNode groups the review requests of a single repository. Nodes are
// rebuilt in full from each snapshot, ordered by descending relevant time
// inside and lexicographically by repository across nodes.
type RepositoryNode struct {
	Repository string
	Requests   []ReviewRequest
}

// TreeItemKind discriminates the sidebar tree union.
type TreeItemKind string

const (
	TreeItemGroup   TreeItemKind = "group"
	TreeItemRequest TreeItemKind = "request"
)

// TreeItem is the tagged union handed to the presentation layer: either a
// repository group or a leaf review request, never both.
type TreeItem struct {
	Kind    TreeItemKind
	Group   *RepositoryNode
	Request *ReviewRequest
}

// StatusSummary is the aggregate view shown in the status indicator. The four
// bucket counts partition Total: every request falls into exactly one bucket.
type StatusSummary struct {
	Total    int
	Critical int // 7+ days
	High     int // 3-6 days
	Medium   int // 1-2 days
	New      int // same day
}

// Snapshot is the result of one successful refresh: the filtered flat list,
// the grouped view, the delta of requests absent from the previous poll, and
// the derived status counts.
type Snapshot struct {
	Requests []ReviewRequest
	Groups   []RepositoryNode
	NewItems []ReviewRequest
	Summary  StatusSummary
}

// HasRequests reports whether anything is awaiting review.
func (s Snapshot) HasRequests() bool {
	return len(s.Requests) > 0
}
