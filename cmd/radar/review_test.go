package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-radar/internal/core"
)

func TestParseReviewTarget(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantRepo string
		wantNum  int
		wantErr  string
	}{
		{
			name:     "pr url",
			args:     []string{"https://github.com/owner/repo/pull/123"},
			wantRepo: "owner/repo",
			wantNum:  123,
		},
		{
			name:     "repo and number",
			args:     []string{"owner/repo", "42"},
			wantRepo: "owner/repo",
			wantNum:  42,
		},
		{
			name:    "not a pr url",
			args:    []string{"https://github.com/owner/repo/issues/123"},
			wantErr: "expected a PR URL",
		},
		{
			name:    "bad number",
			args:    []string{"owner/repo", "abc"},
			wantErr: "invalid PR number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, num, err := parseReviewTarget(tt.args)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRepo, repo)
			assert.Equal(t, tt.wantNum, num)
		})
	}
}

func TestSnapshotItems(t *testing.T) {
	reqs := []core.ReviewRequest{
		{Number: 1, Repository: "a/b"},
		{Number: 2, Repository: "a/b"},
	}

	t.Run("flat when grouping is off", func(t *testing.T) {
		items := snapshotItems(core.Snapshot{Requests: reqs})
		require.Len(t, items, 2)
		assert.Equal(t, core.TreeItemRequest, items[0].Kind)
	})

	t.Run("tree when groups are present", func(t *testing.T) {
		s := core.Snapshot{
			Requests: reqs,
			Groups:   []core.RepositoryNode{{Repository: "a/b", Requests: reqs}},
		}
		items := snapshotItems(s)
		require.Len(t, items, 3)
		assert.Equal(t, core.TreeItemGroup, items[0].Kind)
		assert.Equal(t, core.TreeItemRequest, items[1].Kind)
	})
}
