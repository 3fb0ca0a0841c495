package github

import (
	"testing"

	"github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
)

func TestSplitRepository(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{"valid", "octocat/hello-world", "octocat", "hello-world", false},
		{"missing slash", "octocat", "", "", true},
		{"empty owner", "/repo", "", "", true},
		{"empty name", "owner/", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := splitRepository(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestRepositoryFromURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		want  string
	}{
		{"api url", "https://api.github.com/repos/octocat/hello-world", "octocat/hello-world"},
		{"trailing slash", "https://api.github.com/repos/octocat/hello-world/", "octocat/hello-world"},
		{"garbage", "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repositoryFromURL(tt.url))
		})
	}
}

func commit(sha string, parents int) *github.RepositoryCommit {
	c := &github.RepositoryCommit{SHA: github.Ptr(sha)}
	for range parents {
		c.Parents = append(c.Parents, &github.Commit{})
	}
	return c
}

func TestLastNonMergeSHA(t *testing.T) {
	tests := []struct {
		name    string
		commits []*github.RepositoryCommit
		want    string
	}{
		{
			name:    "picks last plain commit",
			commits: []*github.RepositoryCommit{commit("a", 1), commit("b", 1), commit("c", 1)},
			want:    "c",
		},
		{
			name:    "skips trailing merge commit",
			commits: []*github.RepositoryCommit{commit("a", 1), commit("b", 1), commit("m", 2)},
			want:    "b",
		},
		{
			name:    "root commit with no parents counts",
			commits: []*github.RepositoryCommit{commit("root", 0)},
			want:    "root",
		},
		{
			name:    "all merges yields empty",
			commits: []*github.RepositoryCommit{commit("m1", 2), commit("m2", 2)},
			want:    "",
		},
		{
			name:    "empty list yields empty",
			commits: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lastNonMergeSHA(tt.commits))
		})
	}
}
