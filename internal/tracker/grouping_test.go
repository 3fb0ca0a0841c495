package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-radar/internal/core"
)

func TestGroupByRepository_Empty(t *testing.T) {
	assert.Empty(t, GroupByRepository(nil))
	assert.Empty(t, GroupByRepository([]core.ReviewRequest{}))
}

func TestGroupByRepository_SingleRepository(t *testing.T) {
	in := []core.ReviewRequest{
		request("octo/api", 1, 2*time.Hour),
		request("octo/api", 2, time.Hour),
	}
	nodes := GroupByRepository(in)

	require.Len(t, nodes, 1)
	assert.Equal(t, "octo/api", nodes[0].Repository)
	require.Len(t, nodes[0].Requests, 2)
	// Most recently active first.
	assert.Equal(t, 2, nodes[0].Requests[0].Number)
	assert.Equal(t, 1, nodes[0].Requests[1].Number)
}

func TestGroupByRepository_NodesSortedByIdentifier(t *testing.T) {
	in := []core.ReviewRequest{
		request("zeta/one", 1, time.Hour),
		request("alpha/two", 2, time.Hour),
		request("Beta/three", 3, time.Hour),
	}
	nodes := GroupByRepository(in)

	require.Len(t, nodes, 3)
	assert.Equal(t, "alpha/two", nodes[0].Repository)
	assert.Equal(t, "Beta/three", nodes[1].Repository)
	assert.Equal(t, "zeta/one", nodes[2].Repository)
}

func TestGroupByRepository_RoundTrip(t *testing.T) {
	in := []core.ReviewRequest{
		request("octo/web", 10, 30*time.Hour),
		request("octo/api", 1, time.Hour),
		request("octo/web", 11, time.Hour),
		request("acme/tools", 7, 9*24*time.Hour),
		request("octo/api", 2, 5*24*time.Hour),
	}

	nodes := GroupByRepository(in)

	var flat []core.ReviewRequest
	for _, n := range nodes {
		for _, r := range n.Requests {
			assert.Equal(t, n.Repository, r.Repository,
				"every member must belong to its node's repository")
			flat = append(flat, r)
		}
	}
	require.Len(t, flat, len(in), "no request may be dropped or duplicated")

	count := func(rs []core.ReviewRequest) map[identity]int {
		m := make(map[identity]int)
		for _, r := range rs {
			m[identity{r.Repository, r.Number}]++
		}
		return m
	}
	assert.Equal(t, count(in), count(flat), "flattened output must be a permutation of the input")
}

func TestGroupByRepository_StableWithinEqualTimes(t *testing.T) {
	// Three requests sharing a timestamp keep their input order.
	in := []core.ReviewRequest{
		request("octo/api", 1, time.Hour),
		request("octo/api", 2, time.Hour),
		request("octo/api", 3, time.Hour),
	}
	nodes := GroupByRepository(in)

	require.Len(t, nodes, 1)
	numbers := []int{nodes[0].Requests[0].Number, nodes[0].Requests[1].Number, nodes[0].Requests[2].Number}
	assert.Equal(t, []int{1, 2, 3}, numbers)
}

func TestTree(t *testing.T) {
	nodes := GroupByRepository([]core.ReviewRequest{
		request("octo/api", 1, time.Hour),
		request("octo/web", 2, time.Hour),
	})
	items := Tree(nodes)

	require.Len(t, items, 4)
	assert.Equal(t, core.TreeItemGroup, items[0].Kind)
	require.NotNil(t, items[0].Group)
	assert.Equal(t, core.TreeItemRequest, items[1].Kind)
	require.NotNil(t, items[1].Request)
	assert.Equal(t, "octo/api", items[1].Request.Repository)
	assert.Equal(t, core.TreeItemGroup, items[2].Kind)
	assert.Equal(t, core.TreeItemRequest, items[3].Kind)
}
