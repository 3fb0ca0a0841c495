package tracker

import (
	"sort"
	"strings"

	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/urgency"
)

// GroupByRepository partitions requests into per-repository nodes. Inside a
// node requests are ordered by descending relevant time with the stable sort
// keeping the API's own recency order for ties; nodes are ordered by
// repository identifier, case-insensitively.
//
// Flattening the result yields a permutation of the input: nothing is dropped
// or duplicated.
func GroupByRepository(requests []core.ReviewRequest) []core.RepositoryNode {
	byRepo := make(map[string][]core.ReviewRequest)
	var order []string
	for _, r := range requests {
		if _, ok := byRepo[r.Repository]; !ok {
			order = append(order, r.Repository)
		}
		byRepo[r.Repository] = append(byRepo[r.Repository], r)
	}

	nodes := make([]core.RepositoryNode, 0, len(order))
	for _, repo := range order {
		members := byRepo[repo]
		sort.SliceStable(members, func(i, j int) bool {
			return urgency.RelevantTime(members[i]).After(urgency.RelevantTime(members[j]))
		})
		nodes = append(nodes, core.RepositoryNode{Repository: repo, Requests: members})
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Repository, nodes[j].Repository
		if fa, fb := strings.ToLower(a), strings.ToLower(b); fa != fb {
			return fa < fb
		}
		return a < b
	})
	return nodes
}

// Tree flattens a grouped view into the tagged union the presentation layer
// walks: one group item followed by its request items, per repository.
func Tree(nodes []core.RepositoryNode) []core.TreeItem {
	var items []core.TreeItem
	for i := range nodes {
		items = append(items, core.TreeItem{Kind: core.TreeItemGroup, Group: &nodes[i]})
		for j := range nodes[i].Requests {
			items = append(items, core.TreeItem{Kind: core.TreeItemRequest, Request: &nodes[i].Requests[j]})
		}
	}
	return items
}
