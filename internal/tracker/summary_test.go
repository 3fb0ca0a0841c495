package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/review-radar/internal/core"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, fixedNow)
	assert.Equal(t, core.StatusSummary{}, s)
}

func TestSummarize_BucketsPartitionTotal(t *testing.T) {
	in := []core.ReviewRequest{
		request("octo/api", 1, 10*24*time.Hour), // critical
		request("octo/api", 2, 8*24*time.Hour),  // critical
		request("octo/api", 3, 4*24*time.Hour),  // high
		request("octo/api", 4, 2*24*time.Hour),  // medium
		request("octo/api", 5, 26*time.Hour),    // medium
		request("octo/api", 6, time.Hour),       // new
	}

	s := Summarize(in, fixedNow)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Critical)
	assert.Equal(t, 1, s.High)
	assert.Equal(t, 2, s.Medium)
	assert.Equal(t, 1, s.New)
	assert.Equal(t, s.Total, s.Critical+s.High+s.Medium+s.New)
}

func TestSummarize_BoundaryAges(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		pick func(core.StatusSummary) int
	}{
		{"just under one day is new", 23 * time.Hour, func(s core.StatusSummary) int { return s.New }},
		{"exactly one day is medium", 24 * time.Hour, func(s core.StatusSummary) int { return s.Medium }},
		{"exactly three days is high", 3 * 24 * time.Hour, func(s core.StatusSummary) int { return s.High }},
		{"exactly seven days is critical", 7 * 24 * time.Hour, func(s core.StatusSummary) int { return s.Critical }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize([]core.ReviewRequest{request("octo/api", 1, tt.age)}, fixedNow)
			assert.Equal(t, 1, tt.pick(s))
			assert.Equal(t, 1, s.Total)
		})
	}
}
