package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/tracker"
	"github.com/sevigo/review-radar/internal/urgency"
	"github.com/sevigo/review-radar/internal/wire"
)

var listJSON bool

// Color definitions shared by the one-shot commands.
var (
	titleColor    = color.New(color.FgCyan, color.Bold)
	successColor  = color.New(color.FgGreen)
	warnColor     = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
	dimColor      = color.New(color.FgHiBlack)
	criticalColor = color.New(color.FgRed, color.Bold)
	highColor     = color.New(color.FgYellow, color.Bold)
	mediumColor   = color.New(color.FgBlue)
	newColor      = color.New(color.FgGreen)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pull requests waiting for your review",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()

		radar, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		snapshot, err := radar.Refresh(ctx)
		if errors.Is(err, core.ErrNotConfigured) {
			errorColor.Fprintln(os.Stderr, "No GitHub token configured.")
			dimColor.Fprintln(os.Stderr, "Set GITHUB_TOKEN or pass --github-token.")
			os.Exit(1)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch review requests: %w", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(snapshot.Requests)
		}

		if !snapshot.HasRequests() {
			successColor.Println("No pending review requests. Inbox zero!")
			return nil
		}

		printSummaryLine(snapshot.Summary)
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, item := range snapshotItems(snapshot) {
			switch item.Kind {
			case core.TreeItemGroup:
				fmt.Fprintf(w, "%s\t\t\t\t\n", titleColor.Sprintf("%s (%d)", item.Group.Repository, len(item.Group.Requests)))
			case core.TreeItemRequest:
				printRequestRow(w, *item.Request)
			}
		}
		return w.Flush()
	},
}

var nowFunc = time.Now

// snapshotItems flattens a snapshot for rendering: the grouped tree when
// grouping is on, otherwise one row per request.
func snapshotItems(s core.Snapshot) []core.TreeItem {
	if len(s.Groups) > 0 {
		return tracker.Tree(s.Groups)
	}
	items := make([]core.TreeItem, 0, len(s.Requests))
	for i := range s.Requests {
		items = append(items, core.TreeItem{Kind: core.TreeItemRequest, Request: &s.Requests[i]})
	}
	return items
}

func printRequestRow(w *tabwriter.Writer, req core.ReviewRequest) {
	bucket := urgency.Classify(req, nowFunc())
	age := urgency.TimeAgo(urgency.RelevantTime(req), nowFunc())

	var notes []string
	if req.Draft {
		notes = append(notes, "draft")
	}
	if req.Mergeable == core.MergeableConflict {
		notes = append(notes, "conflict")
	}
	note := ""
	if len(notes) > 0 {
		note = dimColor.Sprintf("(%s)", joinNotes(notes))
	}

	fmt.Fprintf(w, "  %s\t#%d\t%s\t%s\t%s %s\n",
		bucketColor(bucket).Sprint(bucket.Glyph()),
		req.Number,
		req.Title,
		dimColor.Sprint(req.Author),
		dimColor.Sprint(age),
		note,
	)
}

func joinNotes(notes []string) string {
	out := notes[0]
	for _, n := range notes[1:] {
		out += ", " + n
	}
	return out
}

func bucketColor(b urgency.Bucket) *color.Color {
	switch b {
	case urgency.Critical:
		return criticalColor
	case urgency.High:
		return highColor
	case urgency.Medium:
		return mediumColor
	default:
		return newColor
	}
}

func printSummaryLine(s core.StatusSummary) {
	fmt.Printf("%s pending review%s: %s %s %s %s\n",
		titleColor.Sprintf("%d", s.Total),
		plural(s.Total),
		criticalColor.Sprintf("%d critical", s.Critical),
		highColor.Sprintf("%d high", s.High),
		mediumColor.Sprintf("%d medium", s.Medium),
		newColor.Sprintf("%d new", s.New),
	)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func init() { //nolint:gochecknoinits // Cobra command registration
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output review requests as JSON")
	rootCmd.AddCommand(listCmd)
}
