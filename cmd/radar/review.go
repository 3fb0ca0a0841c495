package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/wire"
)

var deliverFlag string

var prURLPattern = regexp.MustCompile(`^https://github\.com/([^/]+/[^/]+)/pull/(\d+)$`)

var reviewCmd = &cobra.Command{
	Use:   "review [pr-url | owner/repo number]",
	Short: "Run an AI review for a pull request waiting on you",
	Long: `Run an AI review for one of your pending review requests.

The command gathers the PR context (diff, description, existing reviews, and
the project's conventions document), renders it into a prompt, and delivers
it: by default to the configured assistant CLI, whose answer is saved as a
review record.

Examples:
  radar review https://github.com/owner/repo/pull/123
  radar review owner/repo 123
  radar review --deliver clipboard owner/repo 123`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVar(&deliverFlag, "deliver", string(core.DeliverCLI),
		"Where the prompt goes: cli, clipboard, or stdout")
	rootCmd.AddCommand(reviewCmd)
}

func parseReviewTarget(args []string) (repository string, number int, err error) {
	if len(args) == 1 {
		m := prURLPattern.FindStringSubmatch(args[0])
		if m == nil {
			return "", 0, fmt.Errorf("expected a PR URL like https://github.com/owner/repo/pull/123, got %q", args[0])
		}
		number, err = strconv.Atoi(m[2])
		if err != nil {
			return "", 0, fmt.Errorf("invalid PR number in %q", args[0])
		}
		return m[1], number, nil
	}

	number, err = strconv.Atoi(args[1])
	if err != nil {
		return "", 0, fmt.Errorf("invalid PR number %q", args[1])
	}
	return args[0], number, nil
}

// renderMarkdown pretty-prints the review for the terminal, falling back to
// the raw markdown when the renderer cannot be built.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func runReview(_ *cobra.Command, args []string) error {
	method, ok := core.ParseDeliveryMethod(deliverFlag)
	if !ok {
		return fmt.Errorf("unknown delivery method %q, expected cli, clipboard, or stdout", deliverFlag)
	}

	repository, number, err := parseReviewTarget(args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	radar, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app services: %w", err)
	}
	defer cleanup()

	req, err := radar.FindRequest(ctx, repository, number)
	if errors.Is(err, core.ErrNotConfigured) {
		errorColor.Fprintln(os.Stderr, "No GitHub token configured.")
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	titleColor.Printf("Reviewing %s#%d: %s\n", req.Repository, req.Number, req.Title)
	if method == core.DeliverCLI {
		dimColor.Printf("Gathering context and running %s, this can take a while...\n", radar.Config.AssistantCommand)
	}

	outcome, err := radar.RunReview(ctx, req, method)
	if errors.Is(err, core.ErrUserCancelled) {
		warnColor.Println("Review cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	switch outcome.Method {
	case core.DeliverClipboard:
		successColor.Println("Review prompt copied to clipboard.")
	case core.DeliverStdout:
		// The prompt already went to stdout.
	case core.DeliverCLI:
		fmt.Println(renderMarkdown(outcome.Review))
		if outcome.RecordPath != "" {
			dimColor.Printf("Saved to %s\n", outcome.RecordPath)
		}
	}
	return nil
}
