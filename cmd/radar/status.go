package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/wire"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a one-line summary of pending review requests",
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
			os.Exit(1)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch review requests: %w", err)
		}

		if statusJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(snapshot.Summary)
		}

		if snapshot.Summary.Total == 0 {
			successColor.Println("No pending review requests.")
			return nil
		}
		printSummaryLine(snapshot.Summary)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output the summary as JSON")
	rootCmd.AddCommand(statusCmd)
}
