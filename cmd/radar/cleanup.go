package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-radar/internal/wire"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete saved review records older than the retention window",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()

		radar, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		deleted, err := radar.Records.Cleanup()
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}

		if deleted == 0 {
			successColor.Println("Nothing to clean up.")
			return nil
		}
		successColor.Printf("Deleted %d review record%s older than %d days.\n",
			deleted, plural(deleted), radar.Config.RetentionDays)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(cleanupCmd)
}
