package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	githubToken string
)

var rootCmd = &cobra.Command{
	Use:   "radar",
	Short: "radar keeps an eye on the pull requests waiting for your review.",
	Long: `Review Radar aggregates the GitHub pull requests where your review is
requested, sorts them into urgency buckets, and can hand any of them to an AI
assistant for a first-pass review.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub Token")
}

// initConfig reads in config file and ENV variables if set. The token flag is
// bridged into the prefixed environment so configuration loading picks it up.
func initConfig() {
	viper.SetEnvPrefix("RADAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if githubToken != "" {
		if err := os.Setenv("RADAR_GITHUB_TOKEN", githubToken); err != nil {
			slog.Error("Error applying github token flag", "error", err)
			os.Exit(1)
		}
	}
}
