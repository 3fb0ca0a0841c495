package main

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/wire"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch your review requests in an interactive sidebar",
	Long: `Open the interactive terminal sidebar. It polls GitHub on the configured
interval, groups requests by repository, marks urgency, and highlights
requests that appeared since the last poll.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		radar, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		p := tea.NewProgram(initialModel(radar), tea.WithAltScreen())

		poller := radar.NewPoller(func(snapshot core.Snapshot) {
			p.Send(snapshotMsg{snapshot: snapshot})
		})
		go poller.Start(ctx)
		defer poller.Stop()

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(watchCmd)
}

// openBrowserCmd hands a URL to the platform's default browser.
func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		return browserOpenedMsg{err: cmd.Start()}
	}
}
