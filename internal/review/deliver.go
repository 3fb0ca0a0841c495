package review

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/sevigo/review-radar/internal/core"
)

// Deliverer hands a rendered prompt to the configured AI assistant and
// returns its answer, or routes the prompt to the clipboard or stdout when
// no assistant run is wanted.
type Deliverer struct {
	assistantCommand string
	stdout           io.Writer
	logger           *slog.Logger

	// runCommand is swapped in tests.
	runCommand func(ctx context.Context, name string, prompt string) (string, error)
}

// NewDeliverer creates a Deliverer that executes assistantCommand for the
// CLI delivery method and writes stdout deliveries to out.
func NewDeliverer(assistantCommand string, out io.Writer, logger *slog.Logger) *Deliverer {
	d := &Deliverer{
		assistantCommand: assistantCommand,
		stdout:           out,
		logger:           logger,
	}
	d.runCommand = d.execAssistant
	return d
}

// Deliver routes the prompt according to method. For DeliverCLI the returned
// string is the assistant's review text; for the other methods it is empty.
func (d *Deliverer) Deliver(ctx context.Context, method core.DeliveryMethod, prompt string) (string, error) {
	switch method {
	case core.DeliverCLI:
		return d.runAssistant(ctx, prompt)
	case core.DeliverClipboard:
		if err := clipboard.WriteAll(prompt); err != nil {
			return "", fmt.Errorf("failed to copy prompt to clipboard: %w", err)
		}
		d.logger.Info("review prompt copied to clipboard", "bytes", len(prompt))
		return "", nil
	case core.DeliverStdout:
		if _, err := fmt.Fprintln(d.stdout, prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
		return "", nil
	default:
		return "", fmt.Errorf("unknown delivery method %q", method)
	}
}

func (d *Deliverer) runAssistant(ctx context.Context, prompt string) (string, error) {
	if _, err := exec.LookPath(d.assistantCommand); err != nil {
		return "", fmt.Errorf("assistant command %q not found in PATH: %w", d.assistantCommand, err)
	}

	d.logger.Info("running AI assistant", "command", d.assistantCommand)
	out, err := d.runCommand(ctx, d.assistantCommand, prompt)
	if err != nil {
		if ctx.Err() == context.Canceled {
			return "", core.ErrUserCancelled
		}
		return "", fmt.Errorf("assistant command failed: %w", err)
	}

	result := strings.TrimSpace(out)
	if result == "" {
		return "", fmt.Errorf("assistant command %q produced no output", d.assistantCommand)
	}
	return result, nil
}

func (d *Deliverer) execAssistant(ctx context.Context, name string, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, name)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return "", err
	}
	return stdout.String(), nil
}
