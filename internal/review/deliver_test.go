package review

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-radar/internal/core"
)

// fakeAssistant drops a runnable no-op script on PATH so LookPath succeeds;
// the actual execution path is stubbed via runCommand.
func fakeAssistant(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "assistant")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)
	return "assistant"
}

func TestDelivererStdout(t *testing.T) {
	var out bytes.Buffer
	d := NewDeliverer("assistant", &out, slog.New(slog.DiscardHandler))

	result, err := d.Deliver(context.Background(), core.DeliverStdout, "the prompt")
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, "the prompt\n", out.String())
}

func TestDelivererCLI(t *testing.T) {
	t.Run("returns trimmed assistant output", func(t *testing.T) {
		name := fakeAssistant(t)
		d := NewDeliverer(name, os.Stdout, slog.New(slog.DiscardHandler))

		var gotPrompt string
		d.runCommand = func(_ context.Context, _ string, prompt string) (string, error) {
			gotPrompt = prompt
			return "  review text \n", nil
		}

		result, err := d.Deliver(context.Background(), core.DeliverCLI, "the prompt")
		require.NoError(t, err)
		assert.Equal(t, "review text", result)
		assert.Equal(t, "the prompt", gotPrompt)
	})

	t.Run("missing command", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		d := NewDeliverer("no-such-assistant", os.Stdout, slog.New(slog.DiscardHandler))

		_, err := d.Deliver(context.Background(), core.DeliverCLI, "p")
		require.Error(t, err)
		assert.ErrorContains(t, err, "not found in PATH")
	})

	t.Run("empty output is an error", func(t *testing.T) {
		name := fakeAssistant(t)
		d := NewDeliverer(name, os.Stdout, slog.New(slog.DiscardHandler))
		d.runCommand = func(context.Context, string, string) (string, error) {
			return "   \n", nil
		}

		_, err := d.Deliver(context.Background(), core.DeliverCLI, "p")
		assert.ErrorContains(t, err, "produced no output")
	})

	t.Run("cancellation maps to user cancelled", func(t *testing.T) {
		name := fakeAssistant(t)
		d := NewDeliverer(name, os.Stdout, slog.New(slog.DiscardHandler))
		d.runCommand = func(ctx context.Context, _ string, _ string) (string, error) {
			return "", context.Canceled
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := d.Deliver(ctx, core.DeliverCLI, "p")
		assert.ErrorIs(t, err, core.ErrUserCancelled)
	})
}

func TestDelivererUnknownMethod(t *testing.T) {
	d := NewDeliverer("assistant", os.Stdout, slog.New(slog.DiscardHandler))

	_, err := d.Deliver(context.Background(), core.DeliveryMethod("pigeon"), "p")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown delivery method")
}

func TestDelivererCLIFailureIncludesCause(t *testing.T) {
	name := fakeAssistant(t)
	d := NewDeliverer(name, os.Stdout, slog.New(slog.DiscardHandler))
	d.runCommand = func(context.Context, string, string) (string, error) {
		return "", errors.New("exit status 1: model overloaded")
	}

	_, err := d.Deliver(context.Background(), core.DeliverCLI, "p")
	require.Error(t, err)
	assert.ErrorContains(t, err, "assistant command failed")
	assert.ErrorContains(t, err, "model overloaded")
}
