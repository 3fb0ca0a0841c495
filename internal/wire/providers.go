package wire

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/sevigo/review-radar/internal/app"
	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/github"
	"github.com/sevigo/review-radar/internal/logger"
	"github.com/sevigo/review-radar/internal/notify"
	"github.com/sevigo/review-radar/internal/review"
	"github.com/sevigo/review-radar/internal/tracker"
)

var AppSet = wire.NewSet(
	app.New,
	tracker.New,
	provideConfig,
	provideLogger,
	provideGitHubClient,
	provideNotifier,
	provideGatherer,
	provideDeliverer,
	provideRecordStore,
)

// provideConfig loads the environment configuration and merges the optional
// workspace overlay from the current directory. Loading happens before the
// configured logger exists, so warnings go through a plain stderr logger.
func provideConfig() (*config.Config, error) {
	bootLog := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig(bootLog)
	if err != nil {
		return nil, err
	}
	applyWorkspaceOverlay(cfg, bootLog)
	return cfg, nil
}

func applyWorkspaceOverlay(cfg *config.Config, log *slog.Logger) {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	ws, err := config.LoadWorkspaceConfig(wd)
	if err != nil {
		if !errors.Is(err, config.ErrWorkspaceConfigNotFound) {
			log.Warn("could not read workspace config", "error", err)
		}
		return
	}
	ws.Apply(cfg, log)
	log.Debug("workspace config applied", "dir", wd)
}

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging, nil)
}

func provideGitHubClient(ctx context.Context, cfg *config.Config, log *slog.Logger) github.Client {
	return github.NewPATClient(ctx, cfg.Token, log)
}

func provideNotifier(cfg *config.Config) notify.Notifier {
	return notify.NewConsole(os.Stderr, cfg.PlaySound)
}

func provideGatherer(client github.Client, log *slog.Logger) *review.Gatherer {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return review.NewGatherer(client, wd, log)
}

func provideDeliverer(cfg *config.Config, log *slog.Logger) *review.Deliverer {
	return review.NewDeliverer(cfg.AssistantCommand, os.Stdout, log)
}

func provideRecordStore(cfg *config.Config, log *slog.Logger) *review.Store {
	return review.NewStore(cfg.ReviewsDir, cfg.RetentionDays, cfg.AutoCleanup, log)
}
