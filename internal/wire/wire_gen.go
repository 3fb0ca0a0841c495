// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/review-radar/internal/app"
	"github.com/sevigo/review-radar/internal/tracker"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := provideConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := provideLogger(cfg)

	client := provideGitHubClient(ctx, cfg, log)
	notifier := provideNotifier(cfg)
	tr := tracker.New(cfg, client, notifier, log)

	gatherer := provideGatherer(client, log)
	deliverer := provideDeliverer(cfg, log)
	records := provideRecordStore(cfg, log)

	application := app.New(cfg, log, client, notifier, tr, gatherer, deliverer, records)

	cleanup := func() {}
	return application, cleanup, nil
}
