package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/yijing-api/internal/config"
	"github.com/phrazzld/yijing-api/internal/domain/cast"
	"github.com/phrazzld/yijing-api/internal/events"
	"github.com/phrazzld/yijing-api/internal/platform/dataset"
	"github.com/phrazzld/yijing-api/internal/service"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	dataset        *dataset.Dataset
	eventEmitter   *events.InMemoryEventEmitter
	readingService service.ReadingService
}

// newApplication loads the dataset and wires the reading service around it.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	ds, err := dataset.NewLoader(cfg.Dataset.Path, logger).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load hexagram dataset: %w", err)
	}
	app.dataset = ds

	if _, ok := ds.Lookup(cfg.Dataset.DefaultHexagram); !ok {
		logger.Warn("default hexagram missing from dataset, unresolved casts will fail",
			"default_hexagram", cfg.Dataset.DefaultHexagram)
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.Subscribe(events.TypeReadingCast, newReadingJournal(logger))

	app.readingService, err = service.NewReadingService(
		ds,
		cast.NewGenerator(),
		app.eventEmitter,
		cfg.Dataset.DefaultHexagram,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reading service: %w", err)
	}

	logger.Info("application initialized", "hexagrams", ds.Len())
	return app, nil
}
