package main

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/config"
	"github.com/shashiranjanraj/catalogpatch/database/patches"
	"github.com/shashiranjanraj/catalogpatch/pkg/appstate"
	"github.com/shashiranjanraj/catalogpatch/pkg/cache"
	"github.com/shashiranjanraj/catalogpatch/pkg/database"
	"github.com/shashiranjanraj/catalogpatch/pkg/event"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
	"github.com/shashiranjanraj/catalogpatch/pkg/metrics"
	"github.com/shashiranjanraj/catalogpatch/pkg/patch"
)

// app holds everything a command needs once config is loaded.
type app struct {
	db     *gorm.DB
	events *event.Dispatcher
	cache  *cache.Cache
	runner *patch.Runner
}

// boot opens the database, connects the optional cache and registers the
// shipped patches.
func boot(ctx context.Context) (*app, error) {
	db, err := database.Open(config.DatabaseDriver(), config.DatabaseDSN())
	if err != nil {
		return nil, err
	}

	events := event.New()
	metrics.Subscribe(events)

	var c *cache.Cache
	if addr := config.RedisAddr(); addr != "" {
		c, err = cache.Connect(ctx, addr, config.RedisPassword())
		if err != nil {
			// Cache invalidation is best effort; patches still apply.
			logger.Warn("cache unavailable, skipping invalidation", "addr", addr, "error", err)
			c = nil
		} else {
			c.Subscribe(events)
		}
	}

	reg := patch.NewRegistry()
	patches.Register(reg, patches.Deps{DB: db, State: appstate.New(), Events: events})

	return &app{
		db:     db,
		events: events,
		cache:  c,
		runner: patch.NewRunner(db, reg, events),
	}, nil
}

func (a *app) Close() {
	if err := a.cache.Close(); err != nil {
		logger.Warn("cache close", "error", err)
	}
	if err := database.Close(a.db); err != nil {
		logger.Warn("database close", "error", err)
	}
}
