// Package sqlite contains the concrete implementation of the persistence layer
// using GORM on an embedded SQLite store.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"comanda/config"
	"comanda/internal/domain/lifecycle"
	"comanda/internal/errors"
	"comanda/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the embedded SQLite store. The data-file path comes from config
// and is resolved exactly once; the handle is shared process-wide through fx.
func New(params Params) (*gorm.DB, error) {
	path := params.Config.SQLite.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create SQLite data directory")
	}

	db, err := Open(path, newQueryLogger(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping SQLite")
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open opens the store at the given path, enables foreign-key enforcement and
// migrates the schema. Referential integrity (cascade deletes from orders down
// to modifiers, SET NULL on catalog references) is owned by the store itself,
// not the application.
func Open(path string, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_fk=1"), &gorm.Config{
		// Multi-step atomic operations use explicit transactions via
		// txManager.Execute; GORM's implicit per-statement transaction only
		// adds overhead on SQLite.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite store")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// A single connection serialises writers and keeps the in-memory variant
	// used in tests on one schema.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, errors.Wrap(err, "failed to enable foreign keys")
	}

	if err := db.AutoMigrate(
		&model.IngredientModel{},
		&model.ProductModel{},
		&model.ProductIngredientModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.OrderItemRemovedIngredientModel{},
		&model.OrderItemExtraIngredientModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	return db, nil
}
