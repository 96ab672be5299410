// Package sqlite contains the concrete implementation of the persistence
// layer using GORM over a local SQLite file.
package sqlite

import (
	"context"
	"log/slog"

	"roost/config"
	"roost/internal/domain/lifecycle"
	"roost/internal/errors"
	"roost/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
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

// New opens the local SQLite store and binds its lifetime to the fx app.
// WAL mode keeps concurrent readers wait-free while writes serialize on the
// single writer SQLite allows.
func New(params Params) (*gorm.DB, error) {
	dsn := params.Config.SQLite.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Writes that need multi-statement atomicity open transactions
		// explicitly; skip GORM's implicit per-statement one.
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite store")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping sqlite store")
			}

			if err := Migrate(db); err != nil {
				return err
			}

			params.Logger.Info("sqlite store ready",
				slog.String("path", params.Config.SQLite.Path))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the cache tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.LocationModel{}, &model.RouteModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate cache tables")
	}

	return nil
}
