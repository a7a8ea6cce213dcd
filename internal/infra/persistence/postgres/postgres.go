// Package postgres persists complaints, billing records and notifications with GORM.
package postgres

import (
	"context"
	"log/slog"

	"servicedesk/config"
	"servicedesk/internal/domain/lifecycle"
	"servicedesk/internal/infra/metrics"
	"servicedesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder `optional:"true"`
}

// New opens the primary connection pool and its read replicas.
// Writes that span tables go through TransactionManager; single
// statements run without GORM's implicit transaction.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if params.Metrics != nil {
		params.Metrics.ObserveDB(sqlDB, "primary")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if !params.Config.Database.AutoMigrate {
				return nil
			}

			return migrate(ctx, db, params.Logger)
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// migrate creates or updates the tables owned by this service. The
// technicians and clients tables belong to the user directory and are left alone.
func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	logger.Info("Database schema migrated", slog.Int("tables", len(models)))

	return nil
}
