package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/config"
	"github.com/osse101/foundry90/internal/database"
	"github.com/osse101/foundry90/internal/database/memory"
	"github.com/osse101/foundry90/internal/database/postgres"
	"github.com/osse101/foundry90/internal/eventlog"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/repository"
)

// Repositories holds the storage implementations selected by STORE_DRIVER.
// Pool answers readiness checks and is closed last on shutdown.
type Repositories struct {
	Progress repository.Progress
	Ledger   repository.Ledger
	EventLog eventlog.Repository
	Pool     database.Pool
}

// InitializeRepositories opens the configured store. The postgres driver
// connects, optionally applies migrations, and shares one pool across
// repositories. The memory driver keeps everything in process.
func InitializeRepositories(ctx context.Context, cfg *config.Config, clk clock.Clock) (*Repositories, error) {
	if !cfg.UsesPostgres() {
		store := memory.New()
		logger.Info(LogMsgStoreInitialized, "driver", cfg.StoreDriver)
		return &Repositories{
			Progress: store,
			Ledger:   store,
			EventLog: memory.NewEventLog(clk),
			Pool:     store,
		}, nil
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		logger.Info(LogMsgMigrationsApplied)
	}

	logger.Info(LogMsgStoreInitialized, "driver", cfg.StoreDriver, "db_host", cfg.DBHost, "db_name", cfg.DBName)
	return &Repositories{
		Progress: postgres.NewProgressRepository(pool),
		Ledger:   postgres.NewLedgerRepository(pool),
		EventLog: postgres.NewEventLogRepository(pool),
		Pool:     pool,
	}, nil
}
