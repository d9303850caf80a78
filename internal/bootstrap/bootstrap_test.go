package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/config"
	"github.com/osse101/foundry90/internal/database/memory"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/eventlog"
	"github.com/osse101/foundry90/internal/progress"
	"github.com/osse101/foundry90/internal/worker"
)

func memoryConfig(t *testing.T) *config.Config {
	return &config.Config{
		StoreDriver:         config.StoreDriverMemory,
		LogDir:              t.TempDir(),
		LogLevel:            "debug",
		LogFormat:           "json",
		LogMaxSizeMB:        1,
		Environment:         config.EnvDev,
		EventDeadLetterPath: filepath.Join(t.TempDir(), "dead", "events.jsonl"),
	}
}

func TestInitializeRepositories_Memory(t *testing.T) {
	clk := clock.NewFake(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	repos, err := InitializeRepositories(context.Background(), memoryConfig(t), clk)
	require.NoError(t, err)

	assert.NotNil(t, repos.Progress)
	assert.NotNil(t, repos.Ledger)
	assert.NotNil(t, repos.EventLog)
	assert.NoError(t, repos.Pool.Ping(context.Background()))
}

func TestSetupLogger_CreatesLogFile(t *testing.T) {
	cfg := memoryConfig(t)
	closer, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.FileExists(t, filepath.Join(cfg.LogDir, LogFileName))
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	cfg := memoryConfig(t)
	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)

	assert.DirExists(t, filepath.Dir(cfg.EventDeadLetterPath))
	require.NoError(t, publisher.Shutdown(context.Background()))
}

// Completing a day should reach the audit log and arm an unlock reminder
func TestRegisterEventHandlers_Wiring(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)
	clk := clock.NewFake(time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))

	repos, err := InitializeRepositories(ctx, cfg, clk)
	require.NoError(t, err)

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	defer func() { _ = publisher.Shutdown(ctx) }()
	progressService := progress.NewService(repos.Progress, nil, publisher, clk, progress.DefaultConfig())
	eventLogService := eventlog.NewService(repos.EventLog)

	reminders, err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:        bus,
		AdvanceChecker:  progressService,
		EventLogService: eventLogService,
		Config:          cfg,
		Clock:           clk,
	})
	require.NoError(t, err)
	defer func() { _ = reminders.Shutdown(ctx) }()

	userID := "3d0e5c2b-1f4a-4e8d-9b7c-6a5f4e3d2c1b"
	_, _, err = progressService.StartJourney(ctx, userID)
	require.NoError(t, err)
	_, err = progressService.CompleteDay(ctx, userID, 1, domain.DraftInput{})
	require.NoError(t, err)

	eventType := string(event.DayCompleted)
	events, err := eventLogService.GetEvents(ctx, eventlog.EventFilter{UserID: &userID, EventType: &eventType})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, 1, reminders.Pending())
}

func TestGracefulShutdown_SkipsNilComponents(t *testing.T) {
	store := memory.New()
	pool := worker.NewPool(1, 1)
	pool.Start()

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{WorkerPool: pool, Pool: store})
	})
}
