package config

import "time"

const (
	// Configuration file paths
	ConfigPathAchievements       = "configs/achievements.json"
	ConfigPathAchievementsSchema = "configs/schemas/achievements.schema.json"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Environments
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Defaults
const (
	DefaultServiceName = "foundry90"

	DefaultLogMaxSizeMB  = 50
	DefaultLogMaxBackups = 5
	DefaultLogMaxAgeDays = 28

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultProgressCacheSize = 10000
	DefaultProgressCacheTTL  = 5 * time.Minute

	DefaultRateLimitPerMinute = 120

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
	DefaultEventRetentionDays  = 30
)
