package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/foundry90/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port           int
	Environment    string
	LogLevel       string
	LogFormat      string
	LogDir         string
	LogMaxSizeMB   int
	LogMaxBackups  int
	LogMaxAgeDays  int
	ServiceName    string
	Version        string
	APIKey         string // API key for authentication
	TrustedProxies []string

	// Storage
	StoreDriver       string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	AutoMigrate       bool

	// Day advancement
	UnlockDefaultDelay time.Duration
	UnlockMinimumRest  time.Duration
	ProgramLengthDays  int
	XPPerCompletedDay  int
	ProgressCacheSize  int
	ProgressCacheTTL   time.Duration

	// Transport
	RateLimitPerMinute int

	// Events
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
	EventRetentionDays  int

	// Achievements and notifications
	AchievementsConfigPath string
	DiscordWebhookID       string
	DiscordWebhookToken    string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", EnvDev),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogDir:         getEnv("LOG_DIR", "logs"),
		LogMaxSizeMB:   getEnvAsInt("LOG_MAX_SIZE_MB", DefaultLogMaxSizeMB),
		LogMaxBackups:  getEnvAsInt("LOG_MAX_BACKUPS", DefaultLogMaxBackups),
		LogMaxAgeDays:  getEnvAsInt("LOG_MAX_AGE_DAYS", DefaultLogMaxAgeDays),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "foundry90"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		AutoMigrate:       getEnvAsBool("AUTO_MIGRATE", true),

		UnlockDefaultDelay: getEnvAsDuration("UNLOCK_DEFAULT_DELAY", domain.DefaultUnlockDelay),
		UnlockMinimumRest:  getEnvAsDuration("UNLOCK_MINIMUM_REST", domain.MinimumRestPeriod),
		ProgramLengthDays:  getEnvAsInt("PROGRAM_LENGTH_DAYS", domain.DefaultProgramLength),
		XPPerCompletedDay:  getEnvAsInt("XP_PER_COMPLETED_DAY", domain.DefaultXPPerCompletedDay),
		ProgressCacheSize:  getEnvAsInt("PROGRESS_CACHE_SIZE", DefaultProgressCacheSize),
		ProgressCacheTTL:   getEnvAsDuration("PROGRESS_CACHE_TTL", DefaultProgressCacheTTL),

		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", DefaultRateLimitPerMinute),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
		EventRetentionDays:  getEnvAsInt("EVENT_RETENTION_DAYS", DefaultEventRetentionDays),

		AchievementsConfigPath: getEnv("ACHIEVEMENTS_CONFIG_PATH", ConfigPathAchievements),
		DiscordWebhookID:       getEnv("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken:    getEnv("DISCORD_WEBHOOK_TOKEN", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.StoreDriver != StoreDriverPostgres && c.StoreDriver != StoreDriverMemory {
		return fmt.Errorf("invalid STORE_DRIVER %q: expected %s or %s", c.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}
	if c.UnlockDefaultDelay <= 0 || c.UnlockMinimumRest <= 0 {
		return fmt.Errorf("UNLOCK_DEFAULT_DELAY and UNLOCK_MINIMUM_REST must be positive")
	}
	if c.ProgramLengthDays < 1 {
		return fmt.Errorf("PROGRAM_LENGTH_DAYS must be at least 1, got %d", c.ProgramLengthDays)
	}
	if c.XPPerCompletedDay < 0 {
		return fmt.Errorf("XP_PER_COMPLETED_DAY must not be negative, got %d", c.XPPerCompletedDay)
	}
	return nil
}

// UsesPostgres reports whether the postgres store driver is selected
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == StoreDriverPostgres
}

// DiscordEnabled reports whether webhook notifications are configured
func (c *Config) DiscordEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default when the value is missing or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration falls back to the default when the value is not a Go duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
