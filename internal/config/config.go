package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	Environment string
	ServiceName string `validate:"required"`
	Version     string

	// APIKey guards the HTTP API. Empty disables authentication.
	APIKey string

	RecordPath     string `validate:"required"`
	WriteWorkers   int    `validate:"min=1"`
	WriteQueueSize int    `validate:"min=1"`

	IngestEnabled    bool
	DedupeSize       int           `validate:"min=1"`
	DedupeTTL        time.Duration `validate:"min=1s"`
	ExtractFoldWidth bool

	TermuxEnabled      bool
	TermuxCommand      string        `validate:"required_if=TermuxEnabled true"`
	TermuxPollInterval time.Duration `validate:"min=100ms"`

	DiscordToken    string
	DiscordChannels string

	HistoryEnabled       bool
	HistoryRetentionDays int `validate:"min=1"`

	DBUser            string `validate:"required_if=HistoryEnabled true"`
	DBPassword        string
	DBHost            string `validate:"required_if=HistoryEnabled true"`
	DBPort            string `validate:"required_if=HistoryEnabled true"`
	DBName            string `validate:"required_if=HistoryEnabled true"`
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
}

// Load loads the configuration from environment variables. A .env file in
// the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, ""),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		APIKey:      getEnv(EnvAPIKey, ""),

		RecordPath:     getEnv(EnvRecordPath, DefaultRecordPath),
		WriteWorkers:   getEnvAsInt(EnvWriteWorkers, DefaultWriteWorkers),
		WriteQueueSize: getEnvAsInt(EnvWriteQueueSize, DefaultWriteQueueSize),

		IngestEnabled:    getEnvAsBool(EnvIngestEnabled, true),
		DedupeSize:       getEnvAsInt(EnvDedupeSize, DefaultDedupeSize),
		DedupeTTL:        getEnvAsDuration(EnvDedupeTTL, DefaultDedupeTTL),
		ExtractFoldWidth: getEnvAsBool(EnvExtractFoldWidth, false),

		TermuxEnabled:      getEnvAsBool(EnvTermuxEnabled, false),
		TermuxCommand:      getEnv(EnvTermuxCommand, DefaultTermuxCommand),
		TermuxPollInterval: getEnvAsDuration(EnvTermuxPollInterval, DefaultTermuxPollInterval),

		DiscordToken:    getEnv(EnvDiscordToken, ""),
		DiscordChannels: getEnv(EnvDiscordChannels, ""),

		HistoryEnabled:       getEnvAsBool(EnvHistoryEnabled, false),
		HistoryRetentionDays: getEnvAsInt(EnvHistoryRetentionDays, DefaultHistoryRetentionDays),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ListenerEnabled reports whether any notification source is configured.
func (c *Config) ListenerEnabled() bool {
	return c.IngestEnabled || c.TermuxEnabled || c.DiscordEnabled()
}

// DiscordEnabled reports whether the Discord source should start.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// DiscordChannelList splits DISCORD_CHANNELS. Empty means every visible channel.
func (c *Config) DiscordChannelList() []string {
	var out []string
	for _, ch := range strings.Split(c.DiscordChannels, ",") {
		if ch = strings.TrimSpace(ch); ch != "" {
			out = append(out, ch)
		}
	}
	return out
}

// HistoryRetention returns the retention window as a duration.
func (c *Config) HistoryRetention() time.Duration {
	return time.Duration(c.HistoryRetentionDays) * 24 * time.Hour
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

// getEnvAsInt falls back to defaultValue when the variable is unset or not an integer.
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration falls back to defaultValue when the variable is unset or unparsable.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsBool falls back to defaultValue when the variable is unset or unparsable.
func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
