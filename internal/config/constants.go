package config

import "time"

// Environment variable names
const (
	EnvPort                 = "PORT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvLogDir               = "LOG_DIR"
	EnvEnvironment          = "ENVIRONMENT"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvAPIKey               = "API_KEY"
	EnvRecordPath           = "RECORD_PATH"
	EnvWriteWorkers         = "WRITE_WORKERS"
	EnvWriteQueueSize       = "WRITE_QUEUE_SIZE"
	EnvIngestEnabled        = "INGEST_ENABLED"
	EnvDedupeSize           = "DEDUPE_SIZE"
	EnvDedupeTTL            = "DEDUPE_TTL"
	EnvExtractFoldWidth     = "EXTRACT_FOLD_WIDTH"
	EnvTermuxEnabled        = "TERMUX_ENABLED"
	EnvTermuxCommand        = "TERMUX_COMMAND"
	EnvTermuxPollInterval   = "TERMUX_POLL_INTERVAL"
	EnvDiscordToken         = "DISCORD_TOKEN"
	EnvDiscordChannels      = "DISCORD_CHANNELS"
	EnvHistoryEnabled       = "HISTORY_ENABLED"
	EnvHistoryRetentionDays = "HISTORY_RETENTION_DAYS"
	EnvDBUser               = "DB_USER"
	EnvDBPassword           = "DB_PASSWORD"
	EnvDBHost               = "DB_HOST"
	EnvDBPort               = "DB_PORT"
	EnvDBName               = "DB_NAME"
	EnvDBMaxConns           = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime    = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime    = "DB_MAX_CONN_LIFETIME"
)

// Defaults
const (
	DefaultPort                 = "8080"
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "sms-auto"
	DefaultVersion              = "dev"
	DefaultRecordPath           = "/storage/emulated/0/verification_code.json"
	DefaultWriteWorkers         = 2
	DefaultWriteQueueSize       = 64
	DefaultDedupeSize           = 512
	DefaultDedupeTTL            = 10 * time.Minute
	DefaultTermuxCommand        = "termux-notification-list"
	DefaultTermuxPollInterval   = 3 * time.Second
	DefaultHistoryRetentionDays = 30
	DefaultDBUser               = "postgres"
	DefaultDBPassword           = "postgres"
	DefaultDBHost               = "localhost"
	DefaultDBPort               = "5432"
	DefaultDBName               = "smsauto"
	DefaultDBMaxConns           = 20
	DefaultDBMaxConnIdleTime    = 5 * time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
)

// Values that trip a startup warning
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
