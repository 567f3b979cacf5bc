package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Site      SiteConfig      `yaml:"site"`
	LinkedIn  LinkedInConfig  `yaml:"linkedin"`
	Indexer   IndexerConfig   `yaml:"indexer"`
	Drafter   DrafterConfig   `yaml:"drafter"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds identity-provider and secret settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"nashir"`
	AccessTTL time.Duration `yaml:"access_ttl" env:"AUTH_ACCESS_TTL" env-default:"1h"`

	// EncryptionSecret seeds the HKDF derivation of the AES-GCM key that
	// protects stored social credentials. Rotating it invalidates them.
	EncryptionSecret string `yaml:"encryption_secret" env:"AUTH_ENCRYPTION_SECRET" env-required:"true"`
}

// SiteConfig describes the public website articles are published to.
type SiteConfig struct {
	BaseURL      string `yaml:"base_url"       env:"SITE_BASE_URL"      env-default:"https://example.com"`
	BlogPath     string `yaml:"blog_path"      env:"SITE_BLOG_PATH"     env-default:"/blog"`
	ArabicPrefix string `yaml:"arabic_prefix"  env:"SITE_ARABIC_PREFIX" env-default:"/ar"`
}

// LinkedInConfig holds LinkedIn OAuth application settings.
type LinkedInConfig struct {
	ClientID     string        `yaml:"client_id"     env:"LINKEDIN_CLIENT_ID"`
	ClientSecret string        `yaml:"client_secret" env:"LINKEDIN_CLIENT_SECRET"`
	RedirectURI  string        `yaml:"redirect_uri"  env:"LINKEDIN_REDIRECT_URI"`
	Timeout      time.Duration `yaml:"timeout"       env:"LINKEDIN_TIMEOUT" env-default:"15s"`

	// PublisherUserID names the account whose stored credential scheduled
	// posts are published with. Interactive posts use the caller's own.
	PublisherUserID string `yaml:"publisher_user_id" env:"LINKEDIN_PUBLISHER_USER_ID"`
}

// Enabled reports whether LinkedIn publishing is configured.
func (c LinkedInConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURI != ""
}

// IndexerConfig holds search-indexing notification settings.
type IndexerConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"INDEXER_ENABLED"      env-default:"true"`
	IndexNowKey string        `yaml:"indexnow_key" env:"INDEXER_INDEXNOW_KEY"`
	Timeout     time.Duration `yaml:"timeout"      env:"INDEXER_TIMEOUT"      env-default:"5s"`
}

// DrafterConfig holds settings for the AI drafting gateway.
type DrafterConfig struct {
	BaseURL string        `yaml:"base_url" env:"DRAFTER_BASE_URL"`
	APIKey  string        `yaml:"api_key"  env:"DRAFTER_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"DRAFTER_TIMEOUT" env-default:"120s"`
}

// SchedulerConfig holds sweep settings. The sweep itself is triggered by
// an external cron invoker; these bound a single invocation.
type SchedulerConfig struct {
	// SweepSecret authenticates the cron invoker via the X-Sweep-Secret header.
	SweepSecret string        `yaml:"sweep_secret"  env:"SCHEDULER_SWEEP_SECRET" env-required:"true"`
	SweepBudget time.Duration `yaml:"sweep_budget"  env:"SCHEDULER_SWEEP_BUDGET" env-default:"50s"`
	BatchSize   int           `yaml:"batch_size"    env:"SCHEDULER_BATCH_SIZE"   env-default:"20"`
	// ClaimTTL is how long a job may sit in executing before a sweep
	// reclaims it as stuck and requeues it.
	ClaimTTL time.Duration `yaml:"claim_ttl" env:"SCHEDULER_CLAIM_TTL" env-default:"10m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
