// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Fingerprint store backends.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	Fingerprints  FingerprintsConfig  `yaml:"fingerprints"`
	Source        SourceConfig        `yaml:"source"`
	Engine        EngineConfig        `yaml:"engine"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// RedisConfig defines the Redis connection used by the redis fingerprint
// backend.
type RedisConfig struct {
	URL       string        `yaml:"url"`
	KeyPrefix string        `yaml:"key_prefix"`
	TTL       time.Duration `yaml:"ttl"` // 0 keeps fingerprints forever
}

// FingerprintsConfig selects where seen-record fingerprints live.
type FingerprintsConfig struct {
	Backend string `yaml:"backend"` // postgres, redis
}

// SourceConfig defines the listing collector settings.
type SourceConfig struct {
	BaseURL   string          `yaml:"base_url"`
	Token     string          `yaml:"token"`
	OAuth     OAuthConfig     `yaml:"oauth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	MaxPages  int             `yaml:"max_pages"`
	Timeout   time.Duration   `yaml:"timeout"`
	Timezone  string          `yaml:"timezone"` // daily quota resets at midnight here
}

// Location returns the time zone the daily quota resets in.
func (s *SourceConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// OAuthConfig defines client-credentials settings. When TokenURL is set it
// takes precedence over a static token.
type OAuthConfig struct {
	TokenURL     string   `yaml:"token_url"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	Scopes       []string `yaml:"scopes"`
}

// RateLimitConfig defines collector rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// EngineConfig defines evaluation settings.
type EngineConfig struct {
	Workers              int     `yaml:"workers"`
	SimilarityThreshold  float64 `yaml:"similarity_threshold"`
	NotificationsEnabled *bool   `yaml:"notifications_enabled"` // default: true
	AutoBook             bool    `yaml:"auto_book"`             // allow booking through the collector
	GPSpecialties        []int64 `yaml:"gp_specialties"`
}

// Notify reports whether user notifications are enabled.
func (e *EngineConfig) Notify() bool {
	return e.NotificationsEnabled == nil || *e.NotificationsEnabled
}

// ScheduleConfig defines the poll cycle cadence.
type ScheduleConfig struct {
	CycleInterval time.Duration `yaml:"cycle_interval"`
	CycleTimeout  time.Duration `yaml:"cycle_timeout"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig defines Telegram bot settings.
type TelegramConfig struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
	ChatID  string `yaml:"chat_id"`
	APIURL  string `yaml:"api_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TelemetryConfig defines OTLP export of traces and metrics.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"` // host:port of the OTLP gRPC collector
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyRedisDefaults(&cfg.Redis)
	if cfg.Fingerprints.Backend == "" {
		cfg.Fingerprints.Backend = BackendPostgres
	}
	applySourceDefaults(&cfg.Source)
	applyEngineDefaults(&cfg.Engine)
	applyScheduleDefaults(&cfg.Schedule)
	if cfg.Notifications.Telegram.APIURL == "" {
		cfg.Notifications.Telegram.APIURL = "https://api.telegram.org"
	}
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyRedisDefaults(r *RedisConfig) {
	if r.KeyPrefix == "" {
		r.KeyPrefix = "medwatch:fingerprints:"
	}
}

func applySourceDefaults(s *SourceConfig) {
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 2.0
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 4
	}
	if s.MaxPages == 0 {
		s.MaxPages = 10
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.Timezone == "" {
		s.Timezone = "Europe/Warsaw"
	}
}

func applyEngineDefaults(e *EngineConfig) {
	if e.Workers == 0 {
		e.Workers = 4
	}
	if e.SimilarityThreshold == 0 {
		e.SimilarityThreshold = 0.9
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CycleInterval == 0 {
		s.CycleInterval = 5 * time.Minute
	}
	if s.CycleTimeout == 0 {
		s.CycleTimeout = 4 * time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "medwatch"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = time.Minute
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	switch cfg.Fingerprints.Backend {
	case BackendPostgres:
	case BackendRedis:
		if cfg.Redis.URL == "" {
			errs = append(errs, errors.New("redis.url is required when fingerprints.backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"fingerprints.backend must be one of: postgres, redis (got %q)",
			cfg.Fingerprints.Backend,
		))
	}

	errs = append(errs, validateSource(&cfg.Source)...)

	if t := cfg.Engine.SimilarityThreshold; t <= 0 || t > 1 {
		errs = append(errs, fmt.Errorf("engine.similarity_threshold must be in (0, 1] (got %v)", t))
	}
	if cfg.Engine.Workers < 0 {
		errs = append(errs, fmt.Errorf("engine.workers must not be negative (got %d)", cfg.Engine.Workers))
	}

	if cfg.Schedule.CycleInterval < time.Second {
		errs = append(errs, fmt.Errorf("schedule.cycle_interval must be at least 1s (got %s)", cfg.Schedule.CycleInterval))
	}

	if tg := cfg.Notifications.Telegram; tg.Enabled && (tg.Token == "" || tg.ChatID == "") {
		errs = append(errs, errors.New("notifications.telegram.token and chat_id are required when telegram is enabled"))
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
	}
	if !slices.Contains([]string{"text", "json"}, cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	if r := cfg.Telemetry.SampleRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be in [0, 1] (got %v)", r))
	}

	return errors.Join(errs...)
}

func validateSource(s *SourceConfig) []error {
	var errs []error

	if s.BaseURL == "" {
		errs = append(errs, errors.New("source.base_url is required"))
	}
	if s.OAuth.TokenURL != "" && (s.OAuth.ClientID == "" || s.OAuth.ClientSecret == "") {
		errs = append(errs, errors.New("source.oauth.client_id and client_secret are required with token_url"))
	}
	if s.RateLimit.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("source.rate_limit.daily_limit must not be negative (got %d)", s.RateLimit.DailyLimit))
	}
	if _, err := s.Location(); err != nil {
		errs = append(errs, fmt.Errorf("source.timezone: %w", err))
	}

	return errs
}
