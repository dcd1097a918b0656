package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  host: localhost
  name: testdb
  user: testuser
source:
  base_url: http://collector:8090
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "http://collector:8090", cfg.Source.BaseURL)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, BackendPostgres, cfg.Fingerprints.Backend)
				assert.Equal(t, "medwatch:fingerprints:", cfg.Redis.KeyPrefix)
				assert.InDelta(t, 2.0, cfg.Source.RateLimit.PerSecond, 0)
				assert.Equal(t, 4, cfg.Source.RateLimit.Burst)
				assert.Equal(t, 10, cfg.Source.MaxPages)
				assert.Equal(t, "Europe/Warsaw", cfg.Source.Timezone)
				assert.Equal(t, 4, cfg.Engine.Workers)
				assert.InDelta(t, 0.9, cfg.Engine.SimilarityThreshold, 0)
				assert.True(t, cfg.Engine.Notify())
				assert.False(t, cfg.Engine.AutoBook)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.CycleInterval)
				assert.Equal(t, 4*time.Minute, cfg.Schedule.CycleTimeout)
				assert.Equal(t, "https://api.telegram.org", cfg.Notifications.Telegram.APIURL)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.False(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "medwatch", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0)
				assert.Equal(t, time.Minute, cfg.Telemetry.MetricInterval)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalYAML + `
notifications:
  telegram:
    enabled: true
    token: "${TEST_TELEGRAM_TOKEN}"
    chat_id: "42"
`,
			envVars: map[string]string{
				"TEST_TELEGRAM_TOKEN": "123:abc",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "123:abc", cfg.Notifications.Telegram.Token)
			},
		},
		{
			name: "notifications explicitly disabled",
			yaml: minimalYAML + `
engine:
  notifications_enabled: false
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.False(t, cfg.Engine.Notify())
			},
		},
		{
			name: "missing required database fields",
			yaml: `
source:
  base_url: http://collector:8090
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing source base url",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			wantErr: "source.base_url is required",
		},
		{
			name:    "invalid fingerprint backend",
			yaml:    minimalYAML + "fingerprints:\n  backend: memcached\n",
			wantErr: `fingerprints.backend must be one of: postgres, redis (got "memcached")`,
		},
		{
			name:    "redis backend requires url",
			yaml:    minimalYAML + "fingerprints:\n  backend: redis\n",
			wantErr: "redis.url is required when fingerprints.backend is redis",
		},
		{
			name:    "oauth without credentials",
			yaml:    minimalYAML + "  oauth:\n    token_url: http://auth/token\n",
			wantErr: "source.oauth.client_id and client_secret are required",
		},
		{
			name:    "unknown timezone",
			yaml:    minimalYAML + "  timezone: Mars/Olympus\n",
			wantErr: "source.timezone",
		},
		{
			name:    "similarity threshold above one",
			yaml:    minimalYAML + "engine:\n  similarity_threshold: 1.5\n",
			wantErr: "engine.similarity_threshold must be in (0, 1]",
		},
		{
			name:    "cycle interval too short",
			yaml:    minimalYAML + "schedule:\n  cycle_interval: 100ms\n",
			wantErr: "schedule.cycle_interval must be at least 1s",
		},
		{
			name:    "telegram enabled without token",
			yaml:    minimalYAML + "notifications:\n  telegram:\n    enabled: true\n",
			wantErr: "notifications.telegram.token and chat_id are required",
		},
		{
			name:    "invalid log level",
			yaml:    minimalYAML + "logging:\n  level: verbose\n",
			wantErr: `logging.level must be one of: debug, info, warn, error (got "verbose")`,
		},
		{
			name:    "sample ratio out of range",
			yaml:    minimalYAML + "telemetry:\n  sample_ratio: 2\n",
			wantErr: "telemetry.sample_ratio must be in [0, 1]",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: medwatch_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
redis:
  url: redis://cache:6379/1
  key_prefix: "mw:"
  ttl: 720h
fingerprints:
  backend: redis
source:
  base_url: https://collector.example.com
  oauth:
    token_url: https://auth.example.com/token
    client_id: medwatch
    client_secret: s3cret
    scopes: [listings, bookings]
  rate_limit:
    per_second: 1
    burst: 2
    daily_limit: 2000
  max_pages: 5
  timezone: UTC
engine:
  workers: 8
  similarity_threshold: 0.85
  auto_book: true
  gp_specialties: [9, 1586]
schedule:
  cycle_interval: 10m
  cycle_timeout: 8m
notifications:
  telegram:
    enabled: true
    token: "123:abc"
    chat_id: "-100200"
logging:
  level: debug
  format: json
telemetry:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  sample_ratio: 0.25
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
				assert.Equal(t, "mw:", cfg.Redis.KeyPrefix)
				assert.Equal(t, 720*time.Hour, cfg.Redis.TTL)
				assert.Equal(t, BackendRedis, cfg.Fingerprints.Backend)
				assert.Equal(t, []string{"listings", "bookings"}, cfg.Source.OAuth.Scopes)
				assert.Equal(t, int64(2000), cfg.Source.RateLimit.DailyLimit)
				assert.Equal(t, 5, cfg.Source.MaxPages)
				assert.Equal(t, 8, cfg.Engine.Workers)
				assert.InDelta(t, 0.85, cfg.Engine.SimilarityThreshold, 0)
				assert.True(t, cfg.Engine.AutoBook)
				assert.Equal(t, []int64{9, 1586}, cfg.Engine.GPSpecialties)
				assert.Equal(t, 10*time.Minute, cfg.Schedule.CycleInterval)
				assert.Equal(t, "-100200", cfg.Notifications.Telegram.ChatID)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
				assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 0)

				loc, err := cfg.Source.Location()
				require.NoError(t, err)
				assert.Equal(t, time.UTC, loc)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "medwatch",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
		PoolSize: 20,
	}

	assert.Equal(t,
		"host=db.example.com port=5433 dbname=medwatch user=admin password=s3cret sslmode=require pool_max_conns=20",
		cfg.DSN(),
	)
}
