package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shade/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBackground, cfg.Theme.Background)
	assert.Equal(t, DefaultAccent, cfg.Theme.Accent)
	assert.Equal(t, DefaultMode, cfg.Theme.Mode)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, []string{DefaultCORSOrigin}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Server.EnableCORS)
	assert.True(t, cfg.Server.Metrics)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, DefaultWatchDebounce, cfg.Watch.Debounce)
	assert.Equal(t, 1, cfg.Version)
	assert.NoError(t, cfg.Validate())
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errs    []error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid config file",
			content: `version: 1
theme:
  background: "#1c1c1c"
  accent: "#FFAB00"
  mode: legacy
server:
  host: 0.0.0.0
  port: 9000
  enable_cors: false
  cors_origins: ["http://ha.local:8123", "http://localhost:3000"]
  metrics: false
  shutdown_timeout: 3s
logging:
  level: debug
  format: json
watch:
  enabled: false
  debounce: 1s
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "#1c1c1c", cfg.Theme.Background)
				assert.Equal(t, "#FFAB00", cfg.Theme.Accent)
				assert.Equal(t, "legacy", cfg.Theme.Mode)
				assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
				assert.False(t, cfg.Server.EnableCORS)
				assert.Equal(t, []string{"http://ha.local:8123", "http://localhost:3000"}, cfg.Server.CORSOrigins)
				assert.False(t, cfg.Server.Metrics)
				assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.False(t, cfg.Watch.Enabled)
				assert.Equal(t, time.Second, cfg.Watch.Debounce)
			},
		},
		{
			name: "partial file keeps defaults",
			content: `theme:
  accent: "#ff0000"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultBackground, cfg.Theme.Background)
				assert.Equal(t, "#ff0000", cfg.Theme.Accent)
				assert.Equal(t, DefaultPort, cfg.Server.Port)
				assert.Equal(t, DefaultWatchDebounce, cfg.Watch.Debounce)
			},
		},
		{
			name: "empty colors fall back to defaults",
			content: `theme:
  background: ""
  accent: ""
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultBackground, cfg.Theme.Background)
				assert.Equal(t, DefaultAccent, cfg.Theme.Accent)
			},
		},
		{
			name:    "malformed yaml",
			content: "theme: [unclosed\n",
			errs:    []error{errors.ErrFailedToParseConfig},
		},
		{
			name: "invalid structure",
			content: `server:
  port: "not a number"
`,
			errs: []error{errors.ErrFailedToParseConfig},
		},
		{
			name: "invalid background",
			content: `theme:
  background: "#fff"
`,
			errs: []error{errors.ErrInvalidConfig, errors.ErrInvalidColor},
		},
		{
			name: "invalid mode",
			content: `theme:
  mode: sepia
`,
			errs: []error{errors.ErrInvalidConfig, errors.ErrInvalidMode},
		},
		{
			name: "invalid port",
			content: `server:
  port: 70000
`,
			errs: []error{errors.ErrInvalidConfig, errors.ErrInvalidPort},
		},
		{
			name: "negative debounce",
			content: `watch:
  debounce: -1s
`,
			errs: []error{errors.ErrInvalidConfig, errors.ErrInvalidDebounce},
		},
		{
			name: "zero shutdown timeout",
			content: `server:
  shutdown_timeout: 0s
`,
			errs: []error{errors.ErrInvalidConfig, errors.ErrInvalidTimeout},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			cfg, err := Load(path)

			if len(tt.errs) > 0 {
				require.Error(t, err)
				assert.Nil(t, cfg)

				for _, e := range tt.errs {
					assert.True(t, errors.Is(err, e), "expected %v in %v", e, err)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Path)
			tt.check(t, cfg)
		})
	}
}

func Test_Load_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFile))

	require.NoError(t, err)

	expected := DefaultConfig()
	assert.Equal(t, expected, cfg)
	assert.Empty(t, cfg.Path)
}

func Test_Load_UnreadablePath(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFailedToReadConfig))
}

func Test_Load_EnvOverride(t *testing.T) {
	t.Setenv("SHADE_THEME_ACCENT", "#00ff00")
	t.Setenv("SHADE_SERVER_PORT", "9100")
	t.Setenv("SHADE_WATCH_DEBOUNCE", "50ms")

	path := writeConfig(t, `theme:
  accent: "#ff0000"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "#00ff00", cfg.Theme.Accent)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
}

func writeDotEnv(t *testing.T, configPath, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(configPath), EnvFile), []byte(content), 0644))
}

func Test_Load_DotEnv(t *testing.T) {
	const key = "SHADE_THEME_MODE"

	if _, preset := os.LookupEnv(key); preset {
		t.Skipf("%s already set", key)
	}

	path := writeConfig(t, "version: 1\n")
	writeDotEnv(t, path, key+"=legacy\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.Theme.Mode)

	_, exported := os.LookupEnv(key)
	assert.False(t, exported)
}

func Test_Load_DotEnvEdited(t *testing.T) {
	const key = "SHADE_THEME_BACKGROUND"

	if _, preset := os.LookupEnv(key); preset {
		t.Skipf("%s already set", key)
	}

	path := writeConfig(t, `theme:
  background: "#ffffff"
`)

	writeDotEnv(t, path, key+"=#000000\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#000000", cfg.Theme.Background)

	writeDotEnv(t, path, key+"=#112233\n")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#112233", cfg.Theme.Background)

	writeDotEnv(t, path, "\n")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", cfg.Theme.Background)
}

func Test_Load_DotEnvPrecedence(t *testing.T) {
	path := writeConfig(t, `theme:
  accent: "#ff0000"
server:
  port: 9000
`)

	writeDotEnv(t, path, "SHADE_THEME_ACCENT=#00ff00\nSHADE_SERVER_PORT=9200\nOTHER_KEY=ignored\n")
	t.Setenv("SHADE_SERVER_PORT", "9300")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "#00ff00", cfg.Theme.Accent)
	assert.Equal(t, 9300, cfg.Server.Port)
}

func Test_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Theme.Background = "  #000000 "

	cfg.ApplyDefaults()

	assert.Equal(t, "#000000", cfg.Theme.Background)
	assert.Equal(t, DefaultAccent, cfg.Theme.Accent)
	assert.Equal(t, DefaultMode, cfg.Theme.Mode)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func Test_WriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)

	require.NoError(t, WriteDefault(path, false))

	err := WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfigExists))

	require.NoError(t, WriteDefault(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)

	expected := DefaultConfig()
	expected.Path = path
	assert.Equal(t, expected, cfg)
}
