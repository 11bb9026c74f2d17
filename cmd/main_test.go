package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"shade/internal/app/cli"
	"shade/internal/app/errors"
	"shade/internal/config"
	"shade/internal/config/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func Test_loadConfig(t *testing.T) {
	t.Run("applies server flags", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 9000\n")
		opts := &cli.Options{Type: cli.CommandServe, Config: path, Host: "0.0.0.0"}

		cfg, err := loadConfig(opts)

		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		opts := &cli.Options{Type: cli.CommandRender, Config: filepath.Join(t.TempDir(), config.ConfigFile)}

		cfg, err := loadConfig(opts)

		require.NoError(t, err)
		assert.Equal(t, config.DefaultAccent, cfg.Theme.Accent)
	})

	t.Run("invalid file fails theme commands", func(t *testing.T) {
		path := writeConfig(t, "theme:\n  accent: blue\n")

		_, err := loadConfig(&cli.Options{Type: cli.CommandRender, Config: path})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	})

	t.Run("invalid file is ignored by init", func(t *testing.T) {
		path := writeConfig(t, "theme:\n  accent: blue\n")

		cfg, err := loadConfig(&cli.Options{Type: cli.CommandInit, Config: path})

		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})
}

func Test_needsConfig(t *testing.T) {
	tests := []struct {
		command  cli.CommandType
		expected bool
	}{
		{cli.CommandRender, true},
		{cli.CommandInspect, true},
		{cli.CommandServe, true},
		{cli.CommandInit, false},
		{cli.CommandVersion, false},
		{cli.CommandHelp, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, needsConfig(tt.command))
	}
}

func Test_appOptions(t *testing.T) {
	commands := []cli.CommandType{cli.CommandRender, cli.CommandServe, cli.CommandHelp}

	for _, command := range commands {
		cfg := config.DefaultConfig()
		opts := &cli.Options{Type: command, Format: cli.FormatCSS}

		assert.NoError(t, fx.ValidateApp(appOptions(cfg, opts)))
	}
}

func Test_createFxLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected interface{}
	}{
		{name: "debug shows container events", level: logger.DebugLevel, expected: &fxevent.ConsoleLogger{}},
		{name: "info is quiet", level: logger.InfoLevel, expected: fxevent.NopLogger},
		{name: "warn is quiet", level: logger.WarnLevel, expected: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			result := createFxLogger(cfg)()

			assert.IsType(t, tt.expected, result)
		})
	}
}
