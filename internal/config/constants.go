package config

import "time"

// app constants
const (
	AppName        = "shade"
	AppDescription = "legible theme stylesheets from a background and an accent color"

	Version = "0.4.0"

	ConfigFile = "shade.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "SHADE"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// theme constants
const (
	DefaultBackground = "#ffffff"
	DefaultAccent     = "#03a9f4"
	DefaultMode       = "custom-properties"
)

// server constants
const (
	DefaultHost            = "localhost"
	DefaultPort            = 8099
	DefaultCORSOrigin      = "http://localhost:8123"
	DefaultShutdownTimeout = 10 * time.Second

	ReadTimeout  = 15 * time.Second
	WriteTimeout = 30 * time.Second
	IdleTimeout  = 60 * time.Second

	MaxRequestBody = 1 << 16
)

// watch constants
const (
	DefaultWatchDebounce = 300 * time.Millisecond
)
