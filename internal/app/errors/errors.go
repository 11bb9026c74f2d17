package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigExists        = errors.New("config file already exists")
	ErrFailedToWriteConfig = errors.New("failed to write config file")

	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidMode     = errors.New("invalid palette mode")
	ErrInvalidPort     = errors.New("server port must be between 1 and 65535")
	ErrInvalidDebounce = errors.New("watch debounce must not be negative")
	ErrInvalidTimeout  = errors.New("server shutdown timeout must be positive")

	ErrUnknownCommand      = errors.New("unknown command")
	ErrUnknownFormat       = errors.New("unknown output format")
	ErrFailedToWriteOutput = errors.New("failed to write output")
	ErrInvalidRequest      = errors.New("invalid request body")

	ErrFailedToCreateWatcher = errors.New("failed to create watcher")
	ErrServerStart           = errors.New("failed to start http server")
)

var (
	As   = errors.As
	Is   = errors.Is
	New  = errors.New
	Join = errors.Join
)
