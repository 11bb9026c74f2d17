// Package theme holds the active theme selection shared by the http service and the config watcher
package theme

import (
	"sync"

	"shade/internal/app/css"
	"shade/internal/app/palette"
	"shade/internal/config"
	"shade/internal/config/logger"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=theme

// Store is the concurrency safe holder of the active theme
type Store interface {
	Current() Settings
	Update(change Overrides) (Settings, error)
	Revert() Settings
	Stylesheet(override Overrides) (css.Stylesheet, Settings, error)
	Palette(override Overrides) (palette.Palette, Settings, error)
	Reload(cfg *config.Config) error
}

type store struct {
	mu       sync.RWMutex
	current  Settings
	baseline Settings
	log      logger.Logger
}

// NewStore creates a store seeded from the configured theme
func NewStore(cfg *config.Config, log logger.Logger) (Store, error) {
	settings, err := FromConfig(cfg.Theme)
	if err != nil {
		return nil, err
	}

	return &store{
		current:  settings,
		baseline: settings,
		log:      log.WithComponent("THEME"),
	}, nil
}

// Current returns the active settings
func (s *store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Update applies change on top of the active settings, nothing is stored on error
func (s *store) Update(change Overrides) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.current.Apply(change)
	if err != nil {
		return s.current, err
	}

	s.current = next
	s.logChange("Theme updated", next)

	return next, nil
}

// Revert restores the settings loaded from configuration
func (s *store) Revert() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.baseline
	s.logChange("Theme reverted", s.current)

	return s.current
}

// Stylesheet renders the active theme with one-off overrides
func (s *store) Stylesheet(override Overrides) (css.Stylesheet, Settings, error) {
	settings, err := s.resolve(override)
	if err != nil {
		return css.Stylesheet{}, settings, err
	}

	return settings.Stylesheet(), settings, nil
}

// Palette derives the active palette with one-off overrides
func (s *store) Palette(override Overrides) (palette.Palette, Settings, error) {
	settings, err := s.resolve(override)
	if err != nil {
		return palette.Palette{}, settings, err
	}

	return settings.Palette(), settings, nil
}

// Reload replaces both the baseline and the active settings
func (s *store) Reload(cfg *config.Config) error {
	settings, err := FromConfig(cfg.Theme)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseline = settings
	s.current = settings
	s.logChange("Theme reloaded", settings)

	return nil
}

func (s *store) resolve(override Overrides) (Settings, error) {
	current := s.Current()
	if override.IsEmpty() {
		return current, nil
	}

	return current.Apply(override)
}

func (s *store) logChange(msg string, settings Settings) {
	s.log.Info().
		Str("background", settings.Background.Hex()).
		Str("accent", settings.Accent.Hex()).
		Str("mode", settings.Mode.String()).
		Msg(msg)
}
