// Package watcher reloads the theme when the config file or .env changes on disk
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"shade/internal/app/errors"
	"shade/internal/app/theme"
	"shade/internal/config"
	"shade/internal/config/logger"
)

//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher

// Watcher follows the active config file
type Watcher interface {
	Start(ctx context.Context) error
	Close()
}

// burstFactor caps a burst of saves at this many debounce periods
const burstFactor = 5

type loadFunc func(path string) (*config.Config, error)

type watcher struct {
	cfg       *config.Config
	store     theme.Store
	load      loadFunc
	log       logger.Logger
	fsWatcher *fsnotify.Watcher
	debouncer Debouncer
	matcher   Matcher
	path      string
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a watcher for cfg.Path, nothing is watched until Start
func NewWatcher(cfg *config.Config, store theme.Store, log logger.Logger) Watcher {
	return &watcher{
		cfg:   cfg,
		store: store,
		load:  config.Load,
		log:   log.WithComponent("WATCHER"),
	}
}

// Start watches the config directory until ctx is done or Close is called.
// It is a no-op when watching is disabled or defaults are in use.
func (w *watcher) Start(ctx context.Context) error {
	if !w.cfg.Watch.Enabled {
		w.log.Debug().Msg("Config watching disabled")
		return nil
	}

	if w.cfg.Path == "" {
		w.log.Debug().Msg("No config file on disk, nothing to watch")
		return nil
	}

	path, err := filepath.Abs(w.cfg.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateWatcher, err)
	}

	matcher, err := NewMatcher([]string{filepath.Base(path), config.EnvFile}, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateWatcher, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateWatcher, err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateWatcher, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		fsw.Close()
		return nil
	}

	w.path = path
	w.matcher = matcher
	w.fsWatcher = fsw
	w.debouncer = NewDebouncer(w.cfg.Watch.Debounce, w.cfg.Watch.Debounce*burstFactor, w.reload)

	go w.processEvents(ctx, fsw)

	w.log.Info().Str("path", path).Msg("Watching config")

	return nil
}

// Close stops watching and cancels a pending reload
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.debouncer != nil {
		w.debouncer.Stop()
	}

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
}

func (w *watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	if !w.matcher.Match(event.Name) {
		return
	}

	w.debouncer.Trigger(filepath.Base(event.Name))
}

// reload re-reads the config, a broken file keeps the previous theme
func (w *watcher) reload(files []string) {
	cfg, err := w.load(w.path)
	if err != nil {
		w.log.Warn().Err(err).Strs("files", files).Msg("Config reload failed, keeping current theme")
		return
	}

	if err := w.store.Reload(cfg); err != nil {
		w.log.Warn().Err(err).Strs("files", files).Msg("Theme reload failed, keeping current theme")
		return
	}

	w.log.Info().Strs("files", files).Msg("Config reloaded")
}

func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}
