// Package watch re-runs an action when any of a fixed set of files changes.
//
// The parent directories are watched rather than the files themselves, so
// editors that save through a rename are still noticed. Bursts of events are
// debounced and runs never overlap.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/logging"
)

// DefaultDebounce is the quiet period after the last event before a run
const DefaultDebounce = 200 * time.Millisecond

// Watcher triggers a callback when one of its files is written, created,
// removed or renamed
type Watcher struct {
	files    map[string]bool
	debounce time.Duration
	logger   zerolog.Logger

	runMu sync.Mutex
}

// New creates a watcher for the given files. A zero debounce uses
// DefaultDebounce.
func New(paths []string, debounce time.Duration) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrArgumentMissing, "no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrWatch, "cannot resolve watched path").
				WithDetail("path", p)
		}
		files[filepath.Clean(abs)] = true
	}

	return &Watcher{
		files:    files,
		debounce: debounce,
		logger:   logging.GetLogger("watch"),
	}, nil
}

// Files returns the absolute paths being watched
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Run blocks until ctx is cancelled, calling onChange after each debounced
// burst of relevant events. Errors from onChange are logged and watching
// continues.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "failed to create file watcher")
	}
	defer fsw.Close()

	dirs := map[string]bool{}
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return errors.Wrap(err, errors.ErrWatch, "failed to watch directory").
				WithDetail("path", dir)
		}
		w.logger.Debug().Str("dir", dir).Msg("Watching directory")
	}

	w.logger.Info().
		Int("files", len(w.files)).
		Dur("debounce", w.debounce).
		Msg("File watcher started")

	var (
		timerMu sync.Mutex
		timer   *time.Timer
		wg      sync.WaitGroup
	)
	defer func() {
		timerMu.Lock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		timerMu.Unlock()
		wg.Wait()
	}()

	trigger := func(name string) {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		wg.Add(1)
		timer = time.AfterFunc(w.debounce, func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			w.run(name, onChange)
		})
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("File watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New(errors.ErrWatch, "watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().
				Str("path", event.Name).
				Str("op", event.Op.String()).
				Msg("File event detected")
			trigger(event.Name)

		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New(errors.ErrWatch, "watcher errors channel closed")
			}
			w.logger.Error().Err(err).Msg("File watcher error")
		}
	}
}

func (w *Watcher) run(name string, onChange func() error) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.logger.Info().Str("path", name).Msg("Change detected, re-running")
	if err := onChange(); err != nil {
		w.logger.Error().Err(err).Msg("Re-run failed")
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[filepath.Clean(abs)]
}
