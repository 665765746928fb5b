package file

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/mamdani/pkg/schema"
)

const defaultDebounce = 100 * time.Millisecond

// Loader implements ports.DocumentLoader and ports.Watchable for a document on disk.
// The format is picked from the file extension (.yaml, .yml, .json, .toml).
type Loader struct {
	Path string
	// Logger receives watch diagnostics. Nil discards them.
	Logger   *slog.Logger
	Debounce time.Duration
}

// NewLoader creates a loader for the document at path.
func NewLoader(path string) *Loader {
	return &Loader{
		Path:     path,
		Debounce: defaultDebounce,
	}
}

// Load reads and decodes the document.
func (l *Loader) Load(ctx context.Context) (*schema.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return schema.DecodeFile(l.Path)
}

// Watch signals on the returned channel whenever the document file is written,
// created or replaced. Bursts of events within the debounce window are coalesced.
// The watcher stops and the channel is closed when ctx is done.
func (l *Loader) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Editors often replace the file instead of writing it, so the directory is watched.
	abs, err := filepath.Abs(l.Path)
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	debounce := l.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				logger.Debug("document changed", "path", abs, "op", event.Op.String())
				pending = time.After(debounce)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", "path", abs, "err", err)

			case <-pending:
				pending = nil
				select {
				case ch <- struct{}{}:
				default:
					// A reload is already queued.
				}
			}
		}
	}()

	return ch, nil
}
