package offsets

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Store whenever its definitions file changes on disk,
// so a freshly published capture takes effect without restarting the
// consumer. The parent directory is watched rather than the file itself:
// most editors and capture pipelines replace the file via rename, which
// drops a watch placed on the old inode.
type Watcher struct {
	store *Store
	path  string
	log   *slog.Logger
	fsw   *fsnotify.Watcher
}

// NewWatcher returns a watcher that reloads store from path. A nil logger
// discards all output.
func NewWatcher(store *Store, path string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{store: store, path: path, log: log, fsw: fsw}, nil
}

// Run watches until the context is canceled. A reload failure keeps the
// previous snapshot published; the broken capture is logged and waited
// out, never half-applied.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := w.store.ReloadFile(w.path); err != nil {
				w.log.Warn("definitions reload failed, keeping previous snapshot",
					"path", w.path, "err", err)
				continue
			}
			w.log.Info("definitions reloaded",
				"path", w.path, "entries", w.store.Current().Len())
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
