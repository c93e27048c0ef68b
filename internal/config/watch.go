package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchSettings calls onChange with the reloaded settings each time the
// file at path is written or created. Bursts of events are collapsed into
// one reload after WatchDebounce. Invalid files are logged and skipped.
// The parent directory is watched so that editors replacing the file
// atomically are seen.
//
// WatchSettings blocks until ctx is cancelled.
func WatchSettings(ctx context.Context, path string, onChange func(Settings)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrWatch, err)
	}
	defer func() { _ = w.Close() }()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("%s: %w", ErrWatch, err)
	}

	log := slog.With(LogKeyComponent, CompWatch, LogKeyFile, path)
	log.Debug(MsgWatchStart)

	target := filepath.Clean(path)
	debounce := time.NewTimer(WatchDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug(MsgWatchReload, LogKeyOp, ev.Op.String())
			debounce.Reset(WatchDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn(ErrWatch, LogKeyError, err)

		case <-debounce.C:
			s, err := LoadSettings(path)
			if err != nil {
				log.Warn(MsgWatchInvalid, LogKeyError, err)
				continue
			}
			onChange(s)
		}
	}
}
