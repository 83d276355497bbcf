package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/doclens/doclens-cli/internal/logger"
)

// Watch monitors the config file and invokes onChange with the freshly
// resolved API key whenever the file is written or replaced. It blocks
// until the context is cancelled, so callers run it in a goroutine.
// Environment and .env values still win: onChange receives the result
// of the full resolution order, not the raw file value.
func (s *ConfigStore) Watch(ctx context.Context, onChange func(apiKey string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors and `doclens config set-key` replace
	// the file, which drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		return err
	}

	logger.Debug("Watching %s for configuration changes", s.filePath)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.filePath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := s.Load(); err != nil {
				logger.Warn("Reloading %s failed: %v", s.filePath, err)
				continue
			}
			logger.Info("Configuration reloaded from %s", s.filePath)
			onChange(ResolveAPIKey(s))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error: %v", err)
		}
	}
}
