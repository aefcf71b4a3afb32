package export

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fjglira/suitegen/internal/config"
	"github.com/fjglira/suitegen/internal/domain"
)

// DebounceInterval is how long Watch waits for a burst of file events to settle.
const DebounceInterval = 250 * time.Millisecond

// Watch exports once, then again whenever a file in the project directory
// changes, until ctx is cancelled. Generation errors are logged and do not
// stop the watch.
func (e *Exporter) Watch(ctx context.Context, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return domain.NewError(domain.StageLoad, cfg.Project.Directory, "failed to start watcher", err)
	}
	defer watcher.Close()

	if err := e.addWatchDirs(watcher, cfg); err != nil {
		return err
	}

	e.exportLogged(cfg)

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !e.relevant(ev, cfg) {
				continue
			}
			e.log.Debugf("Change detected: %s %s", ev.Op, ev.Name)
			if ev.Has(fsnotify.Create) {
				_ = e.addWatchDirs(watcher, cfg)
			}
			if timer == nil {
				timer = time.NewTimer(DebounceInterval)
			} else {
				timer.Reset(DebounceInterval)
			}
			trigger = timer.C
		case <-trigger:
			trigger = nil
			e.exportLogged(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.log.WithError(err).Warn("Watcher error")
		}
	}
}

func (e *Exporter) exportLogged(cfg *config.Config) {
	if _, err := e.Export(cfg); err != nil {
		e.log.WithError(err).Error("Generation failed")
	}
}

func (e *Exporter) addWatchDirs(watcher *fsnotify.Watcher, cfg *config.Config) error {
	root := cfg.Project.Directory
	recursive := cfg.Project.Recursive == nil || *cfg.Project.Recursive
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return domain.NewError(domain.StageLoad, path, "failed to watch directory", err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (!recursive || e.isOutputDir(path, cfg) || excludedDir(root, path, cfg.Project.Exclude)) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return domain.NewError(domain.StageLoad, path, "failed to watch directory", err)
		}
		return nil
	})
}

// relevant filters out events for generated files and unrelated extensions.
func (e *Exporter) relevant(ev fsnotify.Event, cfg *config.Config) bool {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}
	if e.isOutputDir(filepath.Dir(ev.Name), cfg) {
		return false
	}
	base := filepath.Base(ev.Name)
	if base == filepath.Base(cfg.Project.SnippetsFile) || base == filepath.Base(cfg.Project.EnvFile) {
		return true
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".yml", ".yaml", ".json":
		return true
	}
	return false
}

func (e *Exporter) isOutputDir(dir string, cfg *config.Config) bool {
	a, errA := filepath.Abs(dir)
	b, errB := filepath.Abs(cfg.Output.Directory)
	return errA == nil && errB == nil && a == b
}

func excludedDir(root, path string, excludes []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, exc := range excludes {
		prefix, _, _ := strings.Cut(filepath.ToSlash(exc), "/**")
		if prefix == rel {
			return true
		}
	}
	return false
}
