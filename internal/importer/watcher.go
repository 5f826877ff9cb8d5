package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher imports every .json records file written into a drop directory.
type Watcher struct {
	importer *Importer
	dir      string
	watcher  *fsnotify.Watcher
	logger   logrus.FieldLogger
	imported func(path string, result Result, err error)
}

func NewWatcher(importer *Importer, dir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{
		importer: importer,
		dir:      dir,
		watcher:  fsWatcher,
		logger:   importer.logger.WithField("watch_dir", dir),
	}, nil
}

// ImportExisting loads the records files already present in the directory,
// in name order.
func (watcher *Watcher) ImportExisting() error {
	entries, err := os.ReadDir(watcher.dir)
	if err != nil {
		return fmt.Errorf("read watch dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && isRecordsFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		watcher.importPath(filepath.Join(watcher.dir, name))
	}
	return nil
}

// Run blocks until ctx is cancelled or the watcher fails.
func (watcher *Watcher) Run(ctx context.Context) error {
	defer watcher.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if isRecordsFile(event.Name) {
				watcher.importPath(event.Name)
			}
		case err, ok := <-watcher.watcher.Errors:
			if !ok {
				return nil
			}
			watcher.logger.WithError(err).Error("file watcher failed")
			return fmt.Errorf("file watcher: %w", err)
		}
	}
}

func (watcher *Watcher) importPath(path string) {
	result, err := watcher.importer.ImportFile(path)
	if err != nil {
		watcher.logger.WithError(err).WithField("file", path).Warn("records file rejected")
	}
	if watcher.imported != nil {
		watcher.imported(path, result, err)
	}
}

func isRecordsFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}
