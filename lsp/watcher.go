package lsp

import (
	"os"
	"sort"
	"time"
)

// stamp identifies one version of a file on disk. A change to either field
// counts as an edit, so a file restored with an older modification time is
// picked up too.
type stamp struct {
	modTime time.Time
	size    int64
}

func stampOf(info os.FileInfo) stamp {
	return stamp{modTime: info.ModTime(), size: info.Size()}
}

func (s stamp) same(o stamp) bool {
	return s.size == o.size && s.modTime.Equal(o.modTime)
}

// FileWatcher polls the workspace for source files that were added, edited
// or deleted and keeps the workspace in step. Edited files go through
// Workspace.UpdateFile, so only their changed lines are parsed again.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	pollInterval time.Duration
	seen         map[string]stamp
}

func NewFileWatcher(w *Workspace) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		seen:         make(map[string]stamp),
	}
}

func (w *FileWatcher) SetInterval(d time.Duration) {
	w.pollInterval = d
}

func (w *FileWatcher) Start() {
	go w.run()
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

func (w *FileWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

// scan brings the workspace up to date with the files on disk and returns
// the paths it re-analyzed and the paths it dropped, both sorted.
func (w *FileWatcher) scan() (updated, removed []string) {
	current := make(map[string]stamp)
	walkSources(w.workspace.RootDir(), func(path string, info os.FileInfo) {
		current[path] = stampOf(info)
	})

	for path, st := range current {
		if old, ok := w.seen[path]; ok && old.same(st) {
			continue
		}
		if err := w.workspace.ScanFile(path); err != nil {
			log.Warningf("%s: %v", path, err)
			continue
		}
		w.seen[path] = st
		updated = append(updated, path)
	}

	for path := range w.seen {
		if _, ok := current[path]; !ok {
			delete(w.seen, path)
			w.workspace.RemoveFile(path)
			removed = append(removed, path)
		}
	}

	sort.Strings(updated)
	sort.Strings(removed)
	if len(updated) > 0 || len(removed) > 0 {
		log.Debugf("watcher: %d updated, %d removed", len(updated), len(removed))
	}
	return updated, removed
}
