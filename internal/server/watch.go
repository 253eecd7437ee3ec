package server

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDuration = 500 * time.Millisecond

// newWatcher watches every directory under paths. Files are watched through
// their parent directory so editors that save by renaming are still seen.
// Missing paths are skipped.
func newWatcher(paths []string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}

	watchedDirs := make(map[string]bool)
	addWatch := func(dir string) {
		dir = filepath.Clean(dir)
		if watchedDirs[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			log.Printf("Error adding watch on %s: %v", dir, err)
			return
		}
		fmt.Printf("Watching directory: %s\n", dir)
		watchedDirs[dir] = true
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("could not stat path %s: %w", path, err)
		}
		if !info.IsDir() {
			addWatch(filepath.Dir(path))
			continue
		}
		if err := filepath.Walk(path, func(walkPath string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				addWatch(walkPath)
			}
			return nil
		}); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
	}
	return watcher, nil
}

// watchForChanges reloads the site after a burst of file events settles.
func (s *Server) watchForChanges(ctx context.Context, watcher *fsnotify.Watcher, load Loader) {
	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			log.Printf("Change detected in %s", event.Name)
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounceDuration, func() { s.reload(load) })
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// reload swaps in a fresh snapshot and tells browsers to refresh. A failed
// load keeps the current snapshot.
func (s *Server) reload(load Loader) {
	log.Println("Rebuilding site...")
	st, err := load()
	if err != nil {
		log.Printf("Error rebuilding site: %v", err)
		return
	}
	s.SetSite(st)
	log.Println("Site rebuilt successfully. Triggering reload...")
	if s.hub != nil {
		s.hub.notify("reload")
	}
}
