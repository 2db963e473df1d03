package wait

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// FileTrigger delivers a wake-up whenever a watched file changes
type FileTrigger struct {
	C <-chan struct{}

	watcher *fsnotify.Watcher
	done    sync.WaitGroup
	once    sync.Once
}

// WatchFile watches path for writes, creates, renames and removals. The parent
// directory is watched because editors and the terminal itself replace the
// file rather than writing it in place.
func WatchFile(path string) (*FileTrigger, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	ch := make(chan struct{}, 1)
	t := &FileTrigger{C: ch, watcher: watcher}
	target := filepath.Clean(path)

	t.done.Add(1)
	go func() {
		defer t.done.Done()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Debug().Err(err).Str("path", path).Msg("File watcher error")
			}
		}
	}()

	return t, nil
}

// Close stops the watcher and waits for its goroutine to exit
func (t *FileTrigger) Close() error {
	var err error
	t.once.Do(func() {
		err = t.watcher.Close()
		t.done.Wait()
	})
	return err
}
