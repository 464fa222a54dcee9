package cache

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/otastrings/otastrings/pkg/translations"
)

// FileOutput is a cache decorator that persists the complete merged
// TranslationSet to a JSON file after every update. The update is forwarded
// to the inner cache synchronously; the disk write happens afterwards on a
// dedicated writer goroutine, so writes are never interleaved by concurrent
// updates. Write failures are logged, not raised: persistence is
// best-effort.
type FileOutput struct {
	inner   Cache
	path    string
	logger  *slog.Logger
	jobs    chan translations.TranslationSet
	closing sync.Once
	done    chan struct{}
	wg      sync.WaitGroup

	// mu serializes enqueueing against Close, so no update can slip a job
	// into the queue after Close has drained it.
	mu     sync.Mutex
	closed bool
}

// NewFileOutput wraps inner and persists every update to the file at path,
// creating intermediate directories as needed. Call Close to flush pending
// writes and stop the writer goroutine.
func NewFileOutput(inner Cache, path string, logger *slog.Logger) *FileOutput {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	f := &FileOutput{
		inner:  inner,
		path:   path,
		logger: logger,
		jobs:   make(chan translations.TranslationSet, 16),
		done:   make(chan struct{}),
	}

	go f.writer()

	return f
}

// Get implements Cache.
func (f *FileOutput) Get() translations.TranslationSet {
	return f.inner.Get()
}

// GetTemplate implements Cache.
func (f *FileOutput) GetTemplate(key, locale string) (string, bool) {
	return f.inner.GetTemplate(key, locale)
}

// Update implements Cache. The snapshot queued for disk is the inner state
// overlaid with the incoming set, so layers beneath that discard live
// updates (the read-only guard) still get their deltas persisted for the
// next startup.
func (f *FileOutput) Update(incoming translations.TranslationSet) {
	f.inner.Update(incoming)

	snapshot := f.inner.Get()
	snapshot.Overlay(incoming)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}

	f.wg.Add(1)
	f.jobs <- snapshot
}

// Flush blocks until every queued write has hit the disk.
func (f *FileOutput) Flush() {
	f.wg.Wait()
}

// Close flushes pending writes and stops the writer goroutine. Close is
// idempotent; updates after Close still reach the inner cache but are no
// longer persisted.
func (f *FileOutput) Close() error {
	f.closing.Do(func() {
		f.mu.Lock()
		f.closed = true
		f.mu.Unlock()

		f.wg.Wait()
		close(f.done)
	})
	return nil
}

func (f *FileOutput) writer() {
	for {
		select {
		case set := <-f.jobs:
			f.write(set)
			f.wg.Done()
		case <-f.done:
			return
		}
	}
}

// write serializes the set atomically: temp file in the target directory,
// then rename.
func (f *FileOutput) write(set translations.TranslationSet) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.logger.Error("failed to create translation snapshot directory",
			slog.String("dir", dir), slog.Any("error", err))
		return
	}

	data, err := json.Marshal(set)
	if err != nil {
		f.logger.Error("failed to serialize translation snapshot", slog.Any("error", err))
		return
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		f.logger.Error("failed to create translation snapshot file",
			slog.String("path", f.path), slog.Any("error", err))
		return
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		f.logger.Error("failed to write translation snapshot",
			slog.String("path", f.path), slog.Any("error", err))
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		f.logger.Error("failed to close translation snapshot file",
			slog.String("path", f.path), slog.Any("error", err))
		return
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		f.logger.Error("failed to replace translation snapshot",
			slog.String("path", f.path), slog.Any("error", err))
	}
}

var _ Cache = (*FileOutput)(nil)
