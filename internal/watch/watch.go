// Package watch rebuilds showcase output when documentation pages change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/elvtdocs/internal/logfields"
	"git.home.luguber.info/inful/elvtdocs/internal/showcase"
)

// DefaultDebounce coalesces editor save bursts into a single rebuild.
const DefaultDebounce = 300 * time.Millisecond

// RebuildFunc is called after a burst of changes with the sorted changed paths.
type RebuildFunc func(ctx context.Context, changed []string) error

// Watcher monitors a docs tree and triggers debounced rebuilds.
type Watcher struct {
	root     string
	rebuild  RebuildFunc
	logger   *slog.Logger
	debounce time.Duration

	watcher   *fsnotify.Watcher
	triggerCh chan struct{}

	mu      sync.Mutex
	pending map[string]struct{}
	wg      sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger; slog.Default is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New creates a watcher for every directory below root.
func New(root string, rebuild RebuildFunc, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve docs path: %w", err)
	}

	w := &Watcher{
		root:      absRoot,
		rebuild:   rebuild,
		logger:    slog.Default(),
		debounce:  DefaultDebounce,
		watcher:   fw,
		triggerCh: make(chan struct{}, 1),
		pending:   map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start registers the directory watches and starts the event and rebuild
// loops. They stop when ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addTree(w.root); err != nil {
		_ = w.watcher.Close()
		return err
	}
	w.logger.Info("Watching docs for changes", logfields.Path(w.root))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.rebuildLoop(ctx)
	return nil
}

// Run starts the watcher and blocks until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.wg.Wait()
	return nil
}

// addTree watches dir and every non-hidden directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	defer func() { _ = w.watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Docs watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !showcase.IsDocument(event.Name) {
		if event.Has(fsnotify.Create) {
			w.watchIfDir(event.Name)
		}
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	w.logger.Debug("Docs change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
	w.mu.Lock()
	w.pending[event.Name] = struct{}{}
	w.mu.Unlock()

	select {
	case w.triggerCh <- struct{}{}:
	default:
	}
}

// watchIfDir adds a watch for directories created after Start.
func (w *Watcher) watchIfDir(p string) {
	info, err := os.Stat(p)
	if err != nil || !info.IsDir() || strings.HasPrefix(info.Name(), ".") {
		return
	}
	if err := w.addTree(p); err != nil {
		w.logger.Warn("Failed to watch new directory", logfields.Path(p), logfields.Error(err))
	}
}

func (w *Watcher) rebuildLoop(ctx context.Context) {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.triggerCh:
			timer.Reset(w.debounce)
		case <-timer.C:
			changed := w.drain()
			if len(changed) == 0 {
				continue
			}
			start := time.Now()
			if err := w.rebuild(ctx, changed); err != nil {
				w.logger.Error("Rebuild failed", logfields.Error(err), logfields.Count(len(changed)))
				continue
			}
			w.logger.Info("Rebuilt after changes", logfields.Count(len(changed)), logfields.Since(start))
		}
	}
}

func (w *Watcher) drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.pending))
	for p := range w.pending {
		out = append(out, p)
	}
	clear(w.pending)
	slices.Sort(out)
	return out
}
