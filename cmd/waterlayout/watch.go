package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"waterlayout/pkg/resource"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDuration = 150 * time.Millisecond

// debouncer runs only the last callback triggered within its window.
type debouncer struct {
	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
	}
}

// watch re-renders local scripts whenever they are written. Editors that
// save by rename are covered by watching the parent directories.
func (c *cli) watch(ctx context.Context, scripts []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	watched := make(map[string]string)
	dirs := make(map[string]bool)
	for _, script := range scripts {
		if resource.IsNetworkURL(script) {
			continue
		}
		abs, err := filepath.Abs(script)
		if err != nil {
			return fmt.Errorf("watch %s: %w", script, err)
		}
		watched[abs] = script
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}
	if len(watched) == 0 {
		return fmt.Errorf("watch: no local scripts")
	}
	c.logger.Info("watching", zap.Int("scripts", len(watched)))

	debouncers := make(map[string]*debouncer)
	defer func() {
		for _, d := range debouncers {
			d.cancel()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("watch error", zap.Error(err))
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			script, tracked := watched[filepath.Clean(ev.Name)]
			if !tracked || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			d, ok := debouncers[script]
			if !ok {
				d = &debouncer{duration: debounceDuration}
				debouncers[script] = d
			}
			d.trigger(func() {
				if err := c.renderAll(ctx, []string{script}); err != nil {
					c.logger.Error("render failed", zap.String("script", script), zap.Error(err))
				}
			})
		}
	}
}
