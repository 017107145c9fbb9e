// Package feed supplies menus with catalog data fetched off the event
// thread: a watcher polls a source at a fixed interval and a binder marshals
// each batch into a paginated menu through the host scheduler.
package feed

import (
	"context"
	"sync"
	"time"
)

// Entry is one catalog record offered to a menu.
type Entry struct {
	Name   string
	Detail string
	Icon   string
}

// Fetch loads the current catalog. It runs on a background goroutine and must
// honor ctx cancellation.
type Fetch func(ctx context.Context) ([]Entry, error)

// Event conveys a fetched catalog or an error from one poll.
type Event struct {
	Entries []Entry
	Err     error
}

// Watcher polls a catalog source at a fixed interval and publishes events.
type Watcher struct {
	fetch    Fetch
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls fetch every interval, emitting the
// first batch immediately.
func NewWatcher(fetch Fetch, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fetch:    fetch,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	gate := newThrottle(interval / 4)
	w.wg.Add(1)
	go w.poll(gate)

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of catalog events. It closes after Stop once the
// poller drains.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(gate *throttle) {
	defer w.wg.Done()

	emit := func() bool {
		if !gate.wait(w.ctx) {
			return false
		}
		entries, err := w.fetch(w.ctx)
		evt := Event{Entries: entries, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
