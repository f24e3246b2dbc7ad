// Package loop provides the single-owner event loop that serialises every
// engine mutation. Other goroutines hand work to the owner with Post;
// RequestFrame defers work to the next frame tick.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/cui/internal/logger"
)

// DefaultFrameInterval approximates a 60Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

// maxDrainRounds bounds Drain so a task that keeps re-posting itself cannot
// hang a test.
const maxDrainRounds = 1000

// Loop queues tasks and frame callbacks. Post and RequestFrame are safe for
// concurrent use; RunPending, Frame, Drain and Run must only be called by the
// owning goroutine.
type Loop struct {
	log *logger.Logger

	mu     sync.Mutex
	tasks  []func()
	frames []func()
	wake   chan struct{}
}

// New creates an idle Loop.
func New(log *logger.Logger) *Loop {
	return &Loop{log: log, wake: make(chan struct{}, 1)}
}

// Post queues fn to run on the owner goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	l.signal()
}

// RequestFrame queues fn to run on the next frame tick.
func (l *Loop) RequestFrame(fn func()) {
	l.mu.Lock()
	l.frames = append(l.frames, fn)
	l.mu.Unlock()
	l.signal()
}

// After posts fn once d has elapsed. The returned cancel function must be
// called from the owner goroutine; after it returns fn will not run, even if
// its timer already fired.
func (l *Loop) After(d time.Duration, fn func()) (cancel func()) {
	var stopped atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !stopped.Load() {
				fn()
			}
		})
	})
	return func() {
		stopped.Store(true)
		t.Stop()
	}
}

// Every posts fn every d until the returned cancel function is called.
// Ticks are dropped while a previous one is still queued.
func (l *Loop) Every(d time.Duration, fn func()) (cancel func()) {
	var (
		stopped atomic.Bool
		queued  atomic.Bool
		once    sync.Once
	)
	done := make(chan struct{})
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if !queued.CompareAndSwap(false, true) {
					continue
				}
				l.Post(func() {
					queued.Store(false)
					if !stopped.Load() {
						fn()
					}
				})
			}
		}
	}()

	return func() {
		stopped.Store(true)
		once.Do(func() { close(done) })
	}
}

// Wake is signalled whenever work is queued. Hosts that drive the loop from
// their own event source select on it.
func (l *Loop) Wake() <-chan struct{} {
	return l.wake
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// RunPending runs the queued tasks, including tasks they queue, and returns
// how many ran.
func (l *Loop) RunPending() int {
	ran := 0
	for {
		l.mu.Lock()
		tasks := l.tasks
		l.tasks = nil
		l.mu.Unlock()
		if len(tasks) == 0 {
			return ran
		}
		for _, fn := range tasks {
			fn()
			ran++
		}
	}
}

// Frame runs the callbacks requested before the tick. Callbacks requested
// while the frame runs wait for the next tick.
func (l *Loop) Frame() bool {
	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.mu.Unlock()
	for _, fn := range frames {
		fn()
	}
	return len(frames) > 0
}

// Pending reports whether tasks or frame callbacks are queued.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks) > 0 || len(l.frames) > 0
}

// Drain alternates RunPending and Frame until nothing is queued.
func (l *Loop) Drain() {
	for i := 0; i < maxDrainRounds; i++ {
		l.RunPending()
		if !l.Frame() && !l.Pending() {
			return
		}
	}
	l.log.Warn("loop drain stopped with work still queued")
}

// Run drives the loop until ctx is cancelled: tasks run as soon as they are
// posted and frame callbacks run once per interval.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.RunPending()
		case <-ticker.C:
			l.RunPending()
			l.Frame()
		}
	}
}
