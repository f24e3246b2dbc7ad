// Package hooks implements the stateful component runtime: per-component
// hook slots keyed by a stable identity, effects, cached queries and
// mutations with optimistic updates.
//
// A Runtime is owned by exactly one goroutine (the event loop). Background
// fetches hand their results back through the Executor, so no hook state is
// ever touched concurrently.
package hooks

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/cui/internal/logger"
	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

// DefaultStaleTime is how long fetched query data is considered fresh.
const DefaultStaleTime = 30 * time.Second

// ComponentID identifies a component definition. It is assigned once when
// the component is defined and never per invocation.
type ComponentID uint64

var lastID atomic.Uint64

// NewID allocates a fresh component identity.
func NewID() ComponentID {
	return ComponentID(lastID.Add(1))
}

// Executor runs a function on the goroutine that owns the Runtime.
type Executor interface {
	Post(fn func())
}

type slotKind uint8

const (
	kindState slotKind = iota + 1
	kindEffect
	kindRef
	kindMemo
	kindQuery
	kindMutation
)

func (k slotKind) String() string {
	switch k {
	case kindState:
		return "UseState"
	case kindEffect:
		return "UseEffect"
	case kindRef:
		return "UseRef"
	case kindMemo:
		return "UseMemo"
	case kindQuery:
		return "UseQuery"
	case kindMutation:
		return "UseMutation"
	default:
		return "unknown"
	}
}

type slot struct {
	kind    slotKind
	value   any
	deps    []any
	cleanup func()
}

type frame struct {
	slots    []*slot
	rendered bool
}

// Runtime owns hook state for every component identity of one app.
type Runtime struct {
	log       *logger.Logger
	strict    bool
	exec      Executor
	now       func() time.Time
	staleTime time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	frames  map[ComponentID]*frame
	order   []ComponentID
	render  func()
	queries *QueryClient
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for warnings and fetch failures.
func WithLogger(log *logger.Logger) Option {
	return func(r *Runtime) { r.log = log }
}

// WithStrict enables hook order verification. Components that call a
// different number or kind of hooks between renders panic with a
// ContractError.
func WithStrict(strict bool) Option {
	return func(r *Runtime) { r.strict = strict }
}

// WithExecutor makes fetches and mutations run in background goroutines,
// posting their results through exec. Without an executor they run inline.
func WithExecutor(exec Executor) Option {
	return func(r *Runtime) { r.exec = exec }
}

// WithClock replaces time.Now for staleness checks.
func WithClock(now func() time.Time) Option {
	return func(r *Runtime) { r.now = now }
}

// WithStaleTime overrides DefaultStaleTime.
func WithStaleTime(d time.Duration) Option {
	return func(r *Runtime) { r.staleTime = d }
}

// WithContext sets the parent context handed to fetch functions.
func WithContext(ctx context.Context) Option {
	return func(r *Runtime) { r.ctx = ctx }
}

// NewRuntime creates an empty Runtime.
func NewRuntime(opts ...Option) *Runtime {
	r := &Runtime{
		now:       time.Now,
		staleTime: DefaultStaleTime,
		ctx:       context.Background(),
		frames:    make(map[ComponentID]*frame),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)
	r.queries = newQueryClient(r)
	return r
}

// Queries returns the query cache shared by every component of the runtime.
func (r *Runtime) Queries() *QueryClient {
	return r.queries
}

// SetRenderCallback registers the function invoked after every state change.
func (r *Runtime) SetRenderCallback(fn func()) {
	r.render = fn
}

// Strict reports whether hook order verification is enabled.
func (r *Runtime) Strict() bool {
	return r.strict
}

func (r *Runtime) triggerRender() {
	if r.render == nil {
		r.log.Warn("no render callback registered; state changed without repaint")
		return
	}
	r.render()
}

// Prepare resets the hook cursor for id. It must be called immediately before
// the component's render function runs, and the returned Cursor must not be
// used after that render returns.
func (r *Runtime) Prepare(id ComponentID) *Cursor {
	f, ok := r.frames[id]
	if !ok {
		f = &frame{}
		r.frames[id] = f
		r.order = append(r.order, id)
	}
	return &Cursor{rt: r, id: id, frame: f}
}

// Dispose runs every stored effect cleanup, most recently mounted component
// first, and cancels in-flight fetches. Hook state itself is kept.
func (r *Runtime) Dispose() {
	for i := len(r.order) - 1; i >= 0; i-- {
		f := r.frames[r.order[i]]
		for j := len(f.slots) - 1; j >= 0; j-- {
			s := f.slots[j]
			if s.cleanup != nil {
				cleanup := s.cleanup
				s.cleanup = nil
				cleanup()
			}
		}
	}
	r.cancel()
}

// launch runs work and applies its result on the owner goroutine.
func (r *Runtime) launch(work func(ctx context.Context) func()) {
	if r.exec == nil {
		work(r.ctx)()
		return
	}
	go func() {
		apply := work(r.ctx)
		r.exec.Post(apply)
	}()
}

// Cursor walks the hook slots of one component during one render.
type Cursor struct {
	rt    *Runtime
	id    ComponentID
	frame *frame
	index int
}

// Runtime returns the runtime the cursor belongs to.
func (c *Cursor) Runtime() *Runtime {
	return c.rt
}

// ID returns the identity being rendered.
func (c *Cursor) ID() ComponentID {
	return c.id
}

// Finish marks the render complete. In strict mode it verifies that the
// component called as many hooks as on its previous render.
func (c *Cursor) Finish() {
	if c.rt.strict && c.frame.rendered && c.index != len(c.frame.slots) {
		panic(c.violation(fmt.Sprintf("rendered %d hooks, previous render had %d", c.index, len(c.frame.slots))))
	}
	c.frame.rendered = true
}

func (c *Cursor) next(kind slotKind) (*slot, bool) {
	idx := c.index
	c.index++

	if idx < len(c.frame.slots) {
		s := c.frame.slots[idx]
		if s.kind != kind {
			panic(c.violation(fmt.Sprintf("hook %d is %s, previous render had %s", idx, kind, s.kind)))
		}
		return s, false
	}

	if c.rt.strict && c.frame.rendered {
		panic(c.violation(fmt.Sprintf("hook %d (%s) was not called on the previous render", idx, kind)))
	}
	s := &slot{kind: kind}
	c.frame.slots = append(c.frame.slots, s)
	return s, true
}

func (c *Cursor) violation(msg string) *cuierrors.ContractError {
	return cuierrors.NewContractError(fmt.Sprintf("component %d", c.id), "hook order changed: "+msg)
}
