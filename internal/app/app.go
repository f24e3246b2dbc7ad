// Package app is the composition root: it wires the hook runtime, keyboard
// manager, router, render scheduler and event loop around the storefront.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/cui/internal/config"
	"github.com/alexisbeaulieu97/cui/internal/hooks"
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/layout"
	"github.com/alexisbeaulieu97/cui/internal/logger"
	"github.com/alexisbeaulieu97/cui/internal/loop"
	"github.com/alexisbeaulieu97/cui/internal/router"
	"github.com/alexisbeaulieu97/cui/internal/scheduler"
	"github.com/alexisbeaulieu97/cui/internal/shop"
	"github.com/alexisbeaulieu97/cui/internal/storefront"
	"github.com/alexisbeaulieu97/cui/internal/style"
	"github.com/alexisbeaulieu97/cui/internal/text"
)

// Options configures an App.
type Options struct {
	Config  *config.Config
	Store   shop.Store
	Painter scheduler.Painter
	Logger  *logger.Logger
	// Ring backs the debug log panel shown when Config.ShowLogs is set.
	Ring *logger.Ring
	// Quit is called when the shopper asks to leave.
	Quit func()
	// Inline runs fetches synchronously during render instead of in
	// background goroutines, so a single render sees loaded data.
	Inline bool
	// Context bounds background fetches.
	Context context.Context
}

// App is one running storefront. All methods except Loop().Post must be
// called from the goroutine that drives the loop.
type App struct {
	cfg     config.Config
	log     *logger.Logger
	ring    *logger.Ring
	loop    *loop.Loop
	runtime *hooks.Runtime
	keys    *keyboard.Manager
	router  *router.Router
	sched   *scheduler.Scheduler
	shop    *storefront.Storefront
	root    layout.Component

	width  int
	height int
}

// New builds an App from validated configuration.
func New(opts Options) (*App, error) {
	if opts.Config == nil {
		def := config.Default()
		opts.Config = &def
	}
	if err := config.Validate(opts.Config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("a store is required")
	}
	if opts.Painter == nil {
		return nil, fmt.Errorf("a painter is required")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	cfg := *opts.Config
	a := &App{
		cfg:    cfg,
		log:    opts.Logger,
		ring:   opts.Ring,
		loop:   loop.New(opts.Logger),
		keys:   keyboard.NewManager(opts.Logger),
		width:  cfg.Width,
		height: cfg.Height,
	}

	runtimeOpts := []hooks.Option{
		hooks.WithLogger(opts.Logger),
		hooks.WithStrict(cfg.StrictHooks),
		hooks.WithStaleTime(cfg.StaleTime),
		hooks.WithContext(opts.Context),
	}
	if !opts.Inline {
		runtimeOpts = append(runtimeOpts, hooks.WithExecutor(a.loop))
	}
	a.runtime = hooks.NewRuntime(runtimeOpts...)
	a.router = router.New(a.keys, opts.Logger)
	a.sched = scheduler.New(a.loop, opts.Painter, a.Render, opts.Logger)

	a.shop = storefront.New(storefront.Deps{
		Store:  opts.Store,
		Router: a.router,
		Keys:   a.keys,
		Timers: a.loop,
		Log:    opts.Logger,
		Quit:   opts.Quit,
	}, storefront.Options{
		Height:         a.pageHeight(),
		SplashDuration: cfg.SplashDuration,
	})
	a.shop.Register()
	a.root = a.shop.Root()

	a.runtime.SetRenderCallback(a.sched.Schedule)
	a.router.OnChange(a.sched.Schedule)
	return a, nil
}

// Start navigates to the configured initial route and schedules the first
// frame.
func (a *App) Start() error {
	if err := a.router.Navigate(a.cfg.InitialRoute); err != nil {
		return fmt.Errorf("start at %q: %w", a.cfg.InitialRoute, err)
	}
	a.log.WithFields(map[string]any{"route": a.cfg.InitialRoute, "width": a.width, "height": a.height}).Info("storefront started")
	a.sched.Schedule()
	return nil
}

// HandleKey dispatches a key event and reports whether a handler consumed
// it. State changes made by handlers schedule their own repaint.
func (a *App) HandleKey(ev *keyboard.KeyEvent) bool {
	return a.keys.Dispatch(ev)
}

// Resize changes the frame size and forces a full repaint.
func (a *App) Resize(width, height int) {
	if width > 0 {
		a.width = width
	}
	if height > 0 {
		a.height = height
	}
	a.shop.Resize(a.pageHeight())
	a.sched.Invalidate()
	a.sched.Schedule()
}

// Render produces the current frame: the storefront plus, when enabled,
// the most recent log lines under it.
func (a *App) Render() []layout.Line {
	lines := a.root(layout.Context{Width: a.width, Runtime: a.runtime})
	if a.cfg.ShowLogs <= 0 || a.ring == nil {
		return lines
	}

	dim := style.Attributes{
		Paint:  style.Paint{Color: style.Of("gray")},
		Layout: style.Layout{Wrap: style.Of(text.TruncateEnd)},
	}
	panel := []layout.Node{layout.Text(strings.Repeat("─", max(1, a.width)), dim)}
	for _, l := range a.ring.Tail(a.cfg.ShowLogs) {
		panel = append(panel, layout.Text(l, dim))
	}
	ctx := layout.Context{Width: a.width}
	return append(lines, layout.Stack(style.Attributes{}, panel...)(ctx)...)
}

// RenderNow renders and paints immediately, bypassing the frame queue.
func (a *App) RenderNow() (bool, error) {
	return a.sched.RenderNow()
}

// Close runs pending effect cleanups and cancels in-flight fetches.
func (a *App) Close() {
	a.runtime.Dispose()
}

// Loop returns the event loop the host must drive.
func (a *App) Loop() *loop.Loop { return a.loop }

// Router returns the route state machine.
func (a *App) Router() *router.Router { return a.router }

// Keys returns the keyboard manager.
func (a *App) Keys() *keyboard.Manager { return a.keys }

// Runtime returns the hook runtime.
func (a *App) Runtime() *hooks.Runtime { return a.runtime }

// Scheduler returns the render scheduler.
func (a *App) Scheduler() *scheduler.Scheduler { return a.sched }

// Size returns the current frame width and height.
func (a *App) Size() (int, int) { return a.width, a.height }

func (a *App) pageHeight() int {
	if a.cfg.ShowLogs > 0 {
		return max(1, a.height-a.cfg.ShowLogs-1)
	}
	return a.height
}
