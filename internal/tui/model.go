// Package tui hosts the storefront inside a Bubbletea program. Bubbletea
// owns the terminal and the input reader; the model forwards keys and
// window sizes to the app and drives its event loop from Update, so every
// engine mutation stays on the program goroutine.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cui/internal/app"
	"github.com/alexisbeaulieu97/cui/internal/config"
	"github.com/alexisbeaulieu97/cui/internal/logger"
	"github.com/alexisbeaulieu97/cui/internal/shop"
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	Store  shop.Store
	Logger *logger.Logger
	Ring   *logger.Ring
	// Output is the terminal the frames are styled for. Defaults to stdout.
	Output io.Writer
	// ForceColor renders truecolor even when Output is not a terminal.
	ForceColor bool
	// Plain drops styling from frames.
	Plain   bool
	Context context.Context
}

type frameMsg time.Time

type wakeMsg struct{}

// session is shared by every copy of the Model value.
type session struct {
	app    *app.App
	screen *screen
	quit   bool
}

// Model is the Bubbletea model for an interactive storefront.
type Model struct {
	s        *session
	interval time.Duration
}

// NewModel builds the app, starts it and returns a Model ready for
// tea.NewProgram.
func NewModel(opts Options) (Model, error) {
	if opts.Config == nil {
		def := config.Default()
		opts.Config = &def
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	s := &session{screen: newScreen(opts.Output, opts.ForceColor, opts.Plain)}
	a, err := app.New(app.Options{
		Config:  opts.Config,
		Store:   opts.Store,
		Painter: s.screen,
		Logger:  opts.Logger,
		Ring:    opts.Ring,
		Quit:    func() { s.quit = true },
		Context: opts.Context,
	})
	if err != nil {
		return Model{}, err
	}
	if err := a.Start(); err != nil {
		a.Close()
		return Model{}, fmt.Errorf("start storefront: %w", err)
	}
	s.app = a

	return Model{s: s, interval: opts.Config.FrameInterval}, nil
}

// Init starts the frame ticker and the wake listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitForWake())
}

// App returns the hosted app.
func (m Model) App() *app.App {
	return m.s.app
}

// Quitting reports whether the shopper asked to leave.
func (m Model) Quitting() bool {
	return m.s.quit
}

// Close releases the app's effects and fetches. Call it after the program
// exits.
func (m Model) Close() {
	if m.s != nil && m.s.app != nil {
		m.s.app.Close()
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) waitForWake() tea.Cmd {
	wake := m.s.app.Loop().Wake()
	return func() tea.Msg {
		<-wake
		return wakeMsg{}
	}
}
