package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cui/internal/config"
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/logger"
	"github.com/alexisbeaulieu97/cui/internal/paint"
	"github.com/alexisbeaulieu97/cui/internal/shop"
	"github.com/alexisbeaulieu97/cui/internal/storefront"
)

type fixture struct {
	app   *App
	store *shop.MemoryStore
	rec   *paint.Recorder
}

func newFixture(t *testing.T, mutate func(*config.Config, *Options)) fixture {
	t.Helper()

	cfg := config.Default()
	cfg.InitialRoute = storefront.RouteShop
	cfg.SplashDuration = 0

	store := shop.NewMemoryStore(shop.DefaultCatalog())
	rec := &paint.Recorder{}
	opts := Options{Config: &cfg, Store: store, Painter: rec, Inline: true}
	if mutate != nil {
		mutate(&cfg, &opts)
	}

	a, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return fixture{app: a, store: store, rec: rec}
}

func (f fixture) frame(t *testing.T) string {
	t.Helper()
	f.app.Loop().Drain()
	last, ok := f.rec.Last()
	require.True(t, ok, "nothing painted")
	return last.Plain()
}

func (f fixture) press(key string) bool {
	return f.app.HandleKey(&keyboard.KeyEvent{Key: key})
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	bad := config.Default()
	bad.Width = 5
	_, err := New(Options{Config: &bad, Store: shop.NewMemoryStore(shop.DefaultCatalog()), Painter: &paint.Recorder{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, err = New(Options{Painter: &paint.Recorder{}})
	require.Error(t, err)

	_, err = New(Options{Store: shop.NewMemoryStore(shop.DefaultCatalog())})
	require.Error(t, err)
}

func TestStartRendersShop(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	require.NoError(t, f.app.Start())

	out := f.frame(t)
	assert.Contains(t, out, "~ featured ~")
	assert.Contains(t, out, "segfault")
	assert.Contains(t, out, "$0.00")
	assert.Contains(t, out, "free shipping")
	assert.Equal(t, storefront.RouteShop, f.app.Router().Current())

	rows := strings.Split(out, "\n")
	for _, row := range rows {
		assert.LessOrEqual(t, len([]rune(row)), 80, "row %q overflows", row)
	}
}

func TestStartRejectsUnknownRoute(t *testing.T) {
	t.Parallel()

	f := newFixture(t, func(cfg *config.Config, _ *Options) {
		cfg.InitialRoute = "account"
	})
	require.Error(t, f.app.Start())
}

func TestAddingToCartUpdatesHeader(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	require.NoError(t, f.app.Start())
	f.frame(t)

	require.True(t, f.press("+"))
	out := f.frame(t)
	assert.Contains(t, out, "$22.00")
	assert.Contains(t, out, "[1]")

	cart, err := f.store.GetCart(context.Background())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestNavigatingToCart(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	require.NoError(t, f.app.Start())
	f.frame(t)

	require.True(t, f.press("c"))
	out := f.frame(t)
	assert.Equal(t, storefront.RouteCart, f.app.Router().Current())
	assert.Contains(t, out, "Your cart is empty")

	require.True(t, f.press(keyboard.KeyEscape))
	f.frame(t)
	assert.Equal(t, storefront.RouteShop, f.app.Router().Current())
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	quit := 0
	f := newFixture(t, func(_ *config.Config, opts *Options) {
		opts.Quit = func() { quit++ }
	})
	require.NoError(t, f.app.Start())
	f.frame(t)

	assert.True(t, f.press("q"))
	assert.Equal(t, 1, quit)
}

func TestFailedLoadShowsError(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.store.FailNext(errors.New("connection refused"))
	require.NoError(t, f.app.Start())

	assert.Contains(t, f.frame(t), "could not reach the shop")
}

func TestResizeRepaints(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	require.NoError(t, f.app.Start())
	f.frame(t)
	before := f.rec.Count()

	f.app.Resize(120, 30)
	out := f.frame(t)

	w, h := f.app.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 30, h)
	assert.Greater(t, f.rec.Count(), before)
	assert.Contains(t, out, "segfault")
}

func TestLogPanelShowsRecentEntries(t *testing.T) {
	t.Parallel()

	ring := logger.NewRing(10)
	log, err := logger.New(logger.Options{Level: "info", Writer: &strings.Builder{}, Ring: ring})
	require.NoError(t, err)

	f := newFixture(t, func(cfg *config.Config, opts *Options) {
		cfg.ShowLogs = 3
		opts.Logger = log
		opts.Ring = ring
	})
	require.NoError(t, f.app.Start())

	out := f.frame(t)
	assert.Contains(t, out, strings.Repeat("─", 80))
	assert.Contains(t, out, "storefront started")
}

func TestSplashHandsOverToShop(t *testing.T) {
	t.Parallel()

	f := newFixture(t, func(cfg *config.Config, opts *Options) {
		cfg.InitialRoute = storefront.RouteSplash
		cfg.SplashDuration = 20 * time.Millisecond
		opts.Inline = false
	})
	require.NoError(t, f.app.Start())
	assert.Contains(t, f.frame(t), "brewing")

	deadline := time.Now().Add(2 * time.Second)
	var out string
	for time.Now().Before(deadline) {
		f.app.Loop().Drain()
		if last, ok := f.rec.Last(); ok {
			out = last.Plain()
		}
		if f.app.Router().Current() == storefront.RouteShop && strings.Contains(out, "segfault") {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	assert.Equal(t, storefront.RouteShop, f.app.Router().Current())
	assert.Contains(t, out, "segfault")
}
