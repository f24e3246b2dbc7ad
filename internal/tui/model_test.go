package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cui/internal/config"
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/shop"
	"github.com/alexisbeaulieu97/cui/internal/storefront"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := config.Default()
	cfg.InitialRoute = storefront.RouteShop
	cfg.SplashDuration = 0

	m, err := NewModel(Options{
		Config: &cfg,
		Store:  shop.NewMemoryStore(shop.DefaultCatalog()),
		Output: io.Discard,
		Plain:  true,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

// pump ticks frames until the view contains want.
func pump(t *testing.T, m Model, want string) Model {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		updated, _ := m.Update(frameMsg(time.Now()))
		m = updated.(Model)
		if strings.Contains(m.View(), want) {
			return m
		}
		if time.Now().After(deadline) {
			t.Fatalf("view never contained %q:\n%s", want, m.View())
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestNewModelRejectsBadRoute(t *testing.T) {
	cfg := config.Default()
	cfg.InitialRoute = "account"
	_, err := NewModel(Options{Config: &cfg, Store: shop.NewMemoryStore(shop.DefaultCatalog()), Output: io.Discard})
	require.Error(t, err)
}

func TestInitStartsTicking(t *testing.T) {
	m := newTestModel(t)
	require.NotNil(t, m.Init())
}

func TestModelLoadsShop(t *testing.T) {
	m := pump(t, newTestModel(t), "segfault")
	assert.Contains(t, m.View(), "~ featured ~")
	assert.False(t, m.Quitting())
}

func TestWindowSizeResizesApp(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Nil(t, cmd)

	w, h := updated.(Model).App().Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
}

func TestWakeReArmsListener(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(wakeMsg{})
	require.NotNil(t, cmd)
}

func TestViewIsEmptyAfterQuit(t *testing.T) {
	m := pump(t, newTestModel(t), "segfault")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = updated.(Model)
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestKeysReachTheApp(t *testing.T) {
	m := pump(t, newTestModel(t), "segfault")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.Nil(t, cmd)
	m = updated.(Model)
	assert.Equal(t, storefront.RouteCart, m.App().Router().Current())

	m = pump(t, m, "Your cart is empty")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, storefront.RouteShop, updated.(Model).App().Router().Current())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(Model).Quitting())
}

func TestKeyEventTranslation(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		key   string
		shift bool
		ctrl  bool
	}{
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, key: keyboard.KeyEnter},
		{name: "escape", msg: tea.KeyMsg{Type: tea.KeyEsc}, key: keyboard.KeyEscape},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, key: keyboard.KeyTab},
		{name: "shift tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, key: keyboard.KeyTab, shift: true},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, key: keyboard.KeyBackspace},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, key: keyboard.KeyUp},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, key: keyboard.KeyDown},
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, key: keyboard.KeyLeft},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, key: keyboard.KeyRight},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace}, key: keyboard.KeySpace},
		{name: "rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}, key: "+"},
		{name: "upper rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'A'}}, key: "A", shift: true},
		{name: "ctrl", msg: tea.KeyMsg{Type: tea.KeyCtrlA}, key: "a", ctrl: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := keyEvent(tt.msg)
			require.NotNil(t, ev)
			assert.Equal(t, tt.key, ev.Key)
			assert.Equal(t, tt.shift, ev.Shift)
			assert.Equal(t, tt.ctrl, ev.Ctrl)
		})
	}
}

func TestKeyEventIgnoresUnnamedKeys(t *testing.T) {
	assert.Nil(t, keyEvent(tea.KeyMsg{Type: tea.KeyF1}))
	assert.Nil(t, keyEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true}))
	assert.Nil(t, keyEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}))
}
