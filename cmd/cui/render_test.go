package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cui/internal/keyboard"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderPrintsShopFrame(t *testing.T) {
	out, err := execute(t, "render", "--width", "80")
	require.NoError(t, err)

	assert.Contains(t, out, "segfault")
	assert.Contains(t, out, "~ originals ~")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderReplaysKeys(t *testing.T) {
	out, err := execute(t, "render", "--keys", "+,+,c")
	require.NoError(t, err)

	assert.Contains(t, out, "$44.00")
	assert.Contains(t, out, "[2]")
	assert.Contains(t, out, "segfault")
	assert.Contains(t, out, "12oz | Whole Beans")
}

func TestRenderANSI(t *testing.T) {
	out, err := execute(t, "render", "--route", "cart", "--ansi")
	require.NoError(t, err)

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Your cart is empty")
}

func TestRenderRejectsUnknownRouteAndKey(t *testing.T) {
	_, err := execute(t, "render", "--route", "account")
	require.Error(t, err)

	_, err = execute(t, "render", "--keys", "hyperspace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestRenderUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`products:
  - id: prd_decaf
    name: decaf
    description: all of the taste, none of the pager alerts
    variants:
      - id: var_decaf_12oz
        name: 12oz | Ground
        price: 1800
`), 0o600))

	cfg := filepath.Join(dir, "cui.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("width: 60\ncatalog: "+catalog+"\n"), 0o600))

	out, err := execute(t, "--config", cfg, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "decaf")
	assert.NotContains(t, out, "segfault")
}

func TestRenderReportsBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cui.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("width: 5\n"), 0o600))

	_, err := execute(t, "--config", cfg, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		shift bool
		ctrl  bool
	}{
		{name: "enter", key: keyboard.KeyEnter},
		{name: "ESC", key: keyboard.KeyEscape},
		{name: "shift+tab", key: keyboard.KeyTab, shift: true},
		{name: "ctrl+a", key: "a", ctrl: true},
		{name: "+", key: "+"},
		{name: "space", key: keyboard.KeySpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := parseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.key, ev.Key)
			assert.Equal(t, tt.shift, ev.Shift)
			assert.Equal(t, tt.ctrl, ev.Ctrl)
		})
	}
}
