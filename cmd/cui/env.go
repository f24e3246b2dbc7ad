package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cui/internal/config"
	"github.com/alexisbeaulieu97/cui/internal/logger"
	"github.com/alexisbeaulieu97/cui/internal/shop"
)

// environment bundles what every command builds from flags and the config
// file.
type environment struct {
	cfg   *config.Config
	log   *logger.Logger
	ring  *logger.Ring
	store *shop.MemoryStore
}

// loadEnvironment reads the configuration, creates the logger and opens the
// catalog. Log entries go to logOut and to the in-app log ring.
func loadEnvironment(flags *rootFlags, logOut io.Writer) (*environment, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}

	ring := logger.NewRing(0)
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.LogHuman,
		Writer:        logOut,
		Ring:          ring,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	catalog, err := shop.LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.WithFields(map[string]any{"products": len(catalog.Products)}).Debug("catalog loaded")

	store := shop.NewMemoryStore(catalog, shop.WithLatency(cfg.Latency), shop.WithStoreLogger(log))
	return &environment{cfg: cfg, log: log, ring: ring, store: store}, nil
}

// fitTerminal sizes the frame to the terminal behind f when it is one.
// A positive width overrides the detected width.
func fitTerminal(cfg *config.Config, f *os.File, width int) {
	if f != nil && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			cfg.Width = clamp(w, 20, 400)
			cfg.Height = clamp(h, max(10, cfg.ShowLogs+5), 200)
		}
	}
	if width > 0 {
		cfg.Width = clamp(width, 20, 400)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
