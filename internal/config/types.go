package config

import "time"

// Config holds the runtime settings of the storefront.
type Config struct {
	Width          int           `yaml:"width" validate:"gte=20,lte=400"`
	Height         int           `yaml:"height" validate:"gte=10,lte=200"`
	FrameInterval  time.Duration `yaml:"frame_interval" validate:"gte=1ms,lte=1s"`
	StaleTime      time.Duration `yaml:"stale_time" validate:"gte=0s,lte=24h"`
	InitialRoute   string        `yaml:"initial_route" validate:"required,route"`
	SplashDuration time.Duration `yaml:"splash_duration" validate:"gte=0s,lte=30s"`
	StrictHooks    bool          `yaml:"strict_hooks,omitempty"`
	ShowLogs       int           `yaml:"show_logs,omitempty" validate:"gte=0,lte=20"`
	LogLevel       string        `yaml:"log_level,omitempty" validate:"loglevel"`
	LogHuman       bool          `yaml:"log_human,omitempty"`
	Catalog        string        `yaml:"catalog,omitempty"`
	Latency        time.Duration `yaml:"latency,omitempty" validate:"gte=0s,lte=10s"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Width:          80,
		Height:         24,
		FrameInterval:  16 * time.Millisecond,
		StaleTime:      30 * time.Second,
		InitialRoute:   "splash",
		SplashDuration: 3 * time.Second,
		LogLevel:       "info",
	}
}
