package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cui/internal/app"
	"github.com/alexisbeaulieu97/cui/internal/paint"
	"github.com/alexisbeaulieu97/cui/internal/storefront"
)

type renderOptions struct {
	route string
	ansi  bool
	width int
	keys  []string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the storefront",
		Long: `Load the shop, optionally replay key presses, and print the resulting frame.

Keys are named like "enter", "esc", "tab", "shift+tab", "up", "down", "left",
"right", "backspace", "space" or a single character.`,
		Example: `  cui render --route cart
  cui render --keys +,+,c --ansi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), root, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.route, "route", storefront.RouteShop, "Route to render")
	cmd.Flags().BoolVar(&opts.ansi, "ansi", false, "Style the frame with ANSI escape codes")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Frame width in columns (default: terminal width or config)")
	cmd.Flags().StringSliceVar(&opts.keys, "keys", nil, "Comma separated key presses to replay before printing")

	return cmd
}

func runRender(ctx context.Context, root *rootFlags, opts renderOptions, out, errOut io.Writer) error {
	env, err := loadEnvironment(root, errOut)
	if err != nil {
		return err
	}

	cfg := env.cfg
	if f, ok := out.(*os.File); ok {
		fitTerminal(cfg, f, opts.width)
	} else if opts.width > 0 {
		cfg.Width = clamp(opts.width, 20, 400)
	}
	cfg.InitialRoute = opts.route
	cfg.SplashDuration = 0

	rec := &paint.Recorder{}
	a, err := app.New(app.Options{
		Config:  cfg,
		Store:   env.store,
		Painter: rec,
		Logger:  env.log,
		Ring:    env.ring,
		Inline:  true,
		Context: ctx,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Start(); err != nil {
		return err
	}
	a.Loop().Drain()

	for _, name := range opts.keys {
		ev, err := parseKey(name)
		if err != nil {
			return err
		}
		if !a.HandleKey(ev) {
			env.log.WithFields(map[string]any{"key": name}).Debug("key not handled")
		}
		a.Loop().Drain()
	}

	frame, ok := rec.Last()
	if !ok {
		return fmt.Errorf("nothing was rendered")
	}

	w := paint.NewWriter(out)
	if opts.ansi {
		w = paint.NewANSIWriter(out, true)
	}
	return w.Paint(frame.Text, frame.Styles)
}
