package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cui/internal/tui"
)

func newShopCmd(root *rootFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive storefront",
		Long:  `Open the storefront in the alternate screen. Use the arrow keys to browse, +/- to change quantities and q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("shop needs an interactive terminal; use render instead")
			}
			return runShop(cmd.Context(), root, width)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Frame width in columns (default: terminal width)")

	return cmd
}

func runShop(ctx context.Context, root *rootFlags, width int) error {
	// The alternate screen owns the terminal, so logs only reach the ring.
	env, err := loadEnvironment(root, io.Discard)
	if err != nil {
		return err
	}
	fitTerminal(env.cfg, os.Stdout, width)

	m, err := tui.NewModel(tui.Options{
		Config:  env.cfg,
		Store:   env.store,
		Logger:  env.log,
		Ring:    env.ring,
		Output:  os.Stdout,
		Context: ctx,
	})
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run storefront: %w", err)
	}

	env.log.Info("storefront closed")
	return nil
}
