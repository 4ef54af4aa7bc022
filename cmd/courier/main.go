// cmd/courier/main.go
//
// Entry point for the courier panel. The root command prepares the
// .courier directory, loads preferences, and hands control to the TUI.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/curo-24/delivery-ui/internal/config"
	"github.com/curo-24/delivery-ui/internal/tui"
)

var stateDir string

var rootCmd = &cobra.Command{
	Use:   "courier",
	Short: "Terminal dashboard for delivery couriers",
	Long: `courier is a terminal panel for delivery couriers: orders, navigation,
earnings, history, and profile management in one place. All data is local
sample data; only the signed-in courier record persists between sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := stateDir
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}
			base = home
		}

		if err := config.InitPanelDir(base); err != nil {
			return fmt.Errorf("initialize %s directory: %w", config.PanelDir, err)
		}
		cfg, err := config.New(base)
		if err != nil {
			return err
		}

		p := tea.NewProgram(
			tui.NewApp(cfg),
			tea.WithAltScreen(),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run panel: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "",
		"directory holding the .courier state folder (default is $HOME)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
