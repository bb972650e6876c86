package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/tui/browser"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Long:  `Launch the interactive terminal browser. Logs are discarded unless --log-file is set.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags, logDiscard, "browse")
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Logger
	log.WithFields(map[string]any{"source": app.Source}).Info("launching browser")

	m, err := browser.NewModel(app.Catalog, browser.Options{
		PrefersDark: prefersDark(app.Settings.Theme, lipgloss.HasDarkBackground),
		UseUnicode:  supportsUnicode(cmd.OutOrStdout()),
		Logger:      log,
	})
	if err != nil {
		return newCommandError("browse", "starting the browser", err, "Check that the catalog contains a book collection.")
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	log.Info("browser closed")
	return nil
}

// prefersDark resolves the initial theme: an explicit setting wins,
// otherwise the terminal background is probed.
func prefersDark(theme string, probe func() bool) bool {
	switch theme {
	case "night":
		return true
	case "day":
		return false
	default:
		return probe != nil && probe()
	}
}
