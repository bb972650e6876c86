package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	catalogPath string
	pageSize    int
	theme       string
	logLevel    string
	logFile     string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Bookshelf browses a book catalog in the terminal or the browser",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the terminal browser
			return runBrowse(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default ~/.bookshelf/config.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.catalogPath, "catalog", "c", "", "Catalog file (.yaml, .json, .db); the bundled sample when empty")
	cmd.PersistentFlags().IntVar(&flags.pageSize, "page-size", 0, "Books revealed per page (overrides the catalog)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Initial theme: day or night")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newImportCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
