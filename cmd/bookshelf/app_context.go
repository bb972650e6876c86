package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/config"
	"github.com/alexisbeaulieu97/bookshelf/internal/infrastructure/catalogsource"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
	bookshelferrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

// AppContext bundles what a command needs once settings are resolved.
type AppContext struct {
	Settings *config.Settings
	Logger   *logger.Logger
	Catalog  *catalog.Catalog
	Source   string

	closers []io.Closer
}

// logTarget says where a command writes its logs when no log file is set.
type logTarget int

const (
	logToStderr logTarget = iota
	logDiscard
)

// newAppContext loads settings, applies flag overrides, builds the logger
// and loads the catalog.
func newAppContext(cmd *cobra.Command, flags *rootFlags, target logTarget, operation string) (*AppContext, error) {
	settings, err := loadSettings(cmd, flags)
	if err != nil {
		return nil, newCommandError(operation, "loading settings", err, "Fix the settings file or the BOOKSHELF_* environment variables.")
	}

	app := &AppContext{Settings: settings}

	log, err := app.buildLogger(cmd, target)
	if err != nil {
		return nil, newCommandError(operation, "configuring logging", err, "Use a valid --log-level and a writable --log-file.")
	}
	app.Logger = log.WithCorrelationID().WithFields(map[string]any{"command": cmd.Name()})

	src := catalogsource.Open(settings.Catalog, app.Logger)
	app.Source = src.Name()

	cat, err := src.Load(cmd.Context())
	if err != nil {
		app.Close()
		return nil, newCommandError(operation, fmt.Sprintf("loading catalog %s", app.Source), err, catalogSuggestion(err))
	}
	if settings.PageSize > 0 {
		cat.PageSize = settings.PageSize
	}
	app.Catalog = cat

	return app, nil
}

// Close releases the log file, if any.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func (a *AppContext) buildLogger(cmd *cobra.Command, target logTarget) (*logger.Logger, error) {
	var (
		writer  io.Writer
		human   bool
		noColor bool
	)

	switch {
	case a.Settings.LogFile != "":
		if err := os.MkdirAll(filepath.Dir(a.Settings.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(a.Settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, f)
		writer = f
	case target == logDiscard:
		writer = io.Discard
	default:
		writer = cmd.ErrOrStderr()
		human = true
		noColor = !supportsUnicode(writer)
	}

	return logger.New(logger.Options{Level: a.Settings.LogLevel, HumanReadable: human, NoColor: noColor, Writer: writer})
}

// loadSettings reads the settings file and environment, then lets explicitly
// set flags win.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (*config.Settings, error) {
	path := flags.configPath
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("catalog") {
		settings.Catalog = flags.catalogPath
	}
	if changed("page-size") {
		settings.PageSize = flags.pageSize
	}
	if changed("theme") {
		settings.Theme = flags.theme
	}
	if changed("log-level") {
		settings.LogLevel = flags.logLevel
	}
	if changed("log-file") {
		settings.LogFile = flags.logFile
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}

	if err := config.ValidateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func catalogSuggestion(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "Check the --catalog path, or omit it to browse the bundled sample."
	case errors.Is(err, bookshelferrors.ErrParse):
		return "Fix the syntax error reported above; JSON and YAML are both accepted."
	case errors.Is(err, bookshelferrors.ErrInvalid):
		return "Every book needs an id, a title and a published date; ids must be unique."
	case errors.Is(err, bookshelferrors.ErrSource):
		return "Recreate the database with 'bookshelf import <catalog> <file.db>'."
	default:
		return "Check the catalog and try again."
	}
}
