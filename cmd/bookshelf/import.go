package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/config"
	"github.com/alexisbeaulieu97/bookshelf/internal/infrastructure/catalogsource"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
	"github.com/alexisbeaulieu97/bookshelf/pkg/diff"
)

// sampleSource names the bundled catalog on the command line.
const sampleSource = "sample"

type importOptions struct {
	dryRun bool
}

func newImportCmd(flags *rootFlags) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <source> <destination>",
		Short: "Copy a catalog into a SQLite database or a YAML document",
		Long: `Copy a catalog between formats. The destination format follows its
extension: .db, .sqlite and .sqlite3 write a SQLite database, anything else
a YAML document. Use "sample" as the source to copy the bundled catalog.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, flags, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview the changes to the destination without writing it")

	return cmd
}

func runImport(cmd *cobra.Command, flags *rootFlags, source, dest string, opts *importOptions) error {
	// The source argument replaces --catalog for this command.
	sourcePath := source
	if source == sampleSource {
		sourcePath = ""
	}
	if err := cmd.Flags().Set("catalog", sourcePath); err != nil {
		return newCommandError("import", "selecting the source", err, "Pass the source catalog as the first argument.")
	}

	appCtx, err := newAppContext(cmd, flags, logToStderr, "import")
	if err != nil {
		return err
	}
	defer appCtx.Close()

	log := appCtx.Logger.WithFields(map[string]any{"source": appCtx.Source, "destination": dest})
	out := cmd.OutOrStdout()

	if opts.dryRun {
		return previewImport(cmd, log, out, appCtx.Catalog, dest)
	}

	if catalogsource.IsDatabase(dest) {
		if err := catalogsource.Save(cmd.Context(), dest, appCtx.Catalog); err != nil {
			return newCommandError("import", fmt.Sprintf("writing %s", dest), err, "Check that the destination directory is writable.")
		}
	} else {
		data, err := config.MarshalCatalog(catalogsource.FromCatalog(appCtx.Catalog))
		if err != nil {
			return newCommandError("import", "encoding the catalog", err, "Report this catalog as a bug.")
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return newCommandError("import", fmt.Sprintf("creating %s", filepath.Dir(dest)), err, "Check that the destination directory is writable.")
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return newCommandError("import", fmt.Sprintf("writing %s", dest), err, "Check that the destination directory is writable.")
		}
	}

	log.WithFields(map[string]any{"books": len(appCtx.Catalog.Books)}).Info("catalog imported")
	fmt.Fprintf(out, "Imported %d books from %s into %s\n", len(appCtx.Catalog.Books), appCtx.Source, dest)
	return nil
}

// previewImport compares the YAML rendition of the destination's current
// contents with what the import would write. A missing destination compares
// against nothing.
func previewImport(cmd *cobra.Command, log *logger.Logger, out io.Writer, cat *catalog.Catalog, dest string) error {
	next, err := config.MarshalCatalog(catalogsource.FromCatalog(cat))
	if err != nil {
		return newCommandError("import", "encoding the catalog", err, "Report this catalog as a bug.")
	}

	var current []byte
	if _, statErr := os.Stat(dest); statErr == nil {
		existing, err := catalogsource.Open(dest, log).Load(cmd.Context())
		if err != nil {
			return newCommandError("import", fmt.Sprintf("reading %s", dest), err, catalogSuggestion(err))
		}
		if current, err = config.MarshalCatalog(catalogsource.FromCatalog(existing)); err != nil {
			return newCommandError("import", "encoding the destination", err, "Report this catalog as a bug.")
		}
	}

	preview, summary := diff.Lines(current, next, dest, dest+" (after import)")
	log.WithFields(map[string]any{"added": summary.Added, "removed": summary.Removed}).Debug("import previewed")

	if !summary.Changed() {
		fmt.Fprintf(out, "No changes: %s already matches the source.\n", dest)
		return nil
	}

	fmt.Fprint(out, preview)
	fmt.Fprintf(out, "\n%s lines; rerun without --dry-run to write %s.\n", summary, dest)
	return nil
}
