package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

type filterOptions struct {
	title  string
	author string
	genre  string
}

func (f filterOptions) criteria() catalog.Criteria {
	return catalog.Criteria{Title: f.title, Author: f.author, Genre: f.genre}.Normalized()
}

func (f *filterOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Case-insensitive title substring")
	cmd.Flags().StringVarP(&f.author, "author", "a", "", "Author id (see --authors)")
	cmd.Flags().StringVarP(&f.genre, "genre", "g", "", "Genre id (see --genres)")
}

type listOptions struct {
	filters    filterOptions
	pages      int
	all        bool
	jsonOutput bool
	authors    bool
	genres     bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog books page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	opts.filters.register(cmd)
	cmd.Flags().IntVarP(&opts.pages, "page", "p", 1, "Number of pages to reveal")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Reveal every match")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.authors, "authors", false, "List author ids instead of books")
	cmd.Flags().BoolVar(&opts.genres, "genres", false, "List genre ids instead of books")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	appCtx, err := newAppContext(cmd, flags, logToStderr, "list")
	if err != nil {
		return err
	}
	defer appCtx.Close()

	switch {
	case opts.authors:
		return renderOptions(cmd.OutOrStdout(), appCtx.Catalog.AuthorOptions())
	case opts.genres:
		return renderOptions(cmd.OutOrStdout(), appCtx.Catalog.GenreOptions())
	}

	list := &browse.ListRenderer{}
	app, err := browse.New(appCtx.Catalog, list, browse.Options{Logger: appCtx.Logger})
	if err != nil {
		return newCommandError("list", "preparing the catalog", err, "Check that the catalog contains a book collection.")
	}

	if c := opts.filters.criteria(); !c.IsZero() {
		app.Dispatch(browse.SubmitSearch{Criteria: c})
	}
	for page := 1; (opts.all || page < opts.pages) && app.Button().Enabled; page++ {
		app.Dispatch(browse.RequestNextPage{})
	}

	if opts.jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), app, list.Items())
	}

	if app.NoResults() {
		fmt.Fprintln(cmd.OutOrStdout(), "No results found. Your filters might be too narrow.")
		return nil
	}

	return renderListTable(cmd.OutOrStdout(), app, list.Items())
}

func renderListTable(out io.Writer, app *browse.App, items []browse.Preview) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	useUnicode := supportsUnicode(out)
	cat := app.Catalog()

	fmt.Fprintln(writer, "ID\tTITLE\tAUTHOR\tYEAR\tGENRES")
	for _, p := range items {
		book, _ := app.Store().Lookup(p.ID)
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			p.ID,
			truncate(p.Title, 48, useUnicode),
			valueOrFallback(p.Author, "(unknown)"),
			book.Published.Year(),
			strings.Join(genreLabels(cat, book), genreSeparator(useUnicode)),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	btn := app.Button()
	fmt.Fprintf(out, "\nShowing %d of %d books.", len(items), len(app.Store().Matches()))
	if btn.Enabled {
		fmt.Fprintf(out, " %s: rerun with --page %d or --all.", btn.Label(), app.Store().Page()+1)
	}
	fmt.Fprintln(out)
	return nil
}

type listJSONBook struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Image     string   `json:"image,omitempty"`
	Published string   `json:"published"`
	Genres    []string `json:"genres"`
}

type listJSONPayload struct {
	Version   string         `json:"version"`
	Count     int            `json:"count"`
	Total     int            `json:"total"`
	Remaining int            `json:"remaining"`
	Books     []listJSONBook `json:"books"`
}

func renderListJSON(out io.Writer, app *browse.App, items []browse.Preview) error {
	payload := listJSONPayload{
		Version:   "1.0",
		Count:     len(items),
		Total:     len(app.Store().Matches()),
		Remaining: app.RemainingCount(),
		Books:     make([]listJSONBook, 0, len(items)),
	}

	for _, p := range items {
		book, _ := app.Store().Lookup(p.ID)
		payload.Books = append(payload.Books, listJSONBook{
			ID:        p.ID,
			Title:     p.Title,
			Author:    p.Author,
			Image:     p.Image,
			Published: book.Published.Format("2006-01-02"),
			Genres:    genreLabels(app.Catalog(), book),
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderOptions(out io.Writer, opts []catalog.Option) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME")
	for _, o := range opts {
		fmt.Fprintf(writer, "%s\t%s\n", o.Value, o.Label)
	}
	return writer.Flush()
}

func genreLabels(cat *catalog.Catalog, book catalog.Book) []string {
	labels := make([]string, 0, len(book.Genres))
	for _, g := range book.Genres {
		labels = append(labels, valueOrFallback(cat.GenreName(g), g))
	}
	return labels
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func genreSeparator(useUnicode bool) string {
	if useUnicode {
		return " · "
	}
	return ", "
}

func truncate(s string, max int, useUnicode bool) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if useUnicode {
		return string(runes[:max-1]) + "…"
	}
	return string(runes[:max-3]) + "..."
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
