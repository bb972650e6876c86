package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <book-id>",
		Short: "Show the details of one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output book details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, bookID string, opts *showOptions) error {
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return newCommandError("show", "validating book ID", errors.New("book ID cannot be empty"), "Provide the ID of the book you wish to inspect.")
	}

	appCtx, err := newAppContext(cmd, flags, logToStderr, "show")
	if err != nil {
		return err
	}
	defer appCtx.Close()

	app, err := browse.New(appCtx.Catalog, browse.RendererFunc(func([]browse.Preview, browse.Target) {}), browse.Options{Logger: appCtx.Logger})
	if err != nil {
		return newCommandError("show", "preparing the catalog", err, "Check that the catalog contains a book collection.")
	}

	app.Dispatch(browse.PreviewSelected{ID: bookID})
	detail, ok := app.Detail()
	if !ok {
		return newCommandError("show", fmt.Sprintf("looking up book %q", bookID), errors.New("no such book in the catalog"), "Run 'bookshelf list' to view book IDs.")
	}

	book, _ := app.Store().Lookup(bookID)
	genres := genreLabels(app.Catalog(), book)

	if opts.jsonOutput {
		return renderShowJSON(cmd.OutOrStdout(), detail, genres)
	}
	return renderShowText(cmd.OutOrStdout(), detail, genres)
}

type showJSONPayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
}

func renderShowJSON(out io.Writer, d browse.Detail, genres []string) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(showJSONPayload{
		ID:          d.ID,
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		Image:       d.Image,
		Description: d.Description,
		Genres:      genres,
	})
}

func renderShowText(out io.Writer, d browse.Detail, genres []string) error {
	fmt.Fprintf(out, "%s\n%s\n", d.Title, d.Subtitle)
	if len(genres) > 0 {
		fmt.Fprintf(out, "Genres: %s\n", strings.Join(genres, ", "))
	}
	if d.Image != "" {
		fmt.Fprintf(out, "Image:  %s\n", d.Image)
	}
	if d.Description != "" {
		fmt.Fprintf(out, "\n%s\n", d.Description)
	}
	return nil
}
