package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookshelf/internal/web"
)

type serveOptions struct {
	listen   string
	allowAll bool
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog browser over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.listen, "listen", "l", "", "Listen address (default from settings, 127.0.0.1:8036)")
	cmd.Flags().BoolVar(&opts.allowAll, "cors-allow-all", false, "Allow cross-origin requests from any origin")

	return cmd
}

func runServe(cmd *cobra.Command, flags *rootFlags, opts *serveOptions) error {
	appCtx, err := newAppContext(cmd, flags, logToStderr, "serve")
	if err != nil {
		return err
	}
	defer appCtx.Close()

	srv, err := newWebServer(appCtx, opts)
	if err != nil {
		return newCommandError("serve", "preparing the web server", err, "Check that the catalog contains a book collection.")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return newCommandError("serve", "listening for requests", err, "Choose a free address with --listen.")
	case <-ctx.Done():
	}

	appCtx.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newWebServer(appCtx *AppContext, opts *serveOptions) (*web.Server, error) {
	listen := appCtx.Settings.Listen
	if opts.listen != "" {
		listen = opts.listen
	}
	return web.New(web.Config{Listen: listen, AllowAll: opts.allowAll, Theme: appCtx.Settings.Theme}, appCtx.Catalog, appCtx.Logger)
}
