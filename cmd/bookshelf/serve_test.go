package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog/catalogtest"
	"github.com/alexisbeaulieu97/bookshelf/internal/config"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
)

func TestNewWebServer_ServesCatalog(t *testing.T) {
	appCtx := &AppContext{
		Settings: config.DefaultSettings(),
		Logger:   logger.Nop(),
		Catalog:  catalogtest.Generate(42, 0),
	}

	srv, err := newWebServer(appCtx, &serveOptions{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Showing 42 of 42 books")
}

func TestNewWebServer_RequiresCatalog(t *testing.T) {
	_, err := newWebServer(&AppContext{Settings: config.DefaultSettings(), Logger: logger.Nop()}, &serveOptions{listen: "127.0.0.1:0"})
	require.Error(t, err)
}

func TestServeCommand_RejectsInvalidListen(t *testing.T) {
	home := setupHome(t)
	writeSettingsFile(t, home, "listen: nowhere\n")

	_, _, err := executeCommand("serve")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to serve: loading settings")
}

func TestNewWebServer_UsesConfiguredTheme(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Theme = "night"
	appCtx := &AppContext{Settings: settings, Logger: logger.Nop(), Catalog: catalogtest.Generate(3, 0)}

	srv, err := newWebServer(appCtx, &serveOptions{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Contains(t, rec.Body.String(), `data-theme="night"`)
}
