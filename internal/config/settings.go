package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	bookshelferrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

// EnvPrefix is the prefix of environment overrides, e.g. BOOKSHELF_PAGE_SIZE.
const EnvPrefix = "BOOKSHELF_"

// Settings are the user-level options shared by every command.
type Settings struct {
	// Catalog is a YAML/JSON catalog file or a SQLite database. Empty means
	// the embedded sample catalog.
	Catalog  string `koanf:"catalog"`
	PageSize int    `koanf:"page_size" validate:"omitempty,min=1,max=500"`
	Theme    string `koanf:"theme" validate:"omitempty,oneof=day night"`
	Listen   string `koanf:"listen" validate:"required,hostname_port"`
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=trace debug info warn warning error"`
	LogFile  string `koanf:"log_file"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Listen:   "127.0.0.1:8036",
		LogLevel: "info",
	}
}

// LoadSettings reads the YAML settings file when it exists, then overlays
// BOOKSHELF_* environment variables.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")
	s := DefaultSettings()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, bookshelferrors.NewParseError(path, extractLine(err), err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing settings %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("unmarshalling settings: %w", err)
	}

	if err := ValidateSettings(s); err != nil {
		return nil, err
	}

	return s, nil
}
