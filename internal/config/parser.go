package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	bookshelferrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

// errEmptyDocument is reported for files with no YAML or JSON content.
var errEmptyDocument = errors.New("document is empty")

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseCatalog reads the catalog document at path and validates it.
func ParseCatalog(path string) (*CatalogDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bookshelferrors.NewParseError(path, 0, err)
	}
	return ParseCatalogBytes(path, data)
}

// ParseCatalogBytes decodes and validates an in-memory document. JSON is a
// subset of YAML, so both go through the same decoder. name only labels
// errors.
func ParseCatalogBytes(name string, data []byte) (*CatalogDocument, error) {
	var doc CatalogDocument
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyDocument
		}
		return nil, bookshelferrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateCatalog(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// MarshalCatalog encodes a document as YAML with two-space indentation.
func MarshalCatalog(doc *CatalogDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// extractLine pulls the first "line N" out of a yaml.v3 error message.
func extractLine(err error) int {
	m := yamlLineRegex.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return line
}
