package catalogsource

import (
	_ "embed"

	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
)

// EmbeddedName is the source name reported for the built-in sample catalog.
const EmbeddedName = "embedded:sample"

//go:embed sample/catalog.yaml
var sampleCatalog []byte

// Embedded returns the sample catalog compiled into the binary.
func Embedded(log *logger.Logger) *YAMLSource {
	return &YAMLSource{path: EmbeddedName, data: sampleCatalog, logger: log}
}
