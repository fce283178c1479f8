package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.toml
var defaultCatalog []byte

// Format is a catalog document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document is the on-disk shape shared by every format.
type document struct {
	Courses []models.Course `toml:"courses" yaml:"courses" json:"courses"`
}

// FormatFromPath infers the [Format] from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", shared.ErrUnknownFormat, path)
	}
}

// Decode parses a catalog document.
func Decode(data []byte, format Format) (*Catalog, error) {
	var doc document
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", format, err)
	}

	return New(doc.Courses)
}

// LoadFile reads a catalog document, picking the decoder from the file extension.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Decode(data, format)
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Decode(defaultCatalog, FormatTOML)
}
