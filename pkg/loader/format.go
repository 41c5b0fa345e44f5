package loader

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
)

// Format is a file encoding understood by the loaders
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
	FormatXML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".xml":
		return FormatXML, nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "cannot tell the format of %s from its extension", path).
			WithDetail("path", path)
	}
}
