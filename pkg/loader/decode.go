package loader

import (
	"bytes"
	"encoding/json"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/rbedit/pkg/errors"
)

// decodeMap decodes a TOML, YAML or JSON document whose top level is a table
func decodeMap(data []byte, format Format, code errors.ErrorCode) (map[string]interface{}, error) {
	out := map[string]interface{}{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, errors.Wrap(err, code, "failed to parse TOML")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, errors.Wrap(err, code, "failed to parse YAML")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&out); err != nil {
			return nil, errors.Wrap(err, code, "failed to parse JSON")
		}
	default:
		return nil, errors.Newf(code, "%s documents cannot be decoded as a table", format)
	}

	return out, nil
}
