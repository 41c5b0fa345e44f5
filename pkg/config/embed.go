package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// tomlBytes feeds an in-memory TOML document to koanf.
type tomlBytes []byte

func (b tomlBytes) ReadBytes() ([]byte, error) { return b, nil }

func (tomlBytes) Read() (map[string]interface{}, error) {
	return nil, errors.New("tomlBytes only supports ReadBytes")
}
