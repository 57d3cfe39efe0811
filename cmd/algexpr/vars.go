package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// loadvars reads variable definitions from a TOML or YAML file, chosen by
// extension. The file must be a flat table of names to numbers.
func loadvars(name string) (map[string]float64, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return parsevars(filepath.Ext(name), b)
}

func parsevars(ext string, b []byte) (map[string]float64, error) {
	var m map[string]any
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("couldn't read TOML variables: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("couldn't read YAML variables: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown variables file type %q (want .toml, .yaml, or .yml)", ext)
	}
	r := make(map[string]float64, len(m))
	for k, v := range m {
		if !isName(k) {
			return nil, fmt.Errorf("invalid variable name %q", k)
		}
		switch v := v.(type) {
		case float64:
			r[k] = v
		case int64:
			r[k] = float64(v)
		case int:
			r[k] = float64(v)
		case uint64:
			r[k] = float64(v)
		default:
			return nil, fmt.Errorf("variable %s: %v is not a number", k, v)
		}
	}
	return r, nil
}
