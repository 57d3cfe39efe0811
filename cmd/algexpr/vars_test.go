package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVars(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		src  string
		want map[string]float64
	}{
		{"toml", ".toml", "x = 1.5\ny = 2\n", map[string]float64{"x": 1.5, "y": 2}},
		{"tomlneg", ".TOML", "rate = -0.25", map[string]float64{"rate": -0.25}},
		{"yaml", ".yaml", "x: 1.5\ny: 2\n", map[string]float64{"x": 1.5, "y": 2}},
		{"yml", ".yml", "big: 12.5\n", map[string]float64{"big": 12.5}},
		{"empty", ".toml", "", map[string]float64{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parsevars(c.ext, []byte(c.src))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseVarsErrors(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		src  string
	}{
		{"ext", ".json", `{"x": 1}`},
		{"string", ".toml", `x = "one"`},
		{"table", ".toml", "[x]\ny = 1\n"},
		{"list", ".yaml", "x: [1, 2]\n"},
		{"badname", ".yaml", "1x: 1\n"},
		{"syntax", ".toml", "x = = 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parsevars(c.ext, []byte(c.src))
			assert.Error(t, err)
		})
	}
}

func TestLoadVars(t *testing.T) {
	name := filepath.Join(t.TempDir(), "vars.toml")
	require.NoError(t, os.WriteFile(name, []byte("x = 3\n"), 0o644))
	got, err := loadvars(name)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 3}, got)

	_, err = loadvars(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
