// Package ingest reads sensor packages and runs them through the calculator.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package is one raw sensor reading: a type code and its positional values.
type Package struct {
	Type string    `json:"type" yaml:"type"`
	Data []float64 `json:"data" yaml:"data"`
}

// Format is the encoding of a package file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DemoPackages returns the packages bundled with the demo driver.
func DemoPackages() []Package {
	return []Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown package file extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
}

// Parse decodes a list of packages. Both formats hold a top-level sequence:
//
//	- type: RUN
//	  data: [15000, 1, 75]
func Parse(r io.Reader, format Format) ([]Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading packages: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var pkgs []Package
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &pkgs); err != nil {
			return nil, fmt.Errorf("parsing YAML packages: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &pkgs); err != nil {
			return nil, fmt.Errorf("parsing JSON packages: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported package format %q", format)
	}
	return pkgs, nil
}

// LoadFile reads a package list from a .yaml, .yml or .json file.
func LoadFile(path string) ([]Package, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening package file: %w", err)
	}
	defer f.Close()

	return Parse(f, format)
}
