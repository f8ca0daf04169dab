package battery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk battery format. Numbers may be written as integers or
// as base-10 strings; values past 2^53 should be strings in JSON.
type File struct {
	Cases []Case `json:"cases" yaml:"cases"`
}

var (
	// ErrUnknownFormat is returned for battery files that are neither JSON nor YAML.
	ErrUnknownFormat = errors.New("unknown battery file format")

	// ErrEmptyBattery is returned when a battery file holds no cases.
	ErrEmptyBattery = errors.New("battery has no cases")
)

// Load reads a battery from a .json, .yaml or .yml file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read battery: %w", err)
	}
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("unmarshal YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyBattery)
	}
	for i := range f.Cases {
		if f.Cases[i].Name == "" {
			f.Cases[i].Name = fmt.Sprintf("case %d", i+1)
		}
	}
	return f.Cases, nil
}
