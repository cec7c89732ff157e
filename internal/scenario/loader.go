package scenario

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseError represents an error while parsing a scenario file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// file is the on-disk shape: one or more scenarios per script.
type file struct {
	Scenarios []Scenario `yaml:"scenarios" toml:"scenarios"`
}

// Load reads and validates the scenarios in a script file. The format
// is chosen by extension: .yaml/.yml or .toml.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("scenario file %s: unsupported extension %q",
			path, filepath.Ext(path))
	}

	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s: no scenarios", path)
	}
	for i := range f.Scenarios {
		if err := f.Scenarios[i].Validate(); err != nil {
			return nil, fmt.Errorf("scenario file %s: %w", path, err)
		}
	}
	return f.Scenarios, nil
}

// LoadReader reads YAML scenarios from a reader, for sources without a
// file name.
func LoadReader(r io.Reader) ([]Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Path: "<reader>", Message: err.Error(), Err: err}
	}
	for i := range f.Scenarios {
		if err := f.Scenarios[i].Validate(); err != nil {
			return nil, err
		}
	}
	return f.Scenarios, nil
}
