// SPDX-License-Identifier: MIT

package parameters

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the sectioned YAML layout.
type document struct {
	Defaults   map[string]float64 `yaml:"defaults"`
	Parameters map[string]float64 `yaml:"parameters"`
}

// LoadYAML reads a Set from r.
//
// Implementation:
//   - Stage 1: decode into a generic mapping to detect the layout.
//   - Stage 2: sectioned documents (defaults/parameters) go through New;
//     a flat mapping is taken as parameters without defaults.
//   - Stage 3: reject NaN/±Inf values (ErrInvalidValue).
func LoadYAML(r io.Reader) (*Set, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parameters: read: %w", err)
	}

	var probe map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parameters: decode: %w", err)
	}

	_, hasDefaults := probe["defaults"]
	_, hasParams := probe["parameters"]

	var doc document
	if hasDefaults || hasParams {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parameters: decode sections: %w", err)
		}
	} else if err := yaml.Unmarshal(raw, &doc.Parameters); err != nil {
		return nil, fmt.Errorf("parameters: decode flat mapping: %w", err)
	}

	if err := validateFinite(doc.Defaults); err != nil {
		return nil, fmt.Errorf("parameters: defaults: %w", err)
	}
	if err := validateFinite(doc.Parameters); err != nil {
		return nil, fmt.Errorf("parameters: %w", err)
	}

	return New(doc.Parameters, doc.Defaults), nil
}

// LoadYAMLFile opens path and delegates to LoadYAML.
func LoadYAMLFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parameters: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}
