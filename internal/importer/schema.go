// Package importer reads and writes YAML project files and converts them to
// and from domain schedule items.
package importer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Schema is the YAML project file layout.
type Schema struct {
	Project ProjectSchema `yaml:"project"`
	Items   []ItemSchema  `yaml:"items"`
}

type ProjectSchema struct {
	Name string `yaml:"name"`
}

// ItemSchema describes one schedulable row. Refs are file-local handles;
// Convert replaces them with generated ids.
type ItemSchema struct {
	Ref       string   `yaml:"ref"`
	Title     string   `yaml:"title"`
	Kind      string   `yaml:"kind,omitempty"`
	Start     string   `yaml:"start"`
	End       string   `yaml:"end"`
	Progress  int      `yaml:"progress,omitempty"`
	DependsOn []string `yaml:"depends_on,omitempty"`
}

// Parse decodes a schema from YAML.
func Parse(r io.Reader) (*Schema, error) {
	var s Schema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding project file: %w", err)
	}
	return &s, nil
}

// Write encodes a schema as YAML.
func Write(w io.Writer, s *Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding project file: %w", err)
	}
	return enc.Close()
}
