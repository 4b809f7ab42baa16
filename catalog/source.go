package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source loads the read-only catalog during bootstrap.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// StaticSource serves the built-in demo table.
type StaticSource struct{}

// Load returns the built-in catalog.
func (StaticSource) Load(context.Context) (*Catalog, error) {
	return Builtin(), nil
}

// FileSource reads catalog buckets from a YAML fixture file.
type FileSource struct {
	Path string
}

// Load parses the YAML catalog file.
func (s FileSource) Load(context.Context) (*Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read file: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse YAML: %w", err)
	}
	if len(c.Buckets) == 0 {
		return nil, fmt.Errorf("catalog: file %s contains no buckets", s.Path)
	}
	return &c, nil
}
