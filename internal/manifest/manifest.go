// Package manifest reads the subset of Cargo.toml that cratekit inspects.
// Scaffolding itself patches the manifest textually; this parser backs the
// doctor diagnostics.
package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// CargoManifest mirrors the fields of Cargo.toml that cratekit cares about.
type CargoManifest struct {
	Package Package `toml:"package"`
}

// Package is the [package] table of a Cargo.toml.
type Package struct {
	Name       string   `toml:"name"`
	Version    string   `toml:"version"`
	Edition    string   `toml:"edition"`
	License    string   `toml:"license"`
	Authors    []string `toml:"authors"`
	Repository string   `toml:"repository"`
}

// Parse reads and decodes a Cargo.toml file.
func Parse(path string) (*CargoManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m CargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("manifest %s has no [package] name", path)
	}
	return &m, nil
}
