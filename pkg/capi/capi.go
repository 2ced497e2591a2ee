// Package capi models the C API descriptor a library build exposes:
// header layout, pkg-config identity, and the produced library itself.
package capi

import (
	"fmt"
	"regexp"
	"strings"
)

// Config describes the C-compatible surface of a library build.
type Config struct {
	Header    HeaderConfig    `toml:"header" yaml:"header" json:"header"`
	PkgConfig PkgConfigConfig `toml:"pkg_config" yaml:"pkg_config" json:"pkg_config"`
	Library   LibraryConfig   `toml:"library" yaml:"library" json:"library"`
}

// HeaderConfig describes how the public header is installed.
type HeaderConfig struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	// Subdirectory places the header under includedir/<name>/ instead of
	// directly in includedir.
	Subdirectory bool `toml:"subdirectory" yaml:"subdirectory" json:"subdirectory"`
	Generation   bool `toml:"generation" yaml:"generation" json:"generation"`
}

// PkgConfigConfig carries the identity fields emitted into the .pc file.
type PkgConfigConfig struct {
	Name        string `toml:"name" yaml:"name" json:"name"`
	Description string `toml:"description" yaml:"description" json:"description"`
	Version     string `toml:"version" yaml:"version" json:"version"`
}

// LibraryConfig describes the built library artifact.
type LibraryConfig struct {
	Name    string `toml:"name" yaml:"name" json:"name"`
	Version string `toml:"version" yaml:"version" json:"version"`
}

var versionPattern = regexp.MustCompile(`^v?(\d+)(\.\d+)*(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)

// ApplyDefaults fills fields that derive from the library sub-config:
// header and pkg-config names default to the library name, and the
// pkg-config version defaults to the library version.
func (c *Config) ApplyDefaults() {
	if c.Header.Name == "" {
		c.Header.Name = c.Library.Name
	}
	if c.PkgConfig.Name == "" {
		c.PkgConfig.Name = c.Library.Name
	}
	if c.PkgConfig.Version == "" {
		c.PkgConfig.Version = c.Library.Version
	}
}

// Validate checks that the descriptor is complete enough to generate
// metadata from. Description may be empty; pkg-config tolerates it.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Library.Name) == "" {
		return fmt.Errorf("library name is required")
	}
	if strings.TrimSpace(c.PkgConfig.Version) == "" {
		return fmt.Errorf("version is required (set library.version or pkg_config.version)")
	}
	if !versionPattern.MatchString(strings.TrimSpace(c.PkgConfig.Version)) {
		return fmt.Errorf("invalid version %q: expected dotted numeric form", c.PkgConfig.Version)
	}
	return nil
}
