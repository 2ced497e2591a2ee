// Package install resolves the filesystem locations a build installs into.
package install

import "path/filepath"

// DefaultPrefix is the conventional Unix install prefix used when the
// caller supplies nothing else.
const DefaultPrefix = "/usr/local"

// Paths holds the resolved install locations for a target system.
type Paths struct {
	Prefix     string `json:"prefix" yaml:"prefix"`
	IncludeDir string `json:"includedir" yaml:"includedir"`
	LibDir     string `json:"libdir" yaml:"libdir"`
}

// Overrides records which directories the user set explicitly. Generation
// only honors IncludeDir/LibDir from Paths when the matching flag is true;
// otherwise the pkg-config variable defaults keep pointing at ${prefix}.
type Overrides struct {
	IncludeDir bool
	LibDir     bool
}

// Resolve builds Paths from user-supplied directories. An empty prefix
// falls back to DefaultPrefix; empty includedir/libdir derive from the
// prefix the way `make install` conventions do (prefix/include, prefix/lib).
func Resolve(prefix, includedir, libdir string) Paths {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if includedir == "" {
		includedir = filepath.Join(prefix, "include")
	}
	if libdir == "" {
		libdir = filepath.Join(prefix, "lib")
	}
	return Paths{
		Prefix:     prefix,
		IncludeDir: includedir,
		LibDir:     libdir,
	}
}
