// Package pcfile models pkg-config metadata files and renders them to the
// textual .pc format. Documents are pure in-memory values: construction and
// mutation never touch the filesystem, and Render is deterministic.
package pcfile

import (
	"strings"

	"github.com/fulmenhq/pcgen/pkg/capi"
	"github.com/fulmenhq/pcgen/pkg/install"
)

// Document holds the fields of a single .pc file. Path fields are opaque
// strings and may carry unexpanded pkg-config variables such as ${prefix};
// expansion is the consumer's job, not ours.
type Document struct {
	prefix     string
	execPrefix string
	includeDir string
	libDir     string

	name        string
	description string
	version     string

	requires        []string
	requiresPrivate []string

	libs        []string
	libsPrivate []string

	cflags []string

	conflicts []string
}

// New builds a document with the conventional defaults:
//
//	prefix=/usr/local
//	exec_prefix=${prefix}
//	includedir=${prefix}/include
//	libdir=${exec_prefix}/lib
//
//	Name: <pkg_config.name>
//	Description: <pkg_config.description>
//	Version: <pkg_config.version>
//	Libs: -L${libdir} -l<library.name>
//	Cflags: -I${includedir}/<name>   (or -I${includedir} without a header subdirectory)
func New(name string, cfg *capi.Config) *Document {
	cflag := "-I${includedir}"
	if cfg.Header.Subdirectory {
		cflag = "-I${includedir}/" + name
	}
	return &Document{
		prefix:     "/usr/local",
		execPrefix: "${prefix}",
		includeDir: "${prefix}/include",
		libDir:     "${exec_prefix}/lib",

		name:        cfg.PkgConfig.Name,
		description: cfg.PkgConfig.Description,
		version:     cfg.PkgConfig.Version,

		libs:   []string{"-L${libdir} -l" + cfg.Library.Name},
		cflags: []string{cflag},
	}
}

// FromInstallPaths builds a document for a concrete install layout. The
// prefix always comes from paths; includedir and libdir are taken from
// paths only when the matching override flag is set, so the default
// ${prefix}-relative variables survive otherwise. exec_prefix stays at
// ${prefix}: custom exec prefixes are unsupported.
func FromInstallPaths(name string, paths install.Paths, ov install.Overrides, cfg *capi.Config) *Document {
	doc := New(name, cfg)
	doc.prefix = paths.Prefix
	if ov.IncludeDir {
		doc.includeDir = paths.IncludeDir
	}
	if ov.LibDir {
		doc.libDir = paths.LibDir
	}
	return doc
}

// SetDescription replaces the description.
func (d *Document) SetDescription(descr string) *Document {
	d.description = descr
	return d
}

// SetLibs replaces the whole Libs list with a single entry.
func (d *Document) SetLibs(lib string) *Document {
	d.libs = []string{lib}
	return d
}

// AddLib appends a linker flag to Libs.
func (d *Document) AddLib(lib string) *Document {
	d.libs = append(d.libs, lib)
	return d
}

// SetLibsPrivate replaces the whole Libs.private list with a single entry.
func (d *Document) SetLibsPrivate(lib string) *Document {
	d.libsPrivate = []string{lib}
	return d
}

// AddLibPrivate appends a linker flag to Libs.private.
func (d *Document) AddLibPrivate(lib string) *Document {
	d.libsPrivate = append(d.libsPrivate, lib)
	return d
}

// SetCflags replaces the whole Cflags list with a single entry.
func (d *Document) SetCflags(flag string) *Document {
	d.cflags = []string{flag}
	return d
}

// AddCflag appends a compiler flag to Cflags.
func (d *Document) AddCflag(flag string) *Document {
	d.cflags = append(d.cflags, flag)
	return d
}

// AddRequire appends a dependency package to Requires.
func (d *Document) AddRequire(pkg string) *Document {
	d.requires = append(d.requires, pkg)
	return d
}

// AddRequirePrivate appends a dependency package to Requires.private.
func (d *Document) AddRequirePrivate(pkg string) *Document {
	d.requiresPrivate = append(d.requiresPrivate, pkg)
	return d
}

// AddConflict appends a package to Conflicts.
func (d *Document) AddConflict(pkg string) *Document {
	d.conflicts = append(d.conflicts, pkg)
	return d
}

// Render produces the .pc file text. The variable block and the mandatory
// metadata lines always appear, in fixed order; Libs.private, Requires,
// Requires.private, and Conflicts appear only when non-empty. The output
// ends with exactly one newline.
func (d *Document) Render() string {
	var b strings.Builder

	b.WriteString("prefix=" + d.prefix + "\n")
	b.WriteString("exec_prefix=" + d.execPrefix + "\n")
	b.WriteString("libdir=" + d.libDir + "\n")
	b.WriteString("includedir=" + d.includeDir + "\n")
	b.WriteString("\n")
	b.WriteString("Name: " + d.name + "\n")
	b.WriteString("Description: " + d.description + "\n")
	b.WriteString("Version: " + d.version + "\n")
	b.WriteString("Libs: " + strings.Join(d.libs, " ") + "\n")
	b.WriteString("Cflags: " + strings.Join(d.cflags, " "))

	if len(d.libsPrivate) > 0 {
		b.WriteString("\nLibs.private: " + strings.Join(d.libsPrivate, " "))
	}
	if len(d.requires) > 0 {
		b.WriteString("\nRequires: " + strings.Join(d.requires, ", "))
	}
	if len(d.requiresPrivate) > 0 {
		b.WriteString("\nRequires.private: " + strings.Join(d.requiresPrivate, ", "))
	}
	if len(d.conflicts) > 0 {
		b.WriteString("\nConflicts: " + strings.Join(d.conflicts, ", "))
	}

	b.WriteString("\n")
	return b.String()
}
