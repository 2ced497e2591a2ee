/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fulmenhq/pcgen/pkg/capi"
	"github.com/fulmenhq/pcgen/pkg/config"
	"github.com/fulmenhq/pcgen/pkg/install"
	"github.com/fulmenhq/pcgen/pkg/logger"
	"github.com/fulmenhq/pcgen/pkg/pcfile"
	"github.com/fulmenhq/pcgen/pkg/safeio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a pkg-config .pc file",
	Long: `Generate renders a pkg-config metadata file from a C API descriptor
(TOML or YAML) and the target install layout.

Install directories come from flags, then PCGEN_* environment variables or a
.pcgen.yaml config file, then conventional defaults. includedir and libdir
are only written into the .pc file when set explicitly; otherwise the file
keeps the ${prefix}-relative pkg-config variables.

Examples:
  pcgen generate                                  # capi.toml -> <name>.pc
  pcgen generate --config capi.yaml --prefix /usr
  pcgen generate --add-lib=-lm --add-cflag=-DNDEBUG
  pcgen generate --dry-run                        # Print to stdout`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("config", "c", "capi.toml", "C API descriptor file (.toml, .yaml, or .yml)")
	generateCmd.Flags().String("name", "", "Package name (defaults to the descriptor's pkg-config name)")
	generateCmd.Flags().String("prefix", "", "Install prefix")
	generateCmd.Flags().String("includedir", "", "Header install directory (written verbatim when set)")
	generateCmd.Flags().String("libdir", "", "Library install directory (written verbatim when set)")
	generateCmd.Flags().StringP("output", "o", "", "Output file path (defaults to <output dir>/<name>.pc)")
	generateCmd.Flags().Bool("dry-run", false, "Print the rendered file to stdout instead of writing it")

	generateCmd.Flags().String("description", "", "Override the package description")
	generateCmd.Flags().String("set-libs", "", "Replace the Libs entries with a single flag string")
	generateCmd.Flags().StringArray("add-lib", nil, "Append a linker flag to Libs (repeatable)")
	generateCmd.Flags().StringArray("add-lib-private", nil, "Append a linker flag to Libs.private (repeatable)")
	generateCmd.Flags().String("set-cflags", "", "Replace the Cflags entries with a single flag string")
	generateCmd.Flags().StringArray("add-cflag", nil, "Append a compiler flag to Cflags (repeatable)")
	generateCmd.Flags().StringSlice("requires", nil, "Dependency packages for Requires")
	generateCmd.Flags().StringSlice("requires-private", nil, "Dependency packages for Requires.private")
	generateCmd.Flags().StringSlice("conflicts", nil, "Conflicting packages for Conflicts")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	toolCfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load tool configuration: %w", err)
	}

	capiCfg, err := capi.Load(configPath)
	if err != nil {
		return err
	}

	doc, name := buildDocument(cmd.Flags(), toolCfg, capiCfg)

	rendered := doc.Render()

	if dryRun {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = filepath.Join(toolCfg.Output.Directory, name+".pc")
	}
	cleaned, err := safeio.CleanUserPath(outPath)
	if err != nil {
		return fmt.Errorf("invalid output path %s: %w", outPath, err)
	}
	if dir := filepath.Dir(cleaned); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := safeio.WriteFilePreservePerms(cleaned, []byte(rendered)); err != nil {
		return fmt.Errorf("failed to write %s: %w", cleaned, err)
	}

	logger.Info("Wrote pkg-config file", logger.String("path", cleaned), logger.String("package", name))
	return nil
}

// buildDocument assembles the metadata document from the descriptor, the
// resolved install layout, and any mutation flags.
func buildDocument(flags *pflag.FlagSet, toolCfg *config.Config, capiCfg *capi.Config) (*pcfile.Document, string) {
	name, _ := flags.GetString("name")
	if name == "" {
		name = capiCfg.PkgConfig.Name
	}

	prefix, _ := flags.GetString("prefix")
	if prefix == "" {
		prefix = toolCfg.Install.Prefix
	}
	includedir, _ := flags.GetString("includedir")
	if includedir == "" {
		includedir = toolCfg.Install.IncludeDir
	}
	libdir, _ := flags.GetString("libdir")
	if libdir == "" {
		libdir = toolCfg.Install.LibDir
	}

	// Overrides apply only when the directory was set explicitly; the
	// resolved fallback values stay out of the .pc file so the variables
	// keep tracking ${prefix}.
	ov := install.Overrides{
		IncludeDir: includedir != "",
		LibDir:     libdir != "",
	}
	paths := install.Resolve(prefix, includedir, libdir)

	doc := pcfile.FromInstallPaths(name, paths, ov, capiCfg)

	if descr, _ := flags.GetString("description"); descr != "" {
		doc.SetDescription(descr)
	}
	if libs, _ := flags.GetString("set-libs"); libs != "" {
		doc.SetLibs(libs)
	}
	if cflags, _ := flags.GetString("set-cflags"); cflags != "" {
		doc.SetCflags(cflags)
	}
	addLibs, _ := flags.GetStringArray("add-lib")
	for _, lib := range addLibs {
		doc.AddLib(lib)
	}
	addLibsPrivate, _ := flags.GetStringArray("add-lib-private")
	for _, lib := range addLibsPrivate {
		doc.AddLibPrivate(lib)
	}
	addCflags, _ := flags.GetStringArray("add-cflag")
	for _, flag := range addCflags {
		doc.AddCflag(flag)
	}
	requires, _ := flags.GetStringSlice("requires")
	for _, pkg := range requires {
		doc.AddRequire(pkg)
	}
	requiresPrivate, _ := flags.GetStringSlice("requires-private")
	for _, pkg := range requiresPrivate {
		doc.AddRequirePrivate(pkg)
	}
	conflicts, _ := flags.GetStringSlice("conflicts")
	for _, pkg := range conflicts {
		doc.AddConflict(pkg)
	}

	return doc, name
}
