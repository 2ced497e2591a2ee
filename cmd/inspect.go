/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fulmenhq/pcgen/pkg/capi"
	"github.com/fulmenhq/pcgen/pkg/config"
	"github.com/fulmenhq/pcgen/pkg/install"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the resolved C API descriptor and install layout",
	Long: `Inspect loads the C API descriptor, applies defaults, resolves the
install layout, and prints the result without generating anything.

Examples:
  pcgen inspect
  pcgen inspect --config capi.yaml --format json`,
	RunE: runInspect,
}

// inspection is the printable view of everything generate would consume.
type inspection struct {
	Config  capi.Config   `json:"config" yaml:"config"`
	Install install.Paths `json:"install" yaml:"install"`
}

func init() {
	inspectCmd.Flags().StringP("config", "c", "capi.toml", "C API descriptor file (.toml, .yaml, or .yml)")
	inspectCmd.Flags().String("format", "text", "Output format (text|json|yaml)")
	inspectCmd.Flags().String("prefix", "", "Install prefix")
	inspectCmd.Flags().String("includedir", "", "Header install directory")
	inspectCmd.Flags().String("libdir", "", "Library install directory")
}

func runInspect(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("format")

	toolCfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load tool configuration: %w", err)
	}

	capiCfg, err := capi.Load(configPath)
	if err != nil {
		return err
	}

	prefix, _ := cmd.Flags().GetString("prefix")
	if prefix == "" {
		prefix = toolCfg.Install.Prefix
	}
	includedir, _ := cmd.Flags().GetString("includedir")
	if includedir == "" {
		includedir = toolCfg.Install.IncludeDir
	}
	libdir, _ := cmd.Flags().GetString("libdir")
	if libdir == "" {
		libdir = toolCfg.Install.LibDir
	}

	view := inspection{
		Config:  *capiCfg,
		Install: install.Resolve(prefix, includedir, libdir),
	}

	out := cmd.OutOrStdout()

	switch format {
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %v", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("failed to format YAML: %v", err)
		}
		fmt.Fprint(out, string(data))
	case "text":
		fmt.Fprintf(out, "Package: %s\n", view.Config.PkgConfig.Name)
		fmt.Fprintf(out, "Description: %s\n", view.Config.PkgConfig.Description)
		fmt.Fprintf(out, "Version: %s\n", view.Config.PkgConfig.Version)
		fmt.Fprintf(out, "Library: %s\n", view.Config.Library.Name)
		fmt.Fprintf(out, "Header: %s (subdirectory: %v)\n", view.Config.Header.Name, view.Config.Header.Subdirectory)
		fmt.Fprintf(out, "Prefix: %s\n", view.Install.Prefix)
		fmt.Fprintf(out, "Includedir: %s\n", view.Install.IncludeDir)
		fmt.Fprintf(out, "Libdir: %s\n", view.Install.LibDir)
	default:
		return fmt.Errorf("unknown format: %s (expected text, json, or yaml)", format)
	}

	return nil
}
