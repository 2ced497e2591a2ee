package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestInspect_Text(t *testing.T) {
	path := writeDescriptor(t, fooDescriptor)

	out, err := execRoot(t, []string{"inspect", "--config", path, "--format", "text"})
	if err != nil {
		t.Fatalf("inspect failed: %v\n%s", err, out)
	}

	checks := []string{
		"Package: foo",
		"Version: 0.1",
		"Library: foo",
		"Prefix: /usr/local",
		"Includedir: /usr/local/include",
		"Libdir: /usr/local/lib",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInspect_JSON(t *testing.T) {
	path := writeDescriptor(t, fooDescriptor)

	out, err := execRoot(t, []string{"inspect", "--config", path, "--format", "json"})
	if err != nil {
		t.Fatalf("inspect --format json failed: %v\n%s", err, out)
	}

	var v struct {
		Config struct {
			PkgConfig struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"pkg_config"`
		} `json:"config"`
		Install struct {
			Prefix string `json:"prefix"`
		} `json:"install"`
	}
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("inspect output is not valid JSON: %v\n%s", err, out)
	}
	if v.Config.PkgConfig.Name != "foo" {
		t.Errorf("pkg_config.name = %q, expected foo", v.Config.PkgConfig.Name)
	}
	if v.Config.PkgConfig.Version != "0.1" {
		t.Errorf("pkg_config.version = %q, expected 0.1", v.Config.PkgConfig.Version)
	}
	if v.Install.Prefix != "/usr/local" {
		t.Errorf("install.prefix = %q, expected /usr/local", v.Install.Prefix)
	}
}

func TestInspect_YAML(t *testing.T) {
	path := writeDescriptor(t, fooDescriptor)

	out, err := execRoot(t, []string{"inspect", "--config", path, "--format", "yaml"})
	if err != nil {
		t.Fatalf("inspect --format yaml failed: %v\n%s", err, out)
	}

	var v map[string]any
	if err := yaml.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("inspect output is not valid YAML: %v\n%s", err, out)
	}
	if _, ok := v["config"]; !ok {
		t.Errorf("expected config key in YAML output:\n%s", out)
	}
	if _, ok := v["install"]; !ok {
		t.Errorf("expected install key in YAML output:\n%s", out)
	}
}

func TestInspect_UnknownFormat(t *testing.T) {
	path := writeDescriptor(t, fooDescriptor)

	out, err := execRoot(t, []string{"inspect", "--config", path, "--format", "xml"})
	if err == nil {
		t.Fatalf("expected error for unknown format, got:\n%s", out)
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("unexpected error: %v", err)
	}
}
