package buildinfo

import "testing"

func TestBinaryVersionDefault(t *testing.T) {
	if BinaryVersion == "" {
		t.Error("BinaryVersion must never be empty; ldflags default is \"dev\"")
	}
}

func TestModuleVersion(t *testing.T) {
	// Under `go test` the module version is typically "(devel)" or empty;
	// either way the call must not panic.
	_ = ModuleVersion()
}
