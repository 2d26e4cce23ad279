// Package testutil holds helpers shared by workflow and manifest tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteCargoToml writes a minimal Cargo.toml carrying the given version.
// t is the active test; dir is the project directory.
func WriteCargoToml(t *testing.T, dir string, version string) {
	t.Helper()
	WriteFile(t, dir, "Cargo.toml", "[package]\nname = \"sample\"\nversion = \""+version+"\"\n")
}

// WritePyProject writes a minimal pyproject.toml carrying the given version.
func WritePyProject(t *testing.T, dir string, version string) {
	t.Helper()
	WriteFile(t, dir, "pyproject.toml", "[tool.poetry]\nname = \"sample\"\nversion = \""+version+"\"\n")
}

// WritePackageJSON writes a minimal package.json carrying the given version.
func WritePackageJSON(t *testing.T, dir string, version string) {
	t.Helper()
	WriteFile(t, dir, "package.json", "{\n  \"name\": \"sample\",\n  \"version\": \""+version+"\"\n}\n")
}

// WriteFile writes content to name under dir.
// t is the active test; the file is created with default permissions.
func WriteFile(t *testing.T, dir string, name string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
