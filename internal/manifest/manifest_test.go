package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quayside-dev/stride/internal/testutil"
)

func TestCargoGetVersion(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteCargoToml(t, dir, "0.4.7")

	got, ok := Cargo{}.GetVersion(dir)
	require.True(t, ok)
	require.Equal(t, "0.4.7", got)
}

func TestCargoGetVersionMissingFile(t *testing.T) {
	_, ok := Cargo{}.GetVersion(t.TempDir())
	require.False(t, ok)
}

func TestCargoSetVersionPreservesFile(t *testing.T) {
	dir := t.TempDir()
	content := `# release manifest
[package]
name = "sample"
version = "1.0.0"
edition = "2021"

[dependencies]
serde = { version = "1.0", features = ["derive"] }
`
	testutil.WriteFile(t, dir, "Cargo.toml", content)

	require.NoError(t, Cargo{}.SetVersion(dir, "1.1.0"))

	data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	require.NoError(t, err)
	require.Contains(t, string(data), `version = "1.1.0"`)
	require.Contains(t, string(data), "# release manifest")
	// The dependency's own version key must not be touched.
	require.Contains(t, string(data), `serde = { version = "1.0", features = ["derive"] }`)
}

func TestCargoSetVersionNoVersionKey(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "Cargo.toml", "[package]\nname = \"sample\"\n")

	err := Cargo{}.SetVersion(dir, "1.0.0")
	require.Error(t, err)
}

func TestPyProjectGetVersion(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePyProject(t, dir, "2.3.4")

	got, ok := PyProject{}.GetVersion(dir)
	require.True(t, ok)
	require.Equal(t, "2.3.4", got)
}

func TestPyProjectSetVersionTargetsPoetryTable(t *testing.T) {
	dir := t.TempDir()
	content := `[build-system]
requires = ["poetry-core"]

[tool.poetry]
name = "sample"
version = "2.3.4"

[tool.poetry.dependencies]
python = "^3.11"
`
	testutil.WriteFile(t, dir, "pyproject.toml", content)

	require.NoError(t, PyProject{}.SetVersion(dir, "2.4.0"))

	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	require.NoError(t, err)
	require.Contains(t, string(data), `version = "2.4.0"`)
	require.Contains(t, string(data), `python = "^3.11"`)
}

func TestPackageJSONGetVersion(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePackageJSON(t, dir, "3.0.0-beta.1")

	got, ok := PackageJSON{}.GetVersion(dir)
	require.True(t, ok)
	require.Equal(t, "3.0.0-beta.1", got)
}

func TestPackageJSONSetVersionKeepsLayout(t *testing.T) {
	dir := t.TempDir()
	content := "{\n  \"name\": \"sample\",\n  \"version\": \"3.0.0\",\n  \"dependencies\": {\n    \"left-pad\": \"^1.3.0\"\n  }\n}\n"
	testutil.WriteFile(t, dir, "package.json", content)

	require.NoError(t, PackageJSON{}.SetVersion(dir, "3.0.1"))

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), "  \"version\": \"3.0.1\",")
	require.Contains(t, string(data), "\"left-pad\": \"^1.3.0\"")
}

func TestPackageJSONSetVersionMissingField(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "package.json", "{\n  \"name\": \"sample\"\n}\n")

	err := PackageJSON{}.SetVersion(dir, "1.0.0")
	require.Error(t, err)
}
