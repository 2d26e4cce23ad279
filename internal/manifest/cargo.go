package manifest

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Cargo reads the version from the [package] table of Cargo.toml.
type Cargo struct{}

type cargoManifest struct {
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
}

func (Cargo) Name() string { return "Cargo.toml" }

func (c Cargo) GetVersion(dir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, c.Name()))
	if err != nil {
		return "", false
	}
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil || m.Package.Version == "" {
		return "", false
	}
	return m.Package.Version, true
}

func (c Cargo) SetVersion(dir string, version string) error {
	return setTOMLVersion(filepath.Join(dir, c.Name()), "[package]", version)
}
