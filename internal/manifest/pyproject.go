package manifest

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// PyProject reads the version from the [tool.poetry] table of pyproject.toml.
type PyProject struct{}

type pyprojectManifest struct {
	Tool struct {
		Poetry struct {
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func (PyProject) Name() string { return "pyproject.toml" }

func (p PyProject) GetVersion(dir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, p.Name()))
	if err != nil {
		return "", false
	}
	var m pyprojectManifest
	if err := toml.Unmarshal(data, &m); err != nil || m.Tool.Poetry.Version == "" {
		return "", false
	}
	return m.Tool.Poetry.Version, true
}

func (p PyProject) SetVersion(dir string, version string) error {
	return setTOMLVersion(filepath.Join(dir, p.Name()), "[tool.poetry]", version)
}
