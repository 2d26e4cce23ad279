package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// PackageJSON reads the top-level version field of package.json.
type PackageJSON struct{}

type packageJSONManifest struct {
	Version string `json:"version"`
}

var packageJSONVersionRe = regexp.MustCompile(`"version"\s*:\s*"[^"]*"`)

func (PackageJSON) Name() string { return "package.json" }

func (p PackageJSON) GetVersion(dir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, p.Name()))
	if err != nil {
		return "", false
	}
	var m packageJSONManifest
	if err := json.Unmarshal(data, &m); err != nil || m.Version == "" {
		return "", false
	}
	return m.Version, true
}

// SetVersion rewrites the version value in place. A decode/encode round trip
// would reorder keys and normalize whitespace, so the field is patched with a
// targeted replacement instead.
func (p PackageJSON) SetVersion(dir string, version string) error {
	path := filepath.Join(dir, p.Name())
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !packageJSONVersionRe.Match(data) {
		return fmt.Errorf("no version field in %s", p.Name())
	}
	replaced := false
	data = packageJSONVersionRe.ReplaceAllFunc(data, func(match []byte) []byte {
		if replaced {
			return match
		}
		replaced = true
		return []byte(fmt.Sprintf(`"version": "%s"`, version))
	})
	return os.WriteFile(path, data, 0o644)
}
