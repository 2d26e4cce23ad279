package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// setTOMLVersion rewrites the version key inside the given TOML section,
// preserving every other line of the file. A full re-marshal would drop
// comments and reorder keys, so the edit is line-based.
func setTOMLVersion(path string, section string, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := strings.Split(string(data), "\n")
	inSection := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inSection = trimmed == section
			continue
		}
		if !inSection {
			continue
		}
		key, _, found := strings.Cut(trimmed, "=")
		if found && strings.TrimSpace(key) == "version" {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[i] = fmt.Sprintf(`%sversion = "%s"`, indent, version)
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
	}
	return fmt.Errorf("no version key in the %s section of %s", section, filepath.Base(path))
}
