// Package manifest reads and writes the version field of project manifests,
// one adapter per supported ecosystem.
package manifest

// Adapter is the read/write contract for one manifest ecosystem.
type Adapter interface {
	// Name is the manifest file name probed in the project directory.
	Name() string
	// GetVersion returns the raw version string, or false when the
	// manifest is absent or carries no version.
	GetVersion(dir string) (string, bool)
	// SetVersion rewrites only the version field, leaving the rest of the
	// file untouched.
	SetVersion(dir string, version string) error
}
