package releases

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/quayside-dev/stride/internal/manifest"
	"github.com/quayside-dev/stride/internal/messages"
)

// ErrNoManifest reports that no supported manifest was found in the project
// directory.
var ErrNoManifest = errors.New(messages.ReleaseNoManifest)

// adapters is the manifest probe order. It is an ordered list, not a set:
// when multiple manifests coexist the first match decides which ecosystem
// owns the version.
var adapters = []manifest.Adapter{
	manifest.Cargo{},
	manifest.PyProject{},
	manifest.PackageJSON{},
}

// PackageVersion is a version discovered from a project manifest, tagged
// with the adapter it came from so the bump can be written back to the same
// file. It is rediscovered on every bump request and never cached across
// steps.
type PackageVersion struct {
	Version *semver.Version
	source  manifest.Adapter
}

func (p PackageVersion) String() string {
	return p.Version.String()
}

// GetVersion probes the project directory for a supported manifest and
// parses its version.
func GetVersion(dir string) (PackageVersion, error) {
	for _, adapter := range adapters {
		raw, ok := adapter.GetVersion(dir)
		if !ok {
			continue
		}
		version, err := semver.NewVersion(raw)
		if err != nil {
			return PackageVersion{}, fmt.Errorf(messages.ReleaseInvalidVersionFmt, raw, adapter.Name(), err)
		}
		return PackageVersion{Version: version, source: adapter}, nil
	}
	return PackageVersion{}, ErrNoManifest
}

// setVersion writes the version back to the manifest it was discovered in.
func setVersion(dir string, pv PackageVersion) error {
	if err := pv.source.SetVersion(dir, pv.Version.String()); err != nil {
		return fmt.Errorf(messages.ReleaseWhileWritingFmt, pv.source.Name(), err)
	}
	return nil
}
