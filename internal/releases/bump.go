package releases

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/quayside-dev/stride/internal/messages"
)

// ErrPrereleaseStuck reports an existing prerelease that is not in the
// label.N shape this tool produces. Anything else is treated as
// unrecoverable rather than guessed at.
var ErrPrereleaseStuck = errors.New(messages.ReleasePrereleaseStuck)

// Bump applies a rule to a version, incrementing and resetting the correct
// components. It is pure: no manifest I/O happens here.
//
// Versions with major component 0 are pre-stable in SemVer, so the normal
// major boundary has no meaning yet: Major bumps the minor component and
// Minor bumps the patch component.
func Bump(version *semver.Version, rule Rule) (*semver.Version, error) {
	isZero := version.Major() == 0
	switch r := rule.(type) {
	case Major:
		if isZero {
			return numeric(version, version.Major(), version.Minor()+1, 0), nil
		}
		return numeric(version, version.Major()+1, 0, 0), nil
	case Minor:
		if isZero {
			return numeric(version, version.Major(), version.Minor(), version.Patch()+1), nil
		}
		return numeric(version, version.Major(), version.Minor()+1, 0), nil
	case Patch:
		return numeric(version, version.Major(), version.Minor(), version.Patch()+1), nil
	case Release:
		return numeric(version, version.Major(), version.Minor(), version.Patch()), nil
	case Pre:
		return bumpPre(version, r.Label, r.Fallback)
	default:
		return nil, fmt.Errorf("unhandled rule %T", rule)
	}
}

// numeric builds a version with the given components, no prerelease, and the
// original build metadata.
func numeric(version *semver.Version, major, minor, patch uint64) *semver.Version {
	return semver.New(major, minor, patch, "", version.Metadata())
}

// bumpPre increments the prerelease component.
//
// Without an existing prerelease, the fallback rule bumps the numeric
// components first and the prerelease starts at label.0. An existing
// prerelease must be exactly "label.N": a differing label resets the counter,
// a matching one increments it, and any other shape is a hard error.
func bumpPre(version *semver.Version, label string, fallback ConventionalRule) (*semver.Version, error) {
	if version.Prerelease() == "" {
		bumped, err := Bump(version, fallback.Rule())
		if err != nil {
			return nil, err
		}
		return withPrerelease(bumped, label+".0")
	}

	parts := strings.Split(version.Prerelease(), ".")
	if len(parts) != 2 {
		return nil, ErrPrereleaseStuck
	}
	if parts[0] != label {
		return withPrerelease(version, label+".0")
	}
	n, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrPrereleaseStuck, parts[1])
	}
	return withPrerelease(version, fmt.Sprintf("%s.%d", label, n+1))
}

func withPrerelease(version *semver.Version, pre string) (*semver.Version, error) {
	next, err := version.SetPrerelease(pre)
	if err != nil {
		return nil, err
	}
	return &next, nil
}
