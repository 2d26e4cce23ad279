package releases

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/require"
)

func mustVersion(t *testing.T, raw string) *semver.Version {
	t.Helper()
	v, err := semver.NewVersion(raw)
	require.NoError(t, err)
	return v
}

func TestBumpMajor(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.2.3"), Major{})
	require.NoError(t, err)
	require.Equal(t, "2.0.0", got.String())
}

func TestBumpMajorOnZero(t *testing.T) {
	// The 0.x line is pre-stable, so Major demotes to a minor bump.
	got, err := Bump(mustVersion(t, "0.1.2"), Major{})
	require.NoError(t, err)
	require.Equal(t, "0.2.0", got.String())
}

func TestBumpMinor(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.2.3"), Minor{})
	require.NoError(t, err)
	require.Equal(t, "1.3.0", got.String())
}

func TestBumpMinorOnZero(t *testing.T) {
	got, err := Bump(mustVersion(t, "0.1.2"), Minor{})
	require.NoError(t, err)
	require.Equal(t, "0.1.3", got.String())
}

func TestBumpPatch(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.2.3"), Patch{})
	require.NoError(t, err)
	require.Equal(t, "1.2.4", got.String())
}

func TestBumpPatchOnZero(t *testing.T) {
	// Patch is already the lowest severity, 0.x changes nothing.
	got, err := Bump(mustVersion(t, "0.1.2"), Patch{})
	require.NoError(t, err)
	require.Equal(t, "0.1.3", got.String())
}

func TestBumpClearsPrerelease(t *testing.T) {
	for rule, want := range map[Rule]string{
		Major{}: "2.0.0",
		Minor{}: "1.3.0",
		Patch{}: "1.2.4",
	} {
		got, err := Bump(mustVersion(t, "1.2.3-rc.4"), rule)
		require.NoError(t, err)
		require.Equal(t, want, got.String())
	}
}

func TestBumpRelease(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.2.3-rc.0"), Release{})
	require.NoError(t, err)
	require.Equal(t, "1.2.3", got.String())
}

func TestBumpReleaseIsIdempotent(t *testing.T) {
	// Stripping a prerelease that is not there leaves the numbers alone.
	got, err := Bump(mustVersion(t, "1.2.3"), Release{})
	require.NoError(t, err)
	require.Equal(t, "1.2.3", got.String())
}

func TestBumpPreFirst(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.2.3"), Pre{Label: "rc", Fallback: ConventionalMinor})
	require.NoError(t, err)
	require.Equal(t, "1.3.0-rc.0", got.String())
}

func TestBumpPreIncrement(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.3.0-rc.0"), Pre{Label: "rc", Fallback: ConventionalMinor})
	require.NoError(t, err)
	require.Equal(t, "1.3.0-rc.1", got.String())
}

func TestBumpPreNewLabelResetsCounter(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.3.0-rc.4"), Pre{Label: "beta", Fallback: ConventionalMinor})
	require.NoError(t, err)
	require.Equal(t, "1.3.0-beta.0", got.String())
}

func TestBumpPreDefaultFallbackIsPatch(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.2.3"), Pre{Label: "rc"})
	require.NoError(t, err)
	require.Equal(t, "1.2.4-rc.0", got.String())
}

func TestBumpPreZeroMajorFallback(t *testing.T) {
	// The fallback bump obeys the 0.x demotion too.
	got, err := Bump(mustVersion(t, "0.1.2"), Pre{Label: "rc", Fallback: ConventionalMajor})
	require.NoError(t, err)
	require.Equal(t, "0.2.0-rc.0", got.String())
}

func TestBumpPreTooManyParts(t *testing.T) {
	_, err := Bump(mustVersion(t, "1.2.3-rc.0.extra"), Pre{Label: "rc"})
	require.ErrorIs(t, err, ErrPrereleaseStuck)
}

func TestBumpPreSinglePart(t *testing.T) {
	_, err := Bump(mustVersion(t, "1.2.3-alpha"), Pre{Label: "alpha"})
	require.ErrorIs(t, err, ErrPrereleaseStuck)
}

func TestBumpPreNonNumericCounter(t *testing.T) {
	_, err := Bump(mustVersion(t, "1.2.3-rc.x"), Pre{Label: "rc"})
	require.ErrorIs(t, err, ErrPrereleaseStuck)
}

func TestBumpKeepsBuildMetadata(t *testing.T) {
	got, err := Bump(mustVersion(t, "1.2.3+build.9"), Patch{})
	require.NoError(t, err)
	require.Equal(t, "1.2.4+build.9", got.String())
}
