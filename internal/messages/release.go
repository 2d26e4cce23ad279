package messages

// Release messages for version discovery and bumping.
const (
	ReleaseNoManifest        = "no supported manifest found to parse a version from"
	ReleaseInvalidVersionFmt = "found %s in %s which is not a valid version: %w"
	ReleaseWhileBumpingFmt   = "while bumping version: %w"
	ReleaseWhileWritingFmt   = "while writing the new version to %s: %w"
	ReleasePrereleaseStuck   = "a prerelease version already exists but could not be incremented"
	ReleaseWouldBumpFmt      = "Would bump %s from %s to %s\n"
)
