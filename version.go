package cutf8

// Library version, following semantic versioning.
const (
	// Version is the full version string of this release.
	Version = "v0.1.0"

	// VersionMajor, VersionMinor, and VersionPatch are the numeric
	// components of Version.
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// VersionString returns the full version string.
func VersionString() string {
	return Version
}

// VersionInfo returns the numeric version components keyed by name.
func VersionInfo() map[string]int {
	return map[string]int{
		"major": VersionMajor,
		"minor": VersionMinor,
		"patch": VersionPatch,
	}
}
