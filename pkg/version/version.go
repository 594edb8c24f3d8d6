// Package version exposes the build version of pokecatch.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// version is overridden at build time via
// -ldflags "-X github.com/rshade/pokecatch/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker.
var version = "v0.1.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// Parse validates the build version as semver.
// Returns an error if the linker-injected value is not a valid version.
func Parse() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", version, err)
	}
	return v, nil
}

// IsPrerelease reports whether the build is a development or pre-release build.
// Unparseable versions are treated as pre-release.
func IsPrerelease() bool {
	v, err := Parse()
	if err != nil {
		return true
	}
	return v.Prerelease() != ""
}
