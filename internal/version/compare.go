package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-data/pkg/errors"
)

// CheckFormatCompatibility checks if a data directory written with storedFormat
// can be read and extended by a build that writes currentFormat.
//
// Compatibility Rules:
//   - If either version is "main" (development build), the check is skipped
//   - Major versions must match exactly
//   - The stored minor version must not be newer than the current one
//   - Patch versions can differ
//
// Examples:
//   - Current 1.1.0, stored 1.1.0 -> OK
//   - Current 1.1.0, stored 1.0.3 -> OK (older minor, files are a subset)
//   - Current 1.1.0, stored 1.2.0 -> ERROR (written by a newer build)
//   - Current 2.0.0, stored 1.1.0 -> ERROR (major differs)
func CheckFormatCompatibility(currentFormat, storedFormat string) error {
	currentFormat = strings.TrimPrefix(currentFormat, "v")
	storedFormat = strings.TrimPrefix(storedFormat, "v")

	if currentFormat == "main" || storedFormat == "main" {
		return nil
	}

	current, err := semver.NewVersion(currentFormat)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid format version '%s'", currentFormat)
	}

	stored, err := semver.NewVersion(storedFormat)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid data directory format version '%s'", storedFormat)
	}

	if current.Major() != stored.Major() {
		return errors.Newf(errors.ErrCodeInvalidVersion,
			"major version mismatch: data directory uses format %d.x.x but this build writes %d.x.x",
			stored.Major(), current.Major())
	}

	if stored.Minor() > current.Minor() {
		return errors.Newf(errors.ErrCodeInvalidVersion,
			"data directory format %s was written by a newer build (this build writes %s)",
			stored.String(), current.String())
	}

	return nil
}
