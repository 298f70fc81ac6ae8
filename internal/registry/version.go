// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"strings"

	"golang.org/x/mod/semver"
)

// NormalizeVersion strips a single leading "v" from a release tag. Tags
// without the prefix pass through unchanged, so both "v1.2.3" and "1.2.3"
// normalize to "1.2.3".
func NormalizeVersion(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// IsCanonicalVersion reports whether version (without a "v" prefix) is a
// canonical semantic version. Used for diagnostics only; the registry accepts
// non-semver versions.
func IsCanonicalVersion(version string) bool {
	return semver.IsValid("v" + version)
}
