// SPDX-License-Identifier: MPL-2.0

package bzlmod

import (
	"fmt"
	"strings"
)

// Placeholder tokens recognized in entry templates.
const (
	VersionPlaceholder        = "VERSION_PLACEHOLDER"
	RepoPlaceholder           = "REPO_PLACEHOLDER"
	OwnerSlashRepoPlaceholder = "OWNER_SLASH_REPO_PLACEHOLDER"
	SHA256Placeholder         = "SHA256_PLACEHOLDER"
)

// StampInputs carries the values substituted into entry templates.
type StampInputs struct {
	// OwnerSlashRepo is the two-part source-hosting identifier, e.g. "acme/widget".
	OwnerSlashRepo string
	// Version is the normalized release version, without a leading "v".
	Version string
	// Integrity is the base64-encoded SHA-256 digest of the release archive,
	// without the "sha256-" prefix.
	Integrity string
}

// RepoName returns the repository-name portion of the owner/repo identifier,
// i.e. the substring after the "/" separator.
func (in StampInputs) RepoName() string {
	if i := strings.IndexByte(in.OwnerSlashRepo, '/'); i >= 0 {
		return in.OwnerSlashRepo[i+1:]
	}
	return in.OwnerSlashRepo
}

// StampManifest substitutes placeholders in a module manifest template:
// REPO_PLACEHOLDER becomes the owner/repo identifier and every occurrence of
// VERSION_PLACEHOLDER becomes the version. The substitution happens entirely
// in memory; callers write the result only after it succeeds.
func StampManifest(template string, in StampInputs) string {
	out := strings.Replace(template, RepoPlaceholder, in.OwnerSlashRepo, 1)
	return strings.ReplaceAll(out, VersionPlaceholder, in.Version)
}

// StampSource substitutes the four placeholders of a source descriptor
// template: every VERSION_PLACEHOLDER, the repository name, the full
// owner/repo identifier, and the integrity hash prefixed with "sha256-".
//
// OWNER_SLASH_REPO_PLACEHOLDER is replaced before REPO_PLACEHOLDER so the
// longer token is never clobbered by the shorter one it contains.
func StampSource(template string, in StampInputs) string {
	out := strings.ReplaceAll(template, VersionPlaceholder, in.Version)
	out = strings.Replace(out, OwnerSlashRepoPlaceholder, in.OwnerSlashRepo, 1)
	out = strings.Replace(out, RepoPlaceholder, in.RepoName(), 1)
	return strings.Replace(out, SHA256Placeholder, fmt.Sprintf("sha256-%s", in.Integrity), 1)
}
