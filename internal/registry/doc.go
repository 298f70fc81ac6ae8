// SPDX-License-Identifier: MPL-2.0

// Package registry writes version entries into a Bazel-Central-Registry-style
// module registry: the shared metadata.json for a module and the per-version
// directory holding the stamped manifest, source descriptor, and presubmit
// configuration.
package registry
