// SPDX-License-Identifier: MPL-2.0

// Package bzlmod reads and stamps Bazel module manifests (MODULE.bazel).
//
// It provides name extraction from a module() declaration and placeholder
// substitution for the templated manifest and source descriptor files used
// when publishing a registry entry.
package bzlmod
