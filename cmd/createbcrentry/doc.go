// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI for create-bcr-entry.
//
// The tool is a single command that assembles and writes a new version entry
// for a Bazel-Central-Registry-style module registry.
package cmd
