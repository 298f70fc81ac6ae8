// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context for the publish pipeline.
//
// Every pipeline failure is fatal and unwinds to the CLI entry point, which
// renders it through this package: a concise one-line message by default,
// the full cause chain and fix suggestions in verbose mode.
package issue
