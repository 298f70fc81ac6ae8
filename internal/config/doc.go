// SPDX-License-Identifier: MPL-2.0

// Package config loads runtime configuration for create-bcr-entry from an
// optional config file and BCR_ENTRY_* environment variables.
package config
