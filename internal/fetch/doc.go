// SPDX-License-Identifier: MPL-2.0

// Package fetch downloads a release source archive and computes its
// integrity hash for the registry's source descriptor.
package fetch
