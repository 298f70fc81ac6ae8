// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Registry entry filenames within a version directory.
const (
	ManifestFile  = "MODULE.bazel"
	SourceFile    = "source.json"
	PresubmitFile = "presubmit.yml"
	MetadataFile  = "metadata.json"
)

// ErrVersionExists is returned when the version directory for a publish is
// already present. Publishing an existing version fails loudly rather than
// overwriting.
var ErrVersionExists = errors.New("version already published")

// FileSystemError describes a failed filesystem operation during a publish.
// It wraps the underlying error (including ErrVersionExists) for errors.Is.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

// Error returns a human-readable description of the failure.
func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileSystemError) Unwrap() error { return e.Err }

// Entry is a fully assembled version entry, ready to be written. All content
// is stamped in memory before Write touches the registry, so a failed publish
// leaves no partially substituted files behind.
type Entry struct {
	ModuleName string
	Version    string
	Manifest   []byte // stamped MODULE.bazel
	Source     []byte // stamped source.json
	Metadata   []byte // merged metadata.json, shared across versions
}

// ModuleDir returns the registry directory for a module.
func ModuleDir(bcrPath, moduleName string) string {
	return filepath.Join(bcrPath, "modules", moduleName)
}

// Write creates the version directory and emits the entry files: the stamped
// manifest and source descriptor, the shared metadata record one level up,
// and a byte-for-byte copy of the presubmit configuration at presubmitSrc.
//
// The version directory is created first and creation fails when it already
// exists, so a duplicate publish is rejected before anything is written.
func (e *Entry) Write(bcrPath, presubmitSrc string) error {
	moduleDir := ModuleDir(bcrPath, e.ModuleName)
	if err := os.MkdirAll(moduleDir, 0o755); err != nil {
		return &FileSystemError{Op: "create module dir", Path: moduleDir, Err: err}
	}

	versionDir := filepath.Join(moduleDir, e.Version)
	if err := os.Mkdir(versionDir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return &FileSystemError{Op: "create version dir", Path: versionDir, Err: ErrVersionExists}
		}
		return &FileSystemError{Op: "create version dir", Path: versionDir, Err: err}
	}

	files := []struct {
		path string
		data []byte
	}{
		{filepath.Join(versionDir, ManifestFile), e.Manifest},
		{filepath.Join(versionDir, SourceFile), e.Source},
		{filepath.Join(moduleDir, MetadataFile), e.Metadata},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
			return &FileSystemError{Op: "write", Path: f.path, Err: err}
		}
	}

	dst := filepath.Join(versionDir, PresubmitFile)
	if err := copyFile(presubmitSrc, dst); err != nil {
		return err
	}

	return nil
}

// copyFile copies src to dst verbatim. The destination is created fresh; the
// caller guarantees the enclosing directory did not exist before this publish.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return &FileSystemError{Op: "open", Path: src, Err: err}
	}
	defer func() {
		// Read-only handle; close errors are exotic.
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &FileSystemError{Op: "create", Path: dst, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return &FileSystemError{Op: "copy", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return &FileSystemError{Op: "close", Path: dst, Err: err}
	}
	return nil
}
