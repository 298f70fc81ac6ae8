// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"os"
	"path/filepath"
)

// Project-side template layout. A publishable project carries its registry
// templates in a .bcr directory next to its MODULE.bazel.
const (
	templateDir          = ".bcr"
	metadataTemplateFile = "metadata.template.json"
	manifestTemplateFile = "MODULE.template.bazel"
	sourceTemplateFile   = "source.template.json"
)

// ProjectTemplates holds the template content and paths read from a project's
// .bcr directory.
type ProjectTemplates struct {
	// Manifest is the MODULE.template.bazel content, with placeholders.
	Manifest string
	// Source is the source.template.json content, with placeholders.
	Source string
	// MetadataPath points at the metadata template used on first publish.
	MetadataPath string
	// PresubmitPath points at the presubmit configuration copied verbatim.
	PresubmitPath string
}

// ManifestPath returns the location of a project's module manifest.
func ManifestPath(projectPath string) string {
	return filepath.Join(projectPath, "MODULE.bazel")
}

// LoadTemplates reads the two stamped templates from the project's .bcr
// directory and resolves the paths of the metadata template and presubmit
// configuration. A missing template file is a FileSystemError.
func LoadTemplates(projectPath string) (*ProjectTemplates, error) {
	dir := filepath.Join(projectPath, templateDir)

	manifest, err := os.ReadFile(filepath.Join(dir, manifestTemplateFile))
	if err != nil {
		return nil, &FileSystemError{Op: "read template", Path: filepath.Join(dir, manifestTemplateFile), Err: err}
	}
	source, err := os.ReadFile(filepath.Join(dir, sourceTemplateFile))
	if err != nil {
		return nil, &FileSystemError{Op: "read template", Path: filepath.Join(dir, sourceTemplateFile), Err: err}
	}

	presubmit := filepath.Join(dir, PresubmitFile)
	if _, err := os.Stat(presubmit); err != nil {
		return nil, &FileSystemError{Op: "stat template", Path: presubmit, Err: err}
	}

	return &ProjectTemplates{
		Manifest:      string(manifest),
		Source:        string(source),
		MetadataPath:  filepath.Join(dir, metadataTemplateFile),
		PresubmitPath: presubmit,
	}, nil
}
