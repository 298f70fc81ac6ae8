// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
)

// metadataIndent is the indentation used when serializing metadata.json.
// Four spaces, matching the registry's existing files.
const metadataIndent = "    "

// Metadata is a module's registry-side metadata record. Fields other than
// Versions are carried through the merge untouched so a publish never drops
// registry data like maintainers or yanked-version annotations.
type Metadata struct {
	Homepage       string            `json:"homepage,omitempty"`
	Maintainers    []json.RawMessage `json:"maintainers,omitempty"`
	Repository     []string          `json:"repository,omitempty"`
	Versions       []string          `json:"versions"`
	YankedVersions map[string]string `json:"yanked_versions"`
}

// LoadMetadata reads the module metadata record at path. When path does not
// exist it falls back to templatePath, whose version list is expected to be
// empty; this is the first-publish case.
func LoadMetadata(path, templatePath string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		data, err = os.ReadFile(templatePath)
		if err != nil {
			return nil, &FileSystemError{Op: "read metadata template", Path: templatePath, Err: err}
		}
	} else if err != nil {
		return nil, &FileSystemError{Op: "read metadata", Path: path, Err: err}
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}

	// Keep versions and yanked_versions present in the output even when the
	// template omits them; the registry format expects both keys.
	if m.Versions == nil {
		m.Versions = []string{}
	}
	if m.YankedVersions == nil {
		m.YankedVersions = map[string]string{}
	}
	return &m, nil
}

// AddVersion appends version to the record and re-sorts the full list as
// strings. No de-duplication is performed; the duplicate-publish case is
// rejected earlier by the version-directory existence check.
func (m *Metadata) AddVersion(version string) {
	m.Versions = append(m.Versions, version)
	slices.Sort(m.Versions)
}

// Encode serializes the record with stable 4-space indentation and a trailing
// newline, the format the registry keeps its metadata files in.
func (m *Metadata) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", metadataIndent)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	// json.Encoder already terminates the document with a newline.
	return buf.Bytes(), nil
}
