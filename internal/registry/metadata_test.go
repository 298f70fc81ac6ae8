// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMetadata_ExistingRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	writeFile(t, path, `{
    "homepage": "https://acme.dev/widget",
    "versions": ["1.0.0", "1.2.0"],
    "yanked_versions": {}
}`)

	m, err := LoadMetadata(path, filepath.Join(dir, "unused.template.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.AddVersion("1.1.0")

	want := []string{"1.0.0", "1.1.0", "1.2.0"}
	if !slices.Equal(m.Versions, want) {
		t.Errorf("versions = %v, want %v", m.Versions, want)
	}
	if m.Homepage != "https://acme.dev/widget" {
		t.Errorf("homepage not preserved: %q", m.Homepage)
	}
}

func TestLoadMetadata_FallsBackToTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	template := filepath.Join(dir, "metadata.template.json")
	writeFile(t, template, `{
    "homepage": "https://acme.dev/widget",
    "maintainers": [{"name": "Jo Doe", "github": "jodoe"}],
    "versions": [],
    "yanked_versions": {}
}`)

	m, err := LoadMetadata(filepath.Join(dir, "missing.json"), template)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.Versions) != 0 {
		t.Errorf("template versions should be empty, got %v", m.Versions)
	}
	if len(m.Maintainers) != 1 {
		t.Errorf("maintainers not preserved: %d entries", len(m.Maintainers))
	}

	m.AddVersion("1.0.0")
	if !slices.Equal(m.Versions, []string{"1.0.0"}) {
		t.Errorf("versions = %v, want [1.0.0]", m.Versions)
	}
}

func TestLoadMetadata_MissingTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadMetadata(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.template.json"))

	var fsErr *FileSystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("got %T, want *FileSystemError", err)
	}
}

func TestAddVersion_NoDeduplication(t *testing.T) {
	t.Parallel()

	m := &Metadata{Versions: []string{"1.0.0", "1.0.0"}}
	m.AddVersion("0.9.0")

	want := []string{"0.9.0", "1.0.0", "1.0.0"}
	if !slices.Equal(m.Versions, want) {
		t.Errorf("versions = %v, want %v (existing duplicates kept)", m.Versions, want)
	}
}

func TestMetadataEncode_Format(t *testing.T) {
	t.Parallel()

	m := &Metadata{
		Versions:       []string{"1.0.0"},
		YankedVersions: map[string]string{},
	}

	data, err := m.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(data)

	if !strings.HasSuffix(out, "\n") {
		t.Error("encoded metadata must end with a newline")
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Error("encoded metadata must end with exactly one newline")
	}
	if !strings.Contains(out, "\n    \"versions\"") {
		t.Errorf("expected 4-space indentation, got:\n%s", out)
	}
	if !strings.Contains(out, `"yanked_versions": {}`) {
		t.Errorf("yanked_versions key missing:\n%s", out)
	}
}

func TestLoadMetadata_NormalizesMissingKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	template := filepath.Join(dir, "metadata.template.json")
	writeFile(t, template, `{"homepage": "https://acme.dev"}`)

	m, err := LoadMetadata(filepath.Join(dir, "missing.json"), template)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := m.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"versions": []`) {
		t.Errorf("versions key should be present and empty:\n%s", out)
	}
	if strings.Contains(out, "null") {
		t.Errorf("no field should encode as null:\n%s", out)
	}
}
