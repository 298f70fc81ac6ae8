// SPDX-License-Identifier: MPL-2.0

package bzlmod

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStampManifest(t *testing.T) {
	t.Parallel()

	template := "module(\n" +
		"    name = \"widget\",\n" +
		"    version = \"VERSION_PLACEHOLDER\",\n" +
		")\n" +
		"# released from REPO_PLACEHOLDER at VERSION_PLACEHOLDER\n"

	got := StampManifest(template, StampInputs{
		OwnerSlashRepo: "acme/widget",
		Version:        "2.0.0",
	})

	want := "module(\n" +
		"    name = \"widget\",\n" +
		"    version = \"2.0.0\",\n" +
		")\n" +
		"# released from acme/widget at 2.0.0\n"
	if got != want {
		t.Errorf("StampManifest:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStampSource_AllPlaceholders(t *testing.T) {
	t.Parallel()

	template := `{
    "integrity": "SHA256_PLACEHOLDER",
    "strip_prefix": "REPO_PLACEHOLDER-VERSION_PLACEHOLDER",
    "url": "https://github.com/OWNER_SLASH_REPO_PLACEHOLDER/archive/vVERSION_PLACEHOLDER.tar.gz"
}
`

	got := StampSource(template, StampInputs{
		OwnerSlashRepo: "acme/widget",
		Version:        "2.0.0",
		Integrity:      "abcd",
	})

	checks := []struct {
		desc string
		want string
	}{
		{"integrity prefix", `"integrity": "sha256-abcd"`},
		{"repo name only", `"strip_prefix": "widget-2.0.0"`},
		{"full identifier", "https://github.com/acme/widget/archive/v2.0.0.tar.gz"},
	}
	for _, c := range checks {
		if !strings.Contains(got, c.want) {
			t.Errorf("%s: output missing %q\noutput:\n%s", c.desc, c.want, got)
		}
	}

	for _, tok := range []string{VersionPlaceholder, RepoPlaceholder, OwnerSlashRepoPlaceholder, SHA256Placeholder} {
		if strings.Contains(got, tok) {
			t.Errorf("placeholder %s left in output:\n%s", tok, got)
		}
	}

	// The stamped descriptor must stay valid JSON.
	var doc map[string]any
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Errorf("stamped source.json is not valid JSON: %v", err)
	}
}

func TestStampSource_EveryVersionOccurrence(t *testing.T) {
	t.Parallel()

	template := "VERSION_PLACEHOLDER VERSION_PLACEHOLDER VERSION_PLACEHOLDER"
	got := StampSource(template, StampInputs{OwnerSlashRepo: "a/b", Version: "1.0.0"})
	if got != "1.0.0 1.0.0 1.0.0" {
		t.Errorf("got %q, want every occurrence replaced", got)
	}
}

func TestRepoName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"acme/widget", "widget"},
		{"acme/nested/widget", "nested/widget"},
		{"widget", "widget"},
	}
	for _, tt := range tests {
		got := StampInputs{OwnerSlashRepo: tt.in}.RepoName()
		if got != tt.want {
			t.Errorf("RepoName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
