// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DownloadHost != "https://github.com" {
		t.Errorf("DownloadHost = %q", cfg.DownloadHost)
	}
	if cfg.DownloadTimeout != 5*time.Minute {
		t.Errorf("DownloadTimeout = %s", cfg.DownloadTimeout)
	}
	if cfg.GitHubToken != "" {
		t.Errorf("GitHubToken should default empty, got %q", cfg.GitHubToken)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BCR_ENTRY_DOWNLOAD_HOST", "https://mirror.example.com")
	t.Setenv("BCR_ENTRY_GITHUB_TOKEN", "ghp_testtoken")
	t.Setenv("BCR_ENTRY_DOWNLOAD_TIMEOUT", "30s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DownloadHost != "https://mirror.example.com" {
		t.Errorf("DownloadHost = %q", cfg.DownloadHost)
	}
	if cfg.GitHubToken != "ghp_testtoken" {
		t.Errorf("GitHubToken = %q", cfg.GitHubToken)
	}
	if cfg.DownloadTimeout != 30*time.Second {
		t.Errorf("DownloadTimeout = %s", cfg.DownloadTimeout)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "download_host: https://git.internal.example\ndownload_timeout: 90s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DownloadHost != "https://git.internal.example" {
		t.Errorf("DownloadHost = %q", cfg.DownloadHost)
	}
	if cfg.DownloadTimeout != 90*time.Second {
		t.Errorf("DownloadTimeout = %s", cfg.DownloadTimeout)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		desc string
		env  map[string]string
	}{
		{"empty host", map[string]string{"BCR_ENTRY_DOWNLOAD_HOST": " "}},
		{"non-http host", map[string]string{"BCR_ENTRY_DOWNLOAD_HOST": "ftp://example.com"}},
		{"zero timeout", map[string]string{"BCR_ENTRY_DOWNLOAD_TIMEOUT": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
