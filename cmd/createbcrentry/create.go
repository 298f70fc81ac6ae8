// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"bcrentry/internal/config"
	"bcrentry/internal/fetch"
	"bcrentry/internal/issue"
	"bcrentry/internal/registry"
	"bcrentry/pkg/bzlmod"

	"github.com/charmbracelet/log"
)

// publishRequest carries the four positional arguments of an invocation.
type publishRequest struct {
	ProjectPath    string // project root, holds MODULE.bazel and .bcr/
	BCRPath        string // registry checkout root
	OwnerSlashRepo string // e.g. "acme/widget"
	Tag            string // release tag, e.g. "v2.0.0"
}

// runPublish executes the entry-generation pipeline: resolve the module name,
// merge metadata, stamp the templates, hash the release archive, and emit the
// entry. Every step is fatal on error; a failed run writes nothing to the
// registry and is re-run from scratch.
func runPublish(ctx context.Context, out io.Writer, req publishRequest) error {
	logger := newLogger()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return issue.Wrap(err, "load configuration")
	}

	version := registry.NormalizeVersion(req.Tag)
	if !registry.IsCanonicalVersion(version) {
		logger.Warn("version is not canonical semver", "version", version)
	}
	logger.Debug("arguments resolved",
		"project", req.ProjectPath, "bcr", req.BCRPath,
		"repo", req.OwnerSlashRepo, "version", version)

	manifestPath := registry.ManifestPath(req.ProjectPath)
	name, err := bzlmod.ModuleName(manifestPath)
	if err != nil {
		return issue.WrapResource(err, "read module name", manifestPath).
			WithSuggestion(`the manifest must declare module(name = "...") exactly once`)
	}
	logger.Debug("module name resolved", "name", name)

	tpl, err := registry.LoadTemplates(req.ProjectPath)
	if err != nil {
		return issue.Wrap(err, "load project templates").
			WithSuggestion("create a .bcr template directory next to MODULE.bazel")
	}

	moduleDir := registry.ModuleDir(req.BCRPath, name)
	metadataPath := filepath.Join(moduleDir, registry.MetadataFile)
	meta, err := registry.LoadMetadata(metadataPath, tpl.MetadataPath)
	if err != nil {
		return issue.Wrap(err, "load registry metadata")
	}
	meta.AddVersion(version)
	metadata, err := meta.Encode()
	if err != nil {
		return issue.Wrap(err, "merge registry metadata")
	}
	logger.Debug("metadata merged", "versions", len(meta.Versions))

	// The download is the pipeline's single suspension point.
	client := newFetchClient(cfg)
	logger.Debug("downloading release archive", "url", client.ArchiveURL(req.OwnerSlashRepo, version))
	integrity, err := client.ArchiveHash(ctx, req.OwnerSlashRepo, version)
	if err != nil {
		return issue.Wrap(err, "hash release archive").
			WithSuggestion(fmt.Sprintf("check that tag v%s is released on %s/%s", version, cfg.DownloadHost, req.OwnerSlashRepo))
	}
	logger.Debug("archive hashed", "sha256", integrity)

	inputs := bzlmod.StampInputs{
		OwnerSlashRepo: req.OwnerSlashRepo,
		Version:        version,
		Integrity:      integrity,
	}
	entry := &registry.Entry{
		ModuleName: name,
		Version:    version,
		Manifest:   []byte(bzlmod.StampManifest(tpl.Manifest, inputs)),
		Source:     []byte(bzlmod.StampSource(tpl.Source, inputs)),
		Metadata:   metadata,
	}

	if dryRun {
		renderDryRun(out, req, entry, integrity)
		return nil
	}

	if err := entry.Write(req.BCRPath, tpl.PresubmitPath); err != nil {
		ae := issue.Wrap(err, "write registry entry")
		if errors.Is(err, registry.ErrVersionExists) {
			ae.WithSuggestion(fmt.Sprintf("version %s is already published for %s; remove the entry directory to republish", version, name))
		}
		return ae
	}

	fmt.Fprintf(out, "%s Entry created for %s@%s\n", SuccessStyle.Render("✓"), name, version)
	fmt.Fprintf(out, "  %s\n", PathStyle.Render(filepath.Join(moduleDir, version)))
	return nil
}

// newLogger builds the pipeline logger: warnings by default, full step-by-step
// debug output behind --verbose.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "create-bcr-entry",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// newFetchClient builds the archive client from the runtime configuration.
func newFetchClient(cfg *config.Config) *fetch.Client {
	return fetch.NewClient(
		fetch.WithBaseURL(cfg.DownloadHost),
		fetch.WithToken(cfg.GitHubToken),
		fetch.WithHTTPClient(&http.Client{Timeout: cfg.DownloadTimeout}),
		fetch.WithUserAgent("create-bcr-entry/"+Version),
	)
}
