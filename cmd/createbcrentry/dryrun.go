// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"bcrentry/internal/registry"
)

// renderDryRun prints everything a real run would write — destination paths,
// the merged version list, and the computed integrity hash — without touching
// the registry. The download and hash have already happened by the time this
// runs, so the output reflects exactly what a non-dry run would emit.
func renderDryRun(w io.Writer, req publishRequest, entry *registry.Entry, integrity string) {
	moduleDir := registry.ModuleDir(req.BCRPath, entry.ModuleName)
	versionDir := filepath.Join(moduleDir, entry.Version)

	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Module:"), entry.ModuleName)
	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Version:"), entry.Version)
	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Archive:"), req.OwnerSlashRepo)
	fmt.Fprintf(w, "  %s sha256-%s\n", SubtitleStyle.Render("Integrity:"), integrity)
	fmt.Fprintln(w)

	fmt.Fprintln(w, SubtitleStyle.Render("  Would write:"))
	for _, p := range []string{
		filepath.Join(moduleDir, registry.MetadataFile),
		filepath.Join(versionDir, registry.ManifestFile),
		filepath.Join(versionDir, registry.SourceFile),
		filepath.Join(versionDir, registry.PresubmitFile),
	} {
		fmt.Fprintf(w, "    %s\n", PathStyle.Render(p))
	}
}
