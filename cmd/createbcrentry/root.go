// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bcrentry/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging of every pipeline step.
	verbose bool
	// dryRun runs the whole pipeline, download included, without writing.
	dryRun bool
	// cfgFile allows specifying a custom config file.
	cfgFile string

	// rootCmd is the single command this tool exposes.
	rootCmd = &cobra.Command{
		Use:   "create-bcr-entry <project_path> <bcr_path> <owner_slash_repo> <version>",
		Short: "Generate a new version entry for a Bazel module registry",
		Long: TitleStyle.Render("create-bcr-entry") + SubtitleStyle.Render(" - Bazel registry entry generator") + `

create-bcr-entry assembles and writes the files a Bazel-Central-Registry-style
registry needs for a new release of a module: the shared metadata.json, the
stamped MODULE.bazel and source.json for the version, and a verbatim copy of
the project's presubmit configuration.

The project must carry its registry templates in a .bcr directory:
  .bcr/metadata.template.json   starting metadata for a first publish
  .bcr/MODULE.template.bazel    manifest template with placeholders
  .bcr/source.template.json     source descriptor template with placeholders
  .bcr/presubmit.yml            copied byte-for-byte into the entry

` + SubtitleStyle.Render("Example:") + `
  create-bcr-entry . ../bazel-central-registry acme/widget v2.0.0`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument-count errors above still print usage; pipeline
			// failures below render their own diagnostics.
			cmd.SilenceUsage = true

			req := publishRequest{
				ProjectPath:    args[0],
				BCRPath:        args[1],
				OwnerSlashRepo: args[2],
				Tag:            args[3],
			}
			if err := runPublish(cmd.Context(), cmd.OutOrStdout(), req); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				cmd.SilenceErrors = true
				return &ExitError{Code: 1, Err: err}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "run the pipeline without writing to the registry")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none, BCR_ENTRY_* env only)")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// carry their own formatting; verbose mode shows the full cause chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
