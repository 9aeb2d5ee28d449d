// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/modpack/modpack/pkg/types"

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
)

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	// root is the repository root (-C/--root).
	root string
	// cfgFile is an explicit config file; nothing is loaded when empty.
	cfgFile string
	verbose bool
}

// newRootCommand creates the modpack root command.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "modpack",
		Short: "Package a Factorio mod into a distributable zip",
		Long: TitleStyle.Render("modpack") + SubtitleStyle.Render(" - Package a Factorio mod into a distributable zip") + `

modpack finds the mod's info.json at the repository root or one directory
below it, checks that the mod directory is named after the mod, and writes
dist/<name>_<version>.zip with a single top-level <name>/ directory.

VCS metadata, Python caches and zip files are left out of the archive.

` + SubtitleStyle.Render("Examples:") + `
  modpack                         Package the mod in the current repository
  modpack -C ~/src/my-mod         Package the mod in another repository
  modpack --config modpack.toml   Add exclusions or change the output directory`,
		Args: cobra.NoArgs,
		// Errors are rendered by runBuild and the fang error handler.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.root, "root", "C", ".", "repository root")
	rootCmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (.cue, .toml, .yaml); none is loaded by default")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging and detailed error guidance")

	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// getVersionString returns a formatted version string for display.
// Binaries built with -ldflags report the injected values; binaries installed
// with go install fall back to the module version recorded in the build info.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the root command and exits with its exit code.
// This is called by main.main().
func Execute() {
	os.Exit(int(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)))
}

// run executes one modpack invocation with the given arguments and streams.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) types.ExitCode {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	)
	return exitCodeOf(err)
}

// handleError prints errors that were not reported yet. Errors from RunE
// arrive as *ExitError after runBuild has rendered them; flag and argument
// errors get fang's default rendering.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
