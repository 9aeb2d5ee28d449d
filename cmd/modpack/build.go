// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/modpack/modpack/internal/config"
	"github.com/modpack/modpack/internal/logging"
	"github.com/modpack/modpack/pkg/modpack"
	"github.com/modpack/modpack/pkg/types"

	"github.com/spf13/cobra"
)

// runBuild loads the configuration, runs the packaging pipeline and prints
// the archive path. Every failure is rendered here and returned as an
// *ExitError carrying the category's exit code.
func runBuild(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()

	cfg, err := config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.cfgFile})
	if err != nil {
		svcErr := classifyConfigError(err, opts.verbose)
		renderServiceError(stderr, svcErr, opts.verbose)
		return &ExitError{Code: types.ExitFailure, Err: svcErr}
	}

	verbose := opts.verbose || cfg.UI.Verbose
	applyColorMode(cfg.UI.Color)
	logging.Setup(stderr, logging.Options{
		Verbose: verbose,
		NoColor: cfg.UI.Color == config.ColorNever,
	})
	if opts.cfgFile != "" {
		slog.Debug("configuration loaded", "path", opts.cfgFile, "manifest", cfg.Manifest, "dist_dir", cfg.DistDir)
	}

	excluder, err := cfg.Excluder()
	if err != nil {
		fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+err.Error())
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	builder, err := modpack.NewBuilder(opts.root,
		modpack.WithManifestName(cfg.Manifest),
		modpack.WithDistDir(cfg.DistDir),
		modpack.WithExcluder(excluder),
	)
	if err != nil {
		fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+err.Error())
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	result, err := builder.Build(ctx)
	if err != nil {
		svcErr := classifyBuildError(err)
		renderServiceError(stderr, svcErr, verbose)
		return &ExitError{Code: exitCodeFor(err), Err: svcErr}
	}

	slog.Debug("build finished", "mod", result.Mod.Manifest.DisplayName(), "skipped", result.Stage.Skipped)

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Created"), filepath.ToSlash(result.RelPath))
	return nil
}
