// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/modpack/modpack/pkg/modinfo"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// DefaultDistDir is the output directory, relative to the repository root.
const DefaultDistDir = "dist"

type (
	// Builder runs the locate, validate, stage and archive pipeline for one
	// repository root.
	Builder struct {
		fs           afero.Fs
		root         string
		manifestName string
		distDir      string
		excluder     *Excluder
	}

	// Option configures a Builder.
	Option func(*Builder)

	// Result describes a successful build.
	Result struct {
		Mod *Mod
		// ArchivePath is the absolute path of the written archive.
		ArchivePath string
		// RelPath is ArchivePath relative to the repository root when it lies below it.
		RelPath string
		Stage   StageStats
		Archive ArchiveStats
		Elapsed time.Duration
	}
)

// WithFs sets the filesystem. Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(b *Builder) { b.fs = fsys }
}

// WithManifestName overrides modinfo.FileName.
func WithManifestName(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.manifestName = name
		}
	}
}

// WithDistDir overrides DefaultDistDir. Relative paths resolve against the root.
func WithDistDir(dir string) Option {
	return func(b *Builder) {
		if dir != "" {
			b.distDir = dir
		}
	}
}

// WithExcluder replaces the default exclusion set.
func WithExcluder(x *Excluder) Option {
	return func(b *Builder) {
		if x != nil {
			b.excluder = x
		}
	}
}

// NewBuilder creates a Builder for the repository at root.
func NewBuilder(root string, opts ...Option) (*Builder, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository root %q: %w", root, err)
	}

	b := &Builder{
		fs:           afero.NewOsFs(),
		root:         absRoot,
		manifestName: modinfo.FileName,
		distDir:      DefaultDistDir,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.excluder == nil {
		b.excluder = MustExcluder()
	}
	return b, nil
}

// Root returns the absolute repository root.
func (b *Builder) Root() string { return b.root }

// OutputPath returns where the archive for mod is written.
func (b *Builder) OutputPath(mod *Mod) string {
	dist := b.distDir
	if !filepath.IsAbs(dist) {
		dist = filepath.Join(b.root, dist)
	}
	return filepath.Join(dist, mod.ArchiveName())
}

// Build packages the mod found under the root. The first failure ends the
// run; no output directory is created unless staging succeeded, and the
// staging directory never outlives the call.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()

	manifestPath, err := Locate(b.fs, b.root, b.manifestName)
	if err != nil {
		return nil, err
	}
	slog.Debug("manifest located", "path", manifestPath)

	mod, err := Validate(b.fs, manifestPath)
	if err != nil {
		return nil, err
	}

	res := &Result{Mod: mod, ArchivePath: b.OutputPath(mod)}
	res.RelPath = relativeTo(b.root, res.ArchivePath)

	err = WithStaging(ctx, b.fs, mod, b.excluder, func(s *Staging) error {
		res.Stage = s.Stats()
		slog.Debug("mod staged",
			"files", res.Stage.Files,
			"dirs", res.Stage.Dirs,
			"skipped", res.Stage.Skipped,
			"bytes", humanize.Bytes(uint64(res.Stage.Bytes)))

		stats, err := Archive(ctx, b.fs, s.Root(), res.ArchivePath)
		if err != nil {
			return err
		}
		res.Archive = *stats
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Elapsed = time.Since(start)
	slog.Info("archive written",
		"path", res.RelPath,
		"files", res.Archive.Files,
		"size", humanize.Bytes(uint64(res.Archive.Size)),
		"elapsed", res.Elapsed.Round(time.Millisecond))

	return res, nil
}
