// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const stagingPrefix = "modpack-"

type (
	// Staging is a private temporary directory holding a filtered copy of a mod
	// at Root() = <Dir()>/<name>. It must be released with Close.
	Staging struct {
		fsys   afero.Fs
		dir    string
		root   string
		stats  StageStats
		closed bool
	}

	// StageStats counts what Stage copied and skipped.
	StageStats struct {
		Files   int
		Dirs    int
		Bytes   int64
		Skipped int
	}
)

// Dir returns the temporary parent directory.
func (s *Staging) Dir() string { return s.dir }

// Root returns the staged mod directory, named after the mod.
func (s *Staging) Root() string { return s.root }

// Stats returns the copy counters.
func (s *Staging) Stats() StageStats { return s.stats }

// Close removes the staging directory and everything in it. It is safe to
// call more than once.
func (s *Staging) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.fsys.RemoveAll(s.dir); err != nil {
		return &StagingError{Op: "remove staging directory", Path: s.dir, Cause: err}
	}
	slog.Debug("staging directory removed", "dir", s.dir)
	return nil
}

// Stage copies mod.Root into a fresh temporary directory, following symlinks
// and skipping every entry excl matches. The source tree is only read. On
// failure the partial staging directory is removed before returning.
func Stage(ctx context.Context, fsys afero.Fs, mod *Mod, excl *Excluder) (*Staging, error) {
	if excl == nil {
		excl = MustExcluder()
	}
	if err := ctx.Err(); err != nil {
		return nil, &StagingError{Op: "stage", Path: mod.Root, Cause: err}
	}

	dir, err := afero.TempDir(fsys, "", stagingPrefix)
	if err != nil {
		return nil, &StagingError{Op: "create staging directory", Cause: err}
	}

	s := &Staging{fsys: fsys, dir: dir, root: filepath.Join(dir, mod.Name())}
	slog.Debug("staging mod", "src", mod.Root, "dst", s.root)

	c := &copier{ctx: ctx, fsys: fsys, excl: excl, stats: &s.stats}
	if err := c.copyDir(mod.Root, s.root); err != nil {
		if cerr := s.Close(); cerr != nil {
			slog.Warn("could not remove staging directory", "dir", dir, "error", cerr)
		}
		return nil, err
	}

	return s, nil
}

// WithStaging stages mod, runs fn on the result and removes the staging
// directory afterwards, whether fn succeeded, failed or panicked. A removal
// failure is reported only when nothing else failed.
func WithStaging(ctx context.Context, fsys afero.Fs, mod *Mod, excl *Excluder, fn func(*Staging) error) (err error) {
	s, err := Stage(ctx, fsys, mod, excl)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			if err == nil {
				err = cerr
				return
			}
			slog.Warn("could not remove staging directory", "dir", s.dir, "error", cerr)
		}
	}()

	return fn(s)
}

type copier struct {
	ctx   context.Context
	fsys  afero.Fs
	excl  *Excluder
	stats *StageStats
}

func (c *copier) copyDir(src, dst string) error {
	info, err := c.fsys.Stat(src)
	if err != nil {
		return &StagingError{Op: "stat", Path: src, Cause: err}
	}
	if !info.IsDir() {
		return &StagingError{Op: "copy", Path: src, Cause: errors.New("not a directory")}
	}

	// Owner bits stay writable so the staging directory can always be removed.
	if err := c.fsys.MkdirAll(dst, info.Mode().Perm()|0o700); err != nil {
		return &StagingError{Op: "create directory", Path: dst, Cause: err}
	}
	c.stats.Dirs++

	entries, err := afero.ReadDir(c.fsys, src)
	if err != nil {
		return &StagingError{Op: "read directory", Path: src, Cause: err}
	}

	for _, entry := range entries {
		if err := c.ctx.Err(); err != nil {
			return &StagingError{Op: "copy", Path: src, Cause: err}
		}

		name := entry.Name()
		srcPath := filepath.Join(src, name)
		if c.excl.Match(name) {
			slog.Debug("excluded", "path", srcPath)
			c.stats.Skipped++
			continue
		}

		// Stat, not Lstat: symlinks are copied as what they point to.
		fi, err := c.fsys.Stat(srcPath)
		if err != nil {
			return &StagingError{Op: "stat", Path: srcPath, Cause: err}
		}

		dstPath := filepath.Join(dst, name)
		switch {
		case fi.IsDir():
			if err := c.copyDir(srcPath, dstPath); err != nil {
				return err
			}
		case fi.Mode().IsRegular():
			if err := c.copyFile(srcPath, dstPath, fi); err != nil {
				return err
			}
		default:
			slog.Debug("skipping special file", "path", srcPath, "mode", fi.Mode().String())
			c.stats.Skipped++
		}
	}

	c.keepModTime(dst, info)
	return nil
}

func (c *copier) copyFile(src, dst string, info fs.FileInfo) error {
	in, err := c.fsys.Open(src)
	if err != nil {
		return &StagingError{Op: "open", Path: src, Cause: err}
	}
	defer func() { _ = in.Close() }() // Read-only file; close error non-critical

	out, err := c.fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return &StagingError{Op: "create file", Path: dst, Cause: err}
	}

	n, copyErr := io.Copy(out, in)
	closeErr := out.Close()
	if copyErr != nil {
		return &StagingError{Op: "copy file", Path: src, Cause: copyErr}
	}
	if closeErr != nil {
		return &StagingError{Op: "close file", Path: dst, Cause: closeErr}
	}

	c.stats.Files++
	c.stats.Bytes += n
	// After Close: some filesystems stamp the mtime when a written file is closed.
	c.keepModTime(dst, info)
	return nil
}

// keepModTime carries the source mtime over so archive timestamps reflect the
// mod, not the build.
func (c *copier) keepModTime(dst string, info fs.FileInfo) {
	if err := c.fsys.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		slog.Debug("could not preserve modification time", "path", dst, "error", err)
	}
}
