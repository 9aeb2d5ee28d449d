// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// ArchiveStats describes a written archive.
type ArchiveStats struct {
	Files int
	Dirs  int
	// Size is the archive size on disk in bytes.
	Size int64
}

// Archive zips stagedRoot into dest. Every entry is stored under
// "<base(stagedRoot)>/", so the archive extracts to a single directory named
// after the mod. Entries are written in lexical order with their mode and
// modification time; file contents are deflated.
//
// The parent of dest is created if needed and an existing dest is
// overwritten. On failure dest is removed, so no partial archive is left.
func Archive(ctx context.Context, fsys afero.Fs, stagedRoot, dest string) (*ArchiveStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ArchiveError{Op: "write", Path: dest, Cause: err}
	}

	if err := fsys.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, &ArchiveError{Op: "create output directory", Path: filepath.Dir(dest), Cause: err}
	}

	f, err := fsys.Create(dest)
	if err != nil {
		return nil, &ArchiveError{Op: "create", Path: dest, Cause: err}
	}

	stats := &ArchiveStats{}
	zw := zip.NewWriter(f)
	writeErr := writeTree(ctx, fsys, zw, stagedRoot, stats)
	if closeErr := zw.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}

	if writeErr != nil {
		if rmErr := fsys.Remove(dest); rmErr != nil {
			slog.Warn("could not remove partial archive", "path", dest, "error", rmErr)
		}
		return nil, &ArchiveError{Op: "write", Path: dest, Cause: writeErr}
	}

	if info, err := fsys.Stat(dest); err == nil {
		stats.Size = info.Size()
	}

	return stats, nil
}

func writeTree(ctx context.Context, fsys afero.Fs, zw *zip.Writer, root string, stats *ArchiveStats) error {
	base := filepath.Dir(root)

	return afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return fmt.Errorf("failed to compute archive path for %s: %w", path, err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("failed to create header for %s: %w", path, err)
		}
		header.Name = filepath.ToSlash(rel)

		if info.IsDir() {
			header.Name += "/"
			header.Method = zip.Store
			if _, err := zw.CreateHeader(header); err != nil {
				return fmt.Errorf("failed to add directory %s: %w", header.Name, err)
			}
			stats.Dirs++
			return nil
		}

		if !info.Mode().IsRegular() {
			slog.Debug("skipping non-regular staged entry", "path", path)
			return nil
		}

		header.Method = zip.Deflate
		w, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to add file %s: %w", header.Name, err)
		}
		if err := copyInto(fsys, w, path); err != nil {
			return err
		}
		stats.Files++
		return nil
	})
}

func copyInto(fsys afero.Fs, w io.Writer, path string) error {
	src, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = src.Close() }() // Read-only file; close error non-critical

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
