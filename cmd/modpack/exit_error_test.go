// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/modpack/modpack/pkg/modpack"
	"github.com/modpack/modpack/pkg/types"
)

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	withErr := &ExitError{Code: types.ExitStaging, Err: cause}
	if withErr.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", withErr.Error(), "boom")
	}
	if !errors.Is(withErr, cause) {
		t.Error("errors.Is should find the wrapped error")
	}

	bare := &ExitError{Code: types.ExitArchive}
	if bare.Error() != "exit status 5" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "exit status 5")
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{name: "nil", err: nil, want: types.ExitSuccess},
		{
			name: "configuration",
			err:  &modpack.ConfigurationError{Problem: modpack.ProblemAmbiguousLayout, Message: "ambiguous"},
			want: types.ExitConfiguration,
		},
		{name: "parse", err: &modpack.ParseError{Path: "info.json", Cause: errors.New("bad json")}, want: types.ExitParse},
		{name: "staging", err: &modpack.StagingError{Op: "copy file", Cause: fs.ErrPermission}, want: types.ExitStaging},
		{name: "archive", err: &modpack.ArchiveError{Op: "create", Cause: errors.New("disk full")}, want: types.ExitArchive},
		{
			name: "wrapped archive",
			err:  fmt.Errorf("build: %w", &modpack.ArchiveError{Op: "close"}),
			want: types.ExitArchive,
		},
		{name: "other", err: errors.New("unexpected"), want: types.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	if got := exitCodeOf(nil); got != types.ExitSuccess {
		t.Errorf("exitCodeOf(nil) = %d, want 0", got)
	}
	if got := exitCodeOf(&ExitError{Code: types.ExitParse}); got != types.ExitParse {
		t.Errorf("exitCodeOf(ExitError) = %d, want %d", got, types.ExitParse)
	}
	if got := exitCodeOf(errors.New(`unknown flag: --nope`)); got != types.ExitFailure {
		t.Errorf("exitCodeOf(flag error) = %d, want %d", got, types.ExitFailure)
	}
}
