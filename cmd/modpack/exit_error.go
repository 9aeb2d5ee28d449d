// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/modpack/modpack/pkg/modpack"
	"github.com/modpack/modpack/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// The error it carries has already been reported to the user.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps a pipeline error to the process exit code of its category.
func exitCodeFor(err error) types.ExitCode {
	switch {
	case err == nil:
		return types.ExitSuccess
	case errors.Is(err, modpack.ErrConfiguration):
		return types.ExitConfiguration
	case errors.Is(err, modpack.ErrParse):
		return types.ExitParse
	case errors.Is(err, modpack.ErrStaging):
		return types.ExitStaging
	case errors.Is(err, modpack.ErrArchive):
		return types.ExitArchive
	default:
		return types.ExitFailure
	}
}

// exitCodeOf returns the exit code for the error returned by fang.Execute.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}
