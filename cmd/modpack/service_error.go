// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/modpack/modpack/internal/issue"
	"github.com/modpack/modpack/pkg/modpack"
)

// ServiceError is an error that carries rendering information for the CLI
// layer: a pre-styled message and the issue catalog entry that explains it.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// classifyBuildError wraps a pipeline error with its styled message and the
// catalog entry that matches its category.
func classifyBuildError(err error) *ServiceError {
	var msg strings.Builder
	msg.WriteString(ErrorStyle.Render("Error:"))
	msg.WriteString(" ")
	msg.WriteString(err.Error())
	msg.WriteString("\n")

	var cfgErr *modpack.ConfigurationError
	if errors.As(err, &cfgErr) && len(cfgErr.Candidates) > 0 {
		for _, c := range cfgErr.Candidates {
			msg.WriteString(renderValueStyle.Render("  - " + c))
			msg.WriteString("\n")
		}
	}

	return newServiceError(err, issueFor(err), msg.String())
}

// classifyConfigError wraps a configuration load failure. ActionableErrors
// list their suggestions and contribute their linked catalog entry.
func classifyConfigError(err error, verbose bool) *ServiceError {
	styled := ErrorStyle.Render("Error: ") + formatErrorForDisplay(err, verbose) + "\n"

	var issueID issue.Id
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if entry := ae.Issue(); entry != nil {
			issueID = entry.Id()
		}
	}

	return newServiceError(err, issueID, styled)
}

// issueFor picks the catalog entry for err. Permission failures take
// precedence because their fix does not depend on the pipeline stage.
func issueFor(err error) issue.Id {
	if errors.Is(err, fs.ErrPermission) {
		return issue.PermissionDeniedId
	}

	switch modpack.ProblemOf(err) {
	case modpack.ProblemManifestNotFound:
		return issue.ManifestNotFoundId
	case modpack.ProblemAmbiguousLayout:
		return issue.AmbiguousLayoutId
	case modpack.ProblemInvalidManifest:
		return issue.InvalidManifestId
	case modpack.ProblemDirectoryMismatch:
		return issue.DirectoryMismatchId
	}

	switch {
	case errors.Is(err, modpack.ErrParse):
		return issue.ManifestParseErrorId
	case errors.Is(err, modpack.ErrStaging):
		return issue.StagingFailedId
	case errors.Is(err, modpack.ErrArchive):
		return issue.ArchiveFailedId
	default:
		return 0
	}
}

// renderServiceError prints the styled message, then either the issue
// catalog guidance (verbose) or a hint pointing at --verbose.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, verbose bool) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	if svcErr.IssueID == 0 {
		return
	}

	if !verbose {
		fmt.Fprintln(stderr, renderHintStyle.Render("Run with --verbose for troubleshooting guidance."))
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render("dark")
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their own format, which lists suggestions and, in
// verbose mode, the full error chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
