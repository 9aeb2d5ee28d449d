// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each failure category. Every typed error below unwraps
// to its sentinel and to its underlying cause.
var (
	// ErrConfiguration marks a missing, ambiguous or invalid manifest, or a directory-name mismatch.
	ErrConfiguration = errors.New("configuration error")
	// ErrParse marks a manifest that is not valid JSON.
	ErrParse = errors.New("parse error")
	// ErrStaging marks a failure while copying the mod tree to the staging directory.
	ErrStaging = errors.New("staging error")
	// ErrArchive marks a failure while writing the archive.
	ErrArchive = errors.New("archive error")
)

// Problem values classify a ConfigurationError.
const (
	// ProblemManifestNotFound means no manifest exists in the search locations.
	ProblemManifestNotFound Problem = iota + 1
	// ProblemAmbiguousLayout means more than one manifest was found.
	ProblemAmbiguousLayout
	// ProblemInvalidManifest means the manifest is unreadable or misses required fields.
	ProblemInvalidManifest
	// ProblemDirectoryMismatch means the manifest's directory is not named after the mod.
	ProblemDirectoryMismatch
)

type (
	// Problem identifies which configuration rule was violated.
	Problem int

	// ConfigurationError reports a repository layout or manifest content problem.
	ConfigurationError struct {
		Problem Problem
		// Path is the repository root, manifest or mod directory involved.
		Path string
		// Message is the human-readable explanation of the violation.
		Message string
		// Candidates lists the manifests found for ProblemAmbiguousLayout.
		Candidates []string
		Cause      error
	}

	// ParseError reports a manifest that is not valid JSON.
	ParseError struct {
		Path  string
		Cause error
	}

	// StagingError reports a filesystem failure while building the staging copy.
	StagingError struct {
		// Op is the operation that failed (e.g. "copy file").
		Op    string
		Path  string
		Cause error
	}

	// ArchiveError reports a failure while producing the zip archive.
	ArchiveError struct {
		Op    string
		Path  string
		Cause error
	}
)

// String returns a short identifier for the problem.
func (p Problem) String() string {
	switch p {
	case ProblemManifestNotFound:
		return "manifest-not-found"
	case ProblemAmbiguousLayout:
		return "ambiguous-layout"
	case ProblemInvalidManifest:
		return "invalid-manifest"
	case ProblemDirectoryMismatch:
		return "directory-mismatch"
	default:
		return fmt.Sprintf("problem(%d)", int(p))
	}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Message)
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns ErrConfiguration and the cause, if any.
func (e *ConfigurationError) Unwrap() []error { return unwrapPair(ErrConfiguration, e.Cause) }

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse manifest: %v", e.Cause)
}

// Unwrap returns ErrParse and the cause.
func (e *ParseError) Unwrap() []error { return unwrapPair(ErrParse, e.Cause) }

// Error implements the error interface.
func (e *StagingError) Error() string {
	return opError("staging failed", e.Op, e.Path, e.Cause)
}

// Unwrap returns ErrStaging and the cause.
func (e *StagingError) Unwrap() []error { return unwrapPair(ErrStaging, e.Cause) }

// Error implements the error interface.
func (e *ArchiveError) Error() string {
	return opError("archive failed", e.Op, e.Path, e.Cause)
}

// Unwrap returns ErrArchive and the cause.
func (e *ArchiveError) Unwrap() []error { return unwrapPair(ErrArchive, e.Cause) }

func opError(prefix, op, path string, cause error) string {
	var msg strings.Builder
	msg.WriteString(prefix)
	if op != "" {
		msg.WriteString(": ")
		msg.WriteString(op)
	}
	if path != "" {
		msg.WriteString(" ")
		msg.WriteString(path)
	}
	if cause != nil {
		msg.WriteString(": ")
		msg.WriteString(cause.Error())
	}
	return msg.String()
}

func unwrapPair(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

// ProblemOf returns the Problem of a ConfigurationError in err's chain, or 0.
func ProblemOf(err error) Problem {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Problem
	}
	return 0
}
