// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is returned by CheckFileSize.
var ErrFileTooLarge = errors.New("file too large")

type (
	// SyntaxError reports user data that could not be read in its declared format.
	SyntaxError struct {
		FilePath string
		Format   Format
		Err      error
	}

	// Issue is a single schema violation.
	Issue struct {
		// Path is the JSON path to the invalid value (e.g. "name", "deps[0]").
		// Empty when the violation concerns the document as a whole.
		Path string
		// Message is the violation text without the path prefix.
		Message string
	}

	// ValidationError reports user data that parsed but does not satisfy the schema.
	ValidationError struct {
		FilePath string
		Issues   []Issue
	}
)

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %v", e.FilePath, e.Format, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		lines = append(lines, is.String())
	}
	if len(lines) == 1 {
		return fmt.Sprintf("%s: %s", e.FilePath, lines[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(lines, "\n  "))
}

// HasPath reports whether any issue concerns path or a field below it.
func (e *ValidationError) HasPath(path string) bool {
	for _, is := range e.Issues {
		if is.Path == path || strings.HasPrefix(is.Path, path+".") || strings.HasPrefix(is.Path, path+"[") {
			return true
		}
	}
	return false
}

// String renders the issue as "<path>: <message>".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// FormatError converts a CUE error into a *ValidationError with one Issue per
// underlying CUE error. Non-CUE errors are wrapped with the file path.
//
// Error format: <file-path>: <json-path>: <message>
//
// Examples:
//   - info.json: name: invalid value "" (out of bound !="")
//   - modpack.cue: ui.color: 3 errors in empty disjunction
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	verr := &ValidationError{FilePath: filePath}
	seen := make(map[string]bool, len(cueErrs))
	for _, e := range cueErrs {
		path := formatPath(cueerrors.Path(e))
		msg := e.Error()

		// CUE sometimes repeats the path at the front of the message.
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}

		key := path + "\x00" + msg
		if seen[key] {
			continue
		}
		seen[key] = true
		verr.Issues = append(verr.Issues, Issue{Path: path, Message: msg})
	}

	return verr
}

// formatPath converts a CUE error path (["deps", "0", "name"]) to JSON-path
// notation ("deps[0].name"). Leading definition segments ("#Manifest") are
// dropped so paths read relative to the user document.
func formatPath(path []string) string {
	for len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	if len(path) == 0 {
		return ""
	}

	var result strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			result.WriteString("[")
			result.WriteString(part)
			result.WriteString("]")
			continue
		}
		if i > 0 {
			result.WriteString(".")
		}
		result.WriteString(part)
	}

	return result.String()
}

func isIndex(part string) bool {
	if part == "" {
		return false
	}
	for _, c := range part {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize verifies that data does not exceed maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes: %w",
			filename, len(data), maxSize, ErrFileTooLarge)
	}
	return nil
}
