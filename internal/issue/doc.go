// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It holds a catalog of Markdown guidance, one entry per failure kind the
// packaging pipeline can report, rendered with glamour when modpack runs in
// verbose mode. ActionableError adds an operation, a resource and
// remediation suggestions to errors raised outside the pipeline, such as
// configuration loading.
package issue
