// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the modpack command line.
//
// The root command runs the whole packaging pipeline: it locates the mod
// manifest below the repository root, validates it, stages a filtered copy of
// the mod and writes dist/<name>_<version>.zip. Failures are reported on
// standard error and mapped to one exit code per failure category.
package cmd
