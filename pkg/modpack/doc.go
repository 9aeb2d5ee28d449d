// SPDX-License-Identifier: MPL-2.0

// Package modpack packages a mod directory into the versioned zip archive the
// game loads ("<name>_<version>.zip").
//
// The pipeline is strictly linear:
//
//   - [Locate]: find exactly one info.json at the repository root or one level below it
//   - [Validate]: parse the manifest and check the directory name against its "name"
//   - [Stage]: copy the mod tree to a private temporary directory, minus excluded entries
//   - [Archive]: zip the staged copy into dist/<name>_<version>.zip
//
// [Builder.Build] runs the four steps in order. Every failure is terminal and
// is reported as one of [ConfigurationError], [ParseError], [StagingError] or
// [ArchiveError]; the staging directory is removed on every exit path.
//
// All filesystem access goes through an [afero.Fs], so the whole pipeline can
// run against an in-memory filesystem.
package modpack
