// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Every structured document modpack reads (the mod manifest and the optional
// config file) goes through the same three steps:
//
//  1. Compile the embedded schema
//  2. Compile (or, for JSON input, extract) user data and unify with schema
//  3. Validate and decode to Go struct
//
// Failures in step 2 are reported as [*SyntaxError]; failures in step 3 are
// reported as [*ValidationError] carrying one [Issue] per offending field.
//
// # Usage
//
//	//go:embed manifest_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Manifest](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Manifest",
//	    cueutil.WithFilename("info.json"),
//	    cueutil.WithFormat(cueutil.FormatJSON),
//	)
package cueutil
