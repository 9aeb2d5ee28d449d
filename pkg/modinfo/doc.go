// SPDX-License-Identifier: MPL-2.0

// Package modinfo reads the info.json manifest that declares a mod's identity.
//
// The manifest must be a JSON object. Only "name" and "version" are required
// (non-empty strings); "title", "author", "description" and "factorio_version"
// are decoded when present, and every other key is accepted and ignored.
// Validation is performed by unifying the document with the embedded
// #Manifest CUE schema.
package modinfo
