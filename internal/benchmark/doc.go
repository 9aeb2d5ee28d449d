// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// They cover the hot paths of a modpack run:
//   - manifest parsing and schema validation
//   - configuration loading
//   - exclusion matching
//   - the end-to-end locate, stage and archive pipeline
//
// To generate a profile, run:
//
//	go test ./internal/benchmark -run '^$' -bench . -cpuprofile default.pgo
package benchmark
