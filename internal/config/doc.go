// SPDX-License-Identifier: MPL-2.0

// Package config handles optional modpack configuration using Viper.
//
// No configuration file is ever discovered implicitly: without an explicit
// path every field keeps its default and modpack behaves exactly as it does
// with no configuration at all. An explicit file may be written in CUE, TOML
// or YAML; whatever the format, it is validated against the embedded CUE
// schema (config_schema.cue) before being merged over the defaults.
package config
