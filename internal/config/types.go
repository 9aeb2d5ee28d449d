// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modpack/modpack/pkg/modinfo"
	"github.com/modpack/modpack/pkg/modpack"
)

const (
	// ColorAuto colors output when standard error is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colored output.
	ColorAlways ColorMode = "always"
	// ColorNever disables colored output.
	ColorNever ColorMode = "never"
)

var (
	// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidManifestName is returned when the manifest name is not a plain file name.
	ErrInvalidManifestName = errors.New("invalid manifest name")
	// ErrInvalidDistDir is returned when the output directory is empty or absolute.
	ErrInvalidDistDir = errors.New("invalid dist dir")
	// ErrInvalidExclude is returned when an exclusion glob does not compile.
	ErrInvalidExclude = errors.New("invalid exclude pattern")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorMode controls colored terminal output.
	ColorMode string

	// InvalidColorModeError is returned when a ColorMode value is not recognized.
	// It wraps ErrInvalidColorMode for errors.Is() compatibility.
	InvalidColorModeError struct {
		Value ColorMode
	}

	// InvalidFieldError reports a single invalid field value.
	InvalidFieldError struct {
		Field string
		Value string
		// Sentinel is the category error returned by Unwrap.
		Sentinel error
		Reason   string
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the modpack configuration.
	Config struct {
		// Manifest is the manifest file name (default "info.json").
		Manifest string `json:"manifest" mapstructure:"manifest" toml:"manifest" yaml:"manifest"`
		// DistDir is the output directory relative to the repository root (default "dist").
		DistDir string `json:"dist_dir" mapstructure:"dist_dir" toml:"dist_dir" yaml:"dist_dir"`
		// Exclude adds exclusion globs to the built-in set.
		Exclude []string `json:"exclude" mapstructure:"exclude" toml:"exclude" yaml:"exclude"`
		// UI configures terminal output
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui" yaml:"ui"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Verbose enables debug logging and long-form error guidance
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose" yaml:"verbose"`
		// Color sets the color mode
		Color ColorMode `json:"color" mapstructure:"color" toml:"color" yaml:"color"`
	}
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Manifest: modinfo.FileName,
		DistDir:  modpack.DefaultDistDir,
		Exclude:  []string{},
		UI: UIConfig{
			Verbose: false,
			Color:   ColorAuto,
		},
	}
}

// IsValid returns whether the Config has valid fields.
// Constraints the CUE schema already enforces are checked again so that a
// Config built in code gets the same guarantees as a loaded one.
func (c Config) IsValid() (bool, []error) {
	var errs []error

	if c.Manifest == "" || c.Manifest == "." || c.Manifest == ".." || strings.ContainsAny(c.Manifest, `/\`) {
		errs = append(errs, &InvalidFieldError{
			Field:    "manifest",
			Value:    c.Manifest,
			Sentinel: ErrInvalidManifestName,
			Reason:   "must be a plain file name",
		})
	}

	if strings.TrimSpace(c.DistDir) == "" || filepath.IsAbs(c.DistDir) {
		errs = append(errs, &InvalidFieldError{
			Field:    "dist_dir",
			Value:    c.DistDir,
			Sentinel: ErrInvalidDistDir,
			Reason:   "must be a non-empty path relative to the repository root",
		})
	}

	for i, p := range c.Exclude {
		if _, err := modpack.NewExcluder(p); err != nil {
			errs = append(errs, &InvalidFieldError{
				Field:    fmt.Sprintf("exclude[%d]", i),
				Value:    p,
				Sentinel: ErrInvalidExclude,
				Reason:   err.Error(),
			})
		}
	}

	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}

	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Excluder compiles the built-in exclusions plus c.Exclude.
func (c Config) Excluder() (*modpack.Excluder, error) {
	return modpack.NewExcluder(c.Exclude...)
}

// IsValid returns whether the UIConfig has valid fields.
func (c UIConfig) IsValid() (bool, []error) {
	return c.Color.IsValid()
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidFieldError.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the field's sentinel error.
func (e *InvalidFieldError) Unwrap() error { return e.Sentinel }

// Error implements the error interface for InvalidColorModeError.
func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q (valid: auto, always, never)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorModeError) Unwrap() error {
	return ErrInvalidColorMode
}

// String returns the string representation of the ColorMode.
func (m ColorMode) String() string { return string(m) }

// IsValid returns whether the ColorMode is one of the defined modes,
// and a list of validation errors if it is not.
func (m ColorMode) IsValid() (bool, []error) {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true, nil
	default:
		return false, []error{&InvalidColorModeError{Value: m}}
	}
}
