// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modpack/modpack/internal/issue"
	"github.com/modpack/modpack/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// AppName is the application name.
const AppName = "modpack"

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

//go:embed config_schema.cue
var configSchema string

// SupportedExtensions lists the config file extensions Load understands.
var SupportedExtensions = []string{".cue", ".toml", ".yaml", ".yml"}

// Load is a shorthand for NewProvider().Load.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return NewProvider().Load(ctx, opts)
}

// loadWithOptions performs option-driven config loading. It returns the
// resolved config path alongside the config ("" when only defaults apply).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("dist_dir", defaults.DistDir)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color", string(defaults.UI.Color))

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(fsys, opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadFileIntoViper(fsys, v, opts.ConfigFilePath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check the file syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				Wrap(err).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Use a plain file name for 'manifest' and a relative path for 'dist_dir'").
			Wrap(errors.Join(errs...)).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// loadFileIntoViper decodes a config file, validates it against the #Config
// schema and merges its contents into Viper.
//
// This does not use cueutil.ParseAndDecode because the result is merged into
// Viper as a map and every field is optional (Concrete(false)).
func loadFileIntoViper(fsys afero.Fs, v *viper.Viper, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue, err := compileConfig(ctx, data, path)
	if err != nil {
		return err
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	// Merge into Viper (preserves defaults for omitted fields)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// compileConfig turns the file into a CUE value according to its extension.
// TOML and YAML are decoded to plain Go values first and encoded into CUE, so
// every format is checked against the same schema.
func compileConfig(ctx *cue.Context, data []byte, path string) (cue.Value, error) {
	var raw map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		value := ctx.CompileBytes(data, cue.Filename(path))
		if value.Err() != nil {
			return cue.Value{}, cueutil.FormatError(value.Err(), path)
		}
		return value, nil
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return cue.Value{}, fmt.Errorf("%s: invalid TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cue.Value{}, fmt.Errorf("%s: invalid YAML: %w", path, err)
		}
	default:
		return cue.Value{}, fmt.Errorf("%w %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions, ", "))
	}

	if raw == nil {
		raw = map[string]any{}
	}

	value := ctx.Encode(raw)
	if value.Err() != nil {
		return cue.Value{}, cueutil.FormatError(value.Err(), path)
	}
	return value, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}
