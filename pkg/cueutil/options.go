// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the largest document ParseAndDecode accepts (5 MiB).
const DefaultMaxFileSize int64 = 5 << 20

// Format values identify the syntax of the user document.
const (
	// FormatCUE compiles the document as CUE source.
	FormatCUE Format = iota
	// FormatJSON extracts the document as strict JSON.
	FormatJSON
)

type (
	// Format selects how user data is turned into a CUE value.
	Format int

	// Option configures ParseAndDecode.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
		format      Format
	}
)

func defaultOptions() options {
	return options{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
		format:      FormatCUE,
	}
}

// WithFilename sets the filename used in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithConcrete controls whether validation requires every field to be concrete.
// Documents whose schema only has optional fields (config) pass false.
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}

// WithFormat selects the syntax of the user document.
func WithFormat(format Format) Option {
	return func(o *options) { o.format = format }
}

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "cue"
	}
}
