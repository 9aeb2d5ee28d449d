// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

// ParseResult contains the result of a successful CUE parse operation.
type ParseResult[T any] struct {
	// Value is the decoded Go struct.
	Value *T

	// Unified is the unified CUE value, available for callers that need to
	// look up fields the Go struct does not declare.
	Unified cue.Value
}

// ParseAndDecode compiles schema, unifies the definition at schemaPath with
// data, validates the result and decodes it into a T.
//
// Returns a *SyntaxError when data cannot be read in the selected format and
// a *ValidationError when it does not satisfy the schema.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.filename == "" {
		options.filename = "<input>"
	}

	if err := CheckFileSize(data, options.maxFileSize, options.filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if !schemaRoot.Exists() || schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found", schemaPath)
	}

	userValue, err := compileInput(ctx, data, options)
	if err != nil {
		return nil, err
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return nil, FormatError(err, options.filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, options.filename)
	}

	return &ParseResult[T]{
		Value:   &result,
		Unified: unified,
	}, nil
}

func compileInput(ctx *cue.Context, data []byte, o options) (cue.Value, error) {
	switch o.format {
	case FormatJSON:
		expr, err := cuejson.Extract(o.filename, data)
		if err != nil {
			return cue.Value{}, &SyntaxError{FilePath: o.filename, Format: o.format, Err: err}
		}
		v := ctx.BuildExpr(expr, cue.Filename(o.filename))
		if v.Err() != nil {
			return cue.Value{}, &SyntaxError{FilePath: o.filename, Format: o.format, Err: v.Err()}
		}
		return v, nil
	default:
		v := ctx.CompileBytes(data, cue.Filename(o.filename))
		if v.Err() != nil {
			return cue.Value{}, &SyntaxError{FilePath: o.filename, Format: o.format, Err: v.Err()}
		}
		return v, nil
	}
}
