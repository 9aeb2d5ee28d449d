// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"fmt"
	"regexp"
	"slices"

	"mvdan.cc/sh/v3/pattern"
)

// ArchiveExt is the extension of produced archives. Files carrying it are
// never staged, so old builds do not end up inside new ones.
const ArchiveExt = ".zip"

// ExcludedDirNames are the tooling and VCS directories that never ship with a mod.
var ExcludedDirNames = []string{".git", "__pycache__", ".pytest_cache", ".mypy_cache"}

// DefaultExcludes returns the exclusion patterns applied to every build.
func DefaultExcludes() []string {
	return append(slices.Clone(ExcludedDirNames), "*"+ArchiveExt)
}

// Excluder decides which entries are left out of the staging copy. Patterns are
// shell globs matched against an entry's base name, at any depth, for files
// and directories alike. An excluded directory is skipped with everything
// below it.
type Excluder struct {
	patterns []string
	matchers []*regexp.Regexp
}

// NewExcluder compiles DefaultExcludes plus extra.
func NewExcluder(extra ...string) (*Excluder, error) {
	all := DefaultExcludes()
	for _, p := range extra {
		if p != "" && !slices.Contains(all, p) {
			all = append(all, p)
		}
	}

	x := &Excluder{patterns: all, matchers: make([]*regexp.Regexp, 0, len(all))}
	for _, p := range all {
		re, err := compileGlob(p)
		if err != nil {
			return nil, err
		}
		x.matchers = append(x.matchers, re)
	}
	return x, nil
}

// MustExcluder is like NewExcluder but panics on an invalid pattern.
func MustExcluder(extra ...string) *Excluder {
	x, err := NewExcluder(extra...)
	if err != nil {
		panic(err)
	}
	return x
}

// Match reports whether an entry with the given base name is excluded.
func (x *Excluder) Match(name string) bool {
	for _, re := range x.matchers {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled patterns in order.
func (x *Excluder) Patterns() []string {
	return slices.Clone(x.patterns)
}

func compileGlob(p string) (*regexp.Regexp, error) {
	expr, err := pattern.Regexp(p, pattern.Filenames)
	if err != nil {
		return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
	}
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
	}
	return re, nil
}
