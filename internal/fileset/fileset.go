// Package fileset expands include/ignore glob pattern lists into the set
// of source files a coverage run inspects.
package fileset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/unbound-force/cursecov/internal/fault"
)

// Set is an order-irrelevant set of cleaned file paths.
type Set map[string]struct{}

// Add inserts a path after cleaning it.
func (s Set) Add(p string) {
	s[filepath.Clean(p)] = struct{}{}
}

// Has reports whether p (cleaned) is in the set.
func (s Set) Has(p string) bool {
	_, ok := s[filepath.Clean(p)]
	return ok
}

// Difference returns the paths of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for p := range s {
		if _, ok := other[p]; !ok {
			out[p] = struct{}{}
		}
	}
	return out
}

// Sorted returns the paths in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// SplitPatterns splits a comma-separated pattern list. Entries are
// trimmed and empty entries dropped, so "" yields no patterns.
func SplitPatterns(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Resolve expands include and ignore patterns relative to the working
// directory and returns include minus ignore. A pattern with zero
// matches contributes nothing.
func Resolve(include, ignore []string) (Set, error) {
	included, err := Expand(include)
	if err != nil {
		return nil, fmt.Errorf("resolving include patterns: %w", err)
	}
	ignored, err := Expand(ignore)
	if err != nil {
		return nil, fmt.Errorf("resolving ignore patterns: %w", err)
	}
	return included.Difference(ignored), nil
}

// Expand returns the union of the regular files matched by patterns.
// Directories are never members of the set. A directory the globber
// cannot read is a fault.Filesystem error, never a silently smaller set.
func Expand(patterns []string) (Set, error) {
	out := make(Set)
	for _, pattern := range patterns {
		if err := Validate(pattern); err != nil {
			return nil, err
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFailOnIOErrors())
		if err != nil {
			if errors.Is(err, doublestar.ErrBadPattern) {
				return nil, fault.New(fault.Pattern, pattern, err)
			}
			return nil, fault.New(fault.Filesystem, pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				// Dangling symlinks have nothing to read.
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, fault.New(fault.Filesystem, m, err)
			}
			if info.IsDir() {
				continue
			}
			out.Add(m)
		}
	}
	return out, nil
}

// Validate reports a fault.Pattern error if pattern is malformed.
func Validate(pattern string) error {
	if !doublestar.ValidatePathPattern(pattern) {
		return fault.New(fault.Pattern, pattern, doublestar.ErrBadPattern)
	}
	return nil
}
