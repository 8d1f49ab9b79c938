// Package resolve expands requested pattern names into the concrete,
// deduplicated server list they imply.
//
// Names are case-insensitive at the boundary and normalized to lowercase
// before any registry lookup. Validation reports every unknown name in a
// single error so the user can fix all typos in one pass.
package resolve

import (
	"strings"

	"github.com/cockroachdb/errors"

	mcpackerrors "mcpack/internal/errors"
	"mcpack/internal/registry"
)

// Normalize canonicalizes a pattern name for registry lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeAll canonicalizes every name, preserving order.
func NormalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Normalize(n)
	}
	return out
}

// Validate checks that every normalized name is a registered pattern.
// All unknown names are reported together in one ErrUnknownPattern error.
func Validate(r *registry.Registry, names []string) error {
	var unknown []string
	for _, n := range names {
		if !r.HasPattern(n) {
			unknown = append(unknown, n)
		}
	}

	if len(unknown) > 0 {
		return errors.Wrapf(mcpackerrors.ErrUnknownPattern,
			"%s (valid: %s)",
			strings.Join(unknown, ", "),
			strings.Join(r.PatternNames(), ", "))
	}
	return nil
}

// Resolve expands the requested patterns, in order, into a deduplicated
// server list. A server's position reflects the first pattern that
// introduced it. Names must already be normalized and validated.
func Resolve(r *registry.Registry, names []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, name := range names {
		servers, err := r.PatternServers(name)
		if err != nil {
			return nil, err
		}
		for _, s := range servers {
			if seen[s] {
				continue
			}
			seen[s] = true
			resolved = append(resolved, s)
		}
	}

	return resolved, nil
}
