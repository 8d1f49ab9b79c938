package registry

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Overlay holds user-defined pattern additions parsed from the custom
// patterns file.
type Overlay struct {
	Patterns []OverlayPattern `toml:"patterns"`
}

// OverlayPattern is a single pattern entry in the overlay file. Naming an
// existing pattern extends it; a new name defines a new pattern. All
// servers must already be registered.
type OverlayPattern struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Servers     []string `toml:"servers"`
}

// LoadOverlayFile reads and parses the overlay file at path.
// A missing file is not an error; it returns a nil overlay.
func LoadOverlayFile(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading patterns file %s", path)
	}

	var o Overlay
	if err := toml.Unmarshal(data, &o); err != nil {
		return nil, errors.Wrapf(err, "parsing patterns file %s", path)
	}

	return &o, nil
}

// ApplyOverlay merges overlay patterns into the registry. Servers that
// are not registered are reported together, per entry, and the entry is
// skipped as a whole; valid entries still apply.
func (r *Registry) ApplyOverlay(o *Overlay) error {
	if o == nil {
		return nil
	}

	var problems []string
	for _, op := range o.Patterns {
		name := strings.ToLower(strings.TrimSpace(op.Name))
		if name == "" {
			problems = append(problems, "pattern entry with empty name")
			continue
		}

		var unknown []string
		for _, s := range op.Servers {
			if _, ok := r.servers[s]; !ok {
				unknown = append(unknown, s)
			}
		}
		if len(unknown) > 0 {
			problems = append(problems,
				name+": unknown servers "+strings.Join(unknown, ", "))
			continue
		}

		if existing, ok := r.patterns[name]; ok {
			// Extend a known pattern with servers it does not already list.
			for _, s := range op.Servers {
				if !contains(existing.Servers, s) {
					existing.Servers = append(existing.Servers, s)
				}
			}
			r.patterns[name] = existing
			continue
		}

		r.patternOrder = append(r.patternOrder, name)
		r.patterns[name] = Pattern{
			Name:        name,
			Description: op.Description,
			Servers:     append([]string(nil), op.Servers...),
		}
	}

	if len(problems) > 0 {
		return errors.Newf("invalid overlay entries: %s", strings.Join(problems, "; "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
