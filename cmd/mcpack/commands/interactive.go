package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"

	mcpackerrors "mcpack/internal/errors"
	"mcpack/internal/logging"
	"mcpack/internal/registry"
)

// pickPatterns opens an interactive multi-select over the registered
// patterns. Returns nil without error when the user aborts.
func pickPatterns(reg *registry.Registry) ([]string, error) {
	if !logging.IsTTY(os.Stdout) {
		return nil, mcpackerrors.NewUserError(
			errors.New("no patterns given and stdout is not a terminal"),
			"Run 'mcpack add <pattern>...' or 'mcpack list'")
	}

	names := reg.PatternNames()
	if len(names) == 0 {
		return nil, errors.New("no patterns registered")
	}

	idxs, err := fuzzyfinder.FindMulti(
		names,
		func(i int) string {
			p, err := reg.Pattern(names[i])
			if err != nil {
				return names[i]
			}
			return fmt.Sprintf("%s (%d servers)", p.Name, len(p.Servers))
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			p, err := reg.Pattern(names[i])
			if err != nil {
				return ""
			}
			preview := fmt.Sprintf("Pattern: %s\n\n%s\n\nServers:\n", p.Name, p.Description)
			for _, s := range p.Servers {
				srv, err := reg.Server(s)
				if err != nil {
					preview += fmt.Sprintf("  %s\n", s)
					continue
				}
				preview += fmt.Sprintf("  %s - %s\n", srv.Name, srv.Description)
			}
			return preview
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive pattern selection failed")
	}

	picked := make([]string, 0, len(idxs))
	for _, i := range idxs {
		picked = append(picked, names[i])
	}
	return picked, nil
}
