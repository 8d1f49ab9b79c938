// Package reconcile performs the add and remove operations: it compares
// the resolved server set against the host tool's state and invokes the
// host adapter for the delta, one server at a time.
//
// Per-server failures are isolated. One failing installation never stops
// the rest of the set, and a failed removal only means the server was
// not registered to begin with.
package reconcile

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"mcpack/internal/registry"
)

// Host is the mutating subset of the host adapter the reconciler needs.
type Host interface {
	Install(ctx context.Context, srv registry.Server) error
	Remove(ctx context.Context, name string) error
}

// AddOutcome classifies every server of an add operation.
type AddOutcome struct {
	// Installed lists servers registered by this run.
	Installed []string

	// AlreadyInstalled lists servers found registered before this run.
	AlreadyInstalled []string

	// Failed lists servers whose installation command exited non-zero.
	Failed []string
}

// AnyFailed reports whether the operation must exit non-zero.
func (o *AddOutcome) AnyFailed() bool {
	return len(o.Failed) > 0
}

// RemoveOutcome classifies every server of a remove operation.
type RemoveOutcome struct {
	// Removed lists servers the host tool unregistered.
	Removed []string

	// NotInstalled lists servers the host tool did not know about.
	NotInstalled []string
}

// Add installs every server of workingSet that is not already in
// installed, in order. Individual failures are reported inline on w and
// collected in the outcome; the loop always runs to completion.
func Add(
	ctx context.Context,
	h Host,
	reg *registry.Registry,
	workingSet []string,
	installed map[string]bool,
	w io.Writer,
	logger *slog.Logger,
) (*AddOutcome, error) {
	outcome := &AddOutcome{}

	for _, name := range workingSet {
		if installed[name] {
			logger.Debug("server already installed", "server", name)
			fmt.Fprintf(w, "Skipping '%s' (already installed)\n", name)
			outcome.AlreadyInstalled = append(outcome.AlreadyInstalled, name)
			continue
		}

		srv, err := reg.Server(name)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(w, "Installing '%s'... ", name)
		if err := h.Install(ctx, srv); err != nil {
			fmt.Fprintf(w, "failed\n  %v\n", err)
			logger.Error("installation failed", "server", name, "error", err)
			outcome.Failed = append(outcome.Failed, name)
			continue
		}
		fmt.Fprintln(w, "done")
		outcome.Installed = append(outcome.Installed, name)
	}

	return outcome, nil
}

// Remove unregisters every resolved server unconditionally, in order.
// A non-zero removal exit is recorded as "not installed", never as a
// failure; removing something absent is not an error worth failing over.
func Remove(
	ctx context.Context,
	h Host,
	resolved []string,
	w io.Writer,
	logger *slog.Logger,
) *RemoveOutcome {
	outcome := &RemoveOutcome{}

	for _, name := range resolved {
		fmt.Fprintf(w, "Removing '%s'... ", name)
		if err := h.Remove(ctx, name); err != nil {
			fmt.Fprintln(w, "not installed")
			logger.Debug("removal reported not installed", "server", name, "error", err)
			outcome.NotInstalled = append(outcome.NotInstalled, name)
			continue
		}
		fmt.Fprintln(w, "done")
		outcome.Removed = append(outcome.Removed, name)
	}

	return outcome
}
