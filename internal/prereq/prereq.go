// Package prereq gates installation on the presence of external tools.
//
// The host CLI itself is always a hard requirement. Each server's
// prerequisite class is probed once per run; hard classes abort before
// any side effect, while the docker class only drops the servers that
// depend on it. List and remove operations never consult this package.
package prereq

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"mcpack/internal/registry"
)

// Missing describes one hard-required tool that is not available.
type Missing struct {
	// Tool is the binary that was probed.
	Tool string

	// Hint is actionable install guidance.
	Hint string
}

// Result is the outcome of a prerequisite check over a resolved set.
type Result struct {
	// HardMissing lists every missing hard tool. Non-empty means the
	// operation must abort with zero installation attempts.
	HardMissing []Missing

	// SoftSkipped lists servers dropped because the docker runtime is
	// absent or not running.
	SoftSkipped []string

	// WorkingSet is the resolved set minus SoftSkipped, in order.
	WorkingSet []string
}

// Degraded reports whether any servers were dropped by the soft check.
func (r *Result) Degraded() bool {
	return len(r.SoftSkipped) > 0
}

// Checker probes the environment for the tools a resolved server set needs.
type Checker struct {
	reg        *registry.Registry
	hostBinary string
	logger     *slog.Logger

	// lookPath and probeDocker are swappable for tests.
	lookPath    func(string) (string, error)
	probeDocker func(context.Context) error
}

// NewChecker creates a Checker probing the real environment.
func NewChecker(reg *registry.Registry, hostBinary string, logger *slog.Logger) *Checker {
	return &Checker{
		reg:        reg,
		hostBinary: hostBinary,
		logger:     logger,
		lookPath:   exec.LookPath,
		probeDocker: func(ctx context.Context) error {
			// Binary presence alone is not enough; the daemon must answer.
			return exec.CommandContext(ctx, "docker", "info").Run()
		},
	}
}

// Check validates the environment for installing the given servers.
// It returns a registry lookup error only for unregistered server names;
// missing tools are reported through the Result, not as errors.
func (c *Checker) Check(ctx context.Context, servers []string) (*Result, error) {
	result := &Result{}

	// The host CLI is required no matter what the set contains.
	if _, err := c.lookPath(c.hostBinary); err != nil {
		result.HardMissing = append(result.HardMissing, Missing{
			Tool: c.hostBinary,
			Hint: fmt.Sprintf("install the host CLI and ensure %q is on PATH", c.hostBinary),
		})
	}

	// Distinct prerequisite classes, first-seen order.
	var classes []registry.Prerequisite
	seen := make(map[registry.Prerequisite]bool)
	for _, name := range servers {
		srv, err := c.reg.Server(name)
		if err != nil {
			return nil, err
		}
		p := srv.Prerequisite
		if p == registry.PrereqNone || seen[p] {
			continue
		}
		seen[p] = true
		classes = append(classes, p)
	}

	dockerDown := false
	for _, p := range classes {
		tool := p.Tool()

		if !p.Soft() {
			if _, err := c.lookPath(tool); err != nil {
				c.logger.Debug("hard prerequisite missing", "tool", tool)
				result.HardMissing = append(result.HardMissing, Missing{
					Tool: tool,
					Hint: p.InstallHint(),
				})
			}
			continue
		}

		if _, err := c.lookPath(tool); err != nil {
			c.logger.Debug("docker binary not found")
			dockerDown = true
		} else if err := c.probeDocker(ctx); err != nil {
			c.logger.Debug("docker daemon not reachable", "error", err)
			dockerDown = true
		}
	}

	for _, name := range servers {
		srv, err := c.reg.Server(name)
		if err != nil {
			return nil, err
		}
		if dockerDown && srv.Prerequisite.Soft() {
			result.SoftSkipped = append(result.SoftSkipped, name)
			continue
		}
		result.WorkingSet = append(result.WorkingSet, name)
	}

	return result, nil
}
