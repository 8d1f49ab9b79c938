package doctor

import (
	"context"
	"fmt"
	"os/exec"

	"mcpack/internal/registry"
)

// ToolCheck verifies that an external binary is available on PATH.
type ToolCheck struct {
	// Tool is the binary to probe.
	Tool string

	// Hint is the install guidance shown on failure.
	Hint string

	// Soft downgrades a miss from error to warning.
	Soft bool

	// lookPath is swappable for tests; nil means exec.LookPath.
	lookPath func(string) (string, error)
}

var _ Check = (*ToolCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ToolCheck) Name() string {
	return "tool-" + c.Tool
}

// Run probes PATH for the tool.
func (c *ToolCheck) Run(_ context.Context) *CheckResult {
	look := c.lookPath
	if look == nil {
		look = exec.LookPath
	}

	path, err := look(c.Tool)
	if err != nil {
		status := SeverityError
		if c.Soft {
			status = SeverityWarning
		}
		return &CheckResult{
			Name:    c.Name(),
			Status:  status,
			Message: fmt.Sprintf("%s not found on PATH", c.Tool),
			FixHint: c.Hint,
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  SeverityPass,
		Message: fmt.Sprintf("%s found at %s", c.Tool, path),
	}
}

// DockerDaemonCheck verifies the docker daemon answers, not just that
// the binary exists.
type DockerDaemonCheck struct {
	// probe is swappable for tests; nil runs `docker info`.
	probe func(context.Context) error
}

var _ Check = (*DockerDaemonCheck)(nil)

// Name returns the unique identifier for this check.
func (c *DockerDaemonCheck) Name() string {
	return "docker-daemon"
}

// Run probes the docker daemon.
func (c *DockerDaemonCheck) Run(ctx context.Context) *CheckResult {
	probe := c.probe
	if probe == nil {
		probe = func(ctx context.Context) error {
			return exec.CommandContext(ctx, "docker", "info").Run()
		}
	}

	if err := probe(ctx); err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  SeverityWarning,
			Message: "docker daemon is not reachable",
			FixHint: "start Docker; docker-dependent servers will be skipped until then",
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  SeverityPass,
		Message: "docker daemon is reachable",
	}
}

// OverlayCheck verifies the custom patterns file parses and references
// only registered servers.
type OverlayCheck struct {
	// Path is the overlay file location.
	Path string

	// Registry validates server references.
	Registry *registry.Registry
}

var _ Check = (*OverlayCheck)(nil)

// Name returns the unique identifier for this check.
func (c *OverlayCheck) Name() string {
	return "patterns-file"
}

// Run loads the overlay and applies it to the configured registry.
// Application is idempotent, so re-checking an already-overlaid
// registry is safe.
func (c *OverlayCheck) Run(_ context.Context) *CheckResult {
	overlay, err := registry.LoadOverlayFile(c.Path)
	if err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "fix or delete " + c.Path,
		}
	}
	if overlay == nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  SeverityPass,
			Message: "no custom patterns file (optional)",
		}
	}

	reg := c.Registry
	if reg == nil {
		reg = registry.New()
	}
	if err := reg.ApplyOverlay(overlay); err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "fix the listed entries in " + c.Path,
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  SeverityPass,
		Message: fmt.Sprintf("%d custom pattern(s) loaded from %s", len(overlay.Patterns), c.Path),
	}
}

// DefaultChecks returns the standard environment diagnosis for mcpack:
// the host CLI, every prerequisite tool class, the docker daemon, and
// the custom patterns file.
func DefaultChecks(reg *registry.Registry, hostBinary, patternsFile string) []Check {
	checks := []Check{
		&ToolCheck{
			Tool: hostBinary,
			Hint: fmt.Sprintf("install the host CLI and ensure %q is on PATH", hostBinary),
		},
	}

	for _, p := range []registry.Prerequisite{
		registry.PrereqNode,
		registry.PrereqPython,
		registry.PrereqDocker,
		registry.PrereqTerraform,
	} {
		checks = append(checks, &ToolCheck{
			Tool: p.Tool(),
			Hint: p.InstallHint(),
			Soft: p.Soft(),
		})
	}

	checks = append(checks,
		&DockerDaemonCheck{},
		&OverlayCheck{Path: patternsFile, Registry: reg},
	)

	return checks
}
