package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"

	"mcpack/internal/registry"
)

func TestToolCheck_Found(t *testing.T) {
	c := &ToolCheck{
		Tool:     "npx",
		lookPath: func(string) (string, error) { return "/usr/bin/npx", nil },
	}

	result := c.Run(context.Background())
	if result.Status != SeverityPass {
		t.Errorf("Status = %v, want pass", result.Status)
	}
}

func TestToolCheck_MissingHard(t *testing.T) {
	c := &ToolCheck{
		Tool:     "terraform",
		Hint:     "install Terraform",
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}

	result := c.Run(context.Background())
	if result.Status != SeverityError {
		t.Errorf("Status = %v, want error", result.Status)
	}
	if result.FixHint != "install Terraform" {
		t.Errorf("FixHint = %q", result.FixHint)
	}
}

func TestToolCheck_MissingSoft(t *testing.T) {
	c := &ToolCheck{
		Tool:     "docker",
		Soft:     true,
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}

	result := c.Run(context.Background())
	if result.Status != SeverityWarning {
		t.Errorf("Status = %v, want warning for the soft class", result.Status)
	}
}

func TestDockerDaemonCheck(t *testing.T) {
	up := &DockerDaemonCheck{probe: func(context.Context) error { return nil }}
	if got := up.Run(context.Background()).Status; got != SeverityPass {
		t.Errorf("reachable daemon Status = %v, want pass", got)
	}

	down := &DockerDaemonCheck{probe: func(context.Context) error { return errors.New("no daemon") }}
	result := down.Run(context.Background())
	if result.Status != SeverityWarning {
		t.Errorf("unreachable daemon Status = %v, want warning (soft class)", result.Status)
	}
}

func TestOverlayCheck(t *testing.T) {
	reg := registry.New()

	t.Run("missing file passes", func(t *testing.T) {
		c := &OverlayCheck{
			Path:     filepath.Join(t.TempDir(), "patterns.toml"),
			Registry: reg,
		}
		if got := c.Run(context.Background()).Status; got != SeverityPass {
			t.Errorf("Status = %v, want pass for optional file", got)
		}
	})

	t.Run("valid file passes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patterns.toml")
		content := "[[patterns]]\nname = \"team\"\nservers = [\"filesystem\"]\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		c := &OverlayCheck{Path: path, Registry: reg}
		if got := c.Run(context.Background()).Status; got != SeverityPass {
			t.Errorf("Status = %v, want pass", got)
		}
	})

	t.Run("unknown server fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patterns.toml")
		content := "[[patterns]]\nname = \"team\"\nservers = [\"no-such\"]\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		c := &OverlayCheck{Path: path, Registry: reg}
		if got := c.Run(context.Background()).Status; got != SeverityError {
			t.Errorf("Status = %v, want error", got)
		}
	})
}

func TestRun_Summary(t *testing.T) {
	checks := []Check{
		&ToolCheck{Tool: "a", lookPath: func(string) (string, error) { return "/bin/a", nil }},
		&ToolCheck{Tool: "b", lookPath: func(string) (string, error) { return "", errors.New("x") }},
		&ToolCheck{Tool: "c", Soft: true, lookPath: func(string) (string, error) { return "", errors.New("x") }},
	}

	report := Run(context.Background(), checks)

	if report.Summary.Passed != 1 || report.Summary.Errors != 1 || report.Summary.Warnings != 1 {
		t.Errorf("Summary = %+v, want 1/1/1", report.Summary)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() should be true")
	}
	if len(report.Results) != 3 {
		t.Errorf("Results = %d entries, want 3", len(report.Results))
	}
}

func TestDefaultChecks_CoverAllClasses(t *testing.T) {
	checks := DefaultChecks(registry.New(), "claude", "/tmp/none.toml")

	names := make(map[string]bool)
	for _, c := range checks {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"tool-claude", "tool-npx", "tool-uvx", "tool-docker",
		"tool-terraform", "docker-daemon", "patterns-file",
	} {
		if !names[want] {
			t.Errorf("DefaultChecks missing %q", want)
		}
	}
}
