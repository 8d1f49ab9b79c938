package commands

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"mcpack/internal/config"
	mcpackerrors "mcpack/internal/errors"
	"mcpack/internal/prereq"
	"mcpack/internal/registry"

	"github.com/fatih/color"
)

func init() {
	// Keep summary assertions free of ANSI escapes.
	color.NoColor = true
}

// fakeHost is an in-memory stand-in for the host adapter.
type fakeHost struct {
	installed  map[string]bool
	installErr map[string]error
	removeErr  map[string]error

	installCalls []string
	removeCalls  []string
}

func (f *fakeHost) ListNames(_ context.Context) map[string]bool {
	out := make(map[string]bool, len(f.installed))
	for k, v := range f.installed {
		out[k] = v
	}
	return out
}

func (f *fakeHost) Install(_ context.Context, srv registry.Server) error {
	f.installCalls = append(f.installCalls, srv.Name)
	if err, ok := f.installErr[srv.Name]; ok {
		return err
	}
	return nil
}

func (f *fakeHost) Remove(_ context.Context, name string) error {
	f.removeCalls = append(f.removeCalls, name)
	if err, ok := f.removeErr[name]; ok {
		return err
	}
	return nil
}

// setupCommandTest wires the command package globals to a fake host and
// an always-passing prerequisite gate, restoring them when the test ends.
func setupCommandTest(t *testing.T, h *fakeHost) {
	t.Helper()

	origCfg := cfg
	origNewHostClient := newHostClient
	origCheckPrereqs := checkPrereqs
	t.Cleanup(func() {
		cfg = origCfg
		newHostClient = origNewHostClient
		checkPrereqs = origCheckPrereqs
		addScope, addDryRun = "", false
		removeScope, removeDryRun = "", false
	})

	cfg = &config.Config{
		Version:    1,
		HostBinary: "claude",
		Scope:      config.ScopeUser,
	}

	newHostClient = func(binary, scope string, logger *slog.Logger) hostClient {
		return h
	}
	checkPrereqs = func(_ context.Context, _ *registry.Registry, _ string, servers []string) (*prereq.Result, error) {
		return &prereq.Result{WorkingSet: servers}, nil
	}
}

func TestAddCommand_Metadata(t *testing.T) {
	if addCmd.Use != "add [pattern...]" {
		t.Errorf("Use = %q", addCmd.Use)
	}
	if addCmd.Flags().Lookup("scope") == nil {
		t.Error("--scope flag should be defined")
	}
	if addCmd.Flags().Lookup("dry-run") == nil {
		t.Error("--dry-run flag should be defined")
	}
}

func TestRunAdd_InstallsDelta(t *testing.T) {
	h := &fakeHost{installed: map[string]bool{"filesystem": true, "git": true}}
	setupCommandTest(t, h)

	var buf bytes.Buffer
	if err := runAddWithWriter(t.Context(), []string{"core"}, &buf); err != nil {
		t.Fatalf("runAddWithWriter() error = %v", err)
	}

	want := []string{"fetch", "memory", "sequential-thinking"}
	if len(h.installCalls) != len(want) {
		t.Fatalf("install calls = %v, want %v", h.installCalls, want)
	}
	for i, name := range want {
		if h.installCalls[i] != name {
			t.Errorf("install call %d = %q, want %q", i, h.installCalls[i], name)
		}
	}

	out := buf.String()
	if !strings.Contains(out, "Skipping 'filesystem' (already installed)") {
		t.Errorf("output missing skip line:\n%s", out)
	}
	if !strings.Contains(out, "3 installed") || !strings.Contains(out, "2 already installed") {
		t.Errorf("output missing summary:\n%s", out)
	}
}

func TestRunAdd_OverlappingPatternsDedupe(t *testing.T) {
	h := &fakeHost{}
	setupCommandTest(t, h)

	var buf bytes.Buffer
	if err := runAddWithWriter(t.Context(), []string{"aws", "iac"}, &buf); err != nil {
		t.Fatalf("runAddWithWriter() error = %v", err)
	}

	// cdk appears in both patterns; first-occurrence order wins.
	want := []string{"aws-core", "aws-docs", "cdk", "fetch", "terraform", "filesystem"}
	if len(h.installCalls) != len(want) {
		t.Fatalf("install calls = %v, want %v", h.installCalls, want)
	}
	for i, name := range want {
		if h.installCalls[i] != name {
			t.Errorf("install call %d = %q, want %q", i, h.installCalls[i], name)
		}
	}
}

func TestRunAdd_UnknownPatternsReportedTogether(t *testing.T) {
	h := &fakeHost{}
	setupCommandTest(t, h)

	var buf bytes.Buffer
	err := runAddWithWriter(t.Context(), []string{"core", "nope", "bogus"}, &buf)
	if err == nil {
		t.Fatal("expected error for unknown patterns")
	}

	var exitErr *mcpackerrors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Code != mcpackerrors.ExitUser {
		t.Errorf("exit code = %d, want %d", exitErr.Code, mcpackerrors.ExitUser)
	}
	if !errors.Is(err, mcpackerrors.ErrUnknownPattern) {
		t.Error("error should wrap ErrUnknownPattern")
	}
	msg := err.Error()
	if !strings.Contains(msg, "nope") || !strings.Contains(msg, "bogus") {
		t.Errorf("error should name every unknown pattern, got %q", msg)
	}

	if len(h.installCalls) != 0 {
		t.Errorf("no installs should run, got %v", h.installCalls)
	}
}

func TestRunAdd_CaseInsensitivePatternNames(t *testing.T) {
	h := &fakeHost{}
	setupCommandTest(t, h)

	var buf bytes.Buffer
	if err := runAddWithWriter(t.Context(), []string{"  AWS "}, &buf); err != nil {
		t.Fatalf("runAddWithWriter() error = %v", err)
	}
	if len(h.installCalls) != 4 {
		t.Errorf("install calls = %v, want all 4 aws servers", h.installCalls)
	}
}

func TestRunAdd_HardMissingAborts(t *testing.T) {
	h := &fakeHost{}
	setupCommandTest(t, h)

	checkPrereqs = func(_ context.Context, _ *registry.Registry, _ string, servers []string) (*prereq.Result, error) {
		return &prereq.Result{
			HardMissing: []prereq.Missing{
				{Tool: "npx", Hint: "install Node.js"},
				{Tool: "uvx", Hint: "install uv"},
			},
		}, nil
	}

	var buf bytes.Buffer
	err := runAddWithWriter(t.Context(), []string{"core"}, &buf)
	if err == nil {
		t.Fatal("expected error for missing prerequisites")
	}

	var exitErr *mcpackerrors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Code != mcpackerrors.ExitSystem {
		t.Errorf("exit code = %d, want %d", exitErr.Code, mcpackerrors.ExitSystem)
	}
	if !errors.Is(err, mcpackerrors.ErrMissingPrerequisite) {
		t.Error("error should wrap ErrMissingPrerequisite")
	}
	msg := err.Error()
	if !strings.Contains(msg, "npx") || !strings.Contains(msg, "uvx") {
		t.Errorf("error should name every missing tool, got %q", msg)
	}

	if len(h.installCalls) != 0 {
		t.Errorf("no installs should run before the gate, got %v", h.installCalls)
	}
}

func TestRunAdd_DockerDegradationSkipsServers(t *testing.T) {
	h := &fakeHost{}
	setupCommandTest(t, h)

	checkPrereqs = func(_ context.Context, _ *registry.Registry, _ string, servers []string) (*prereq.Result, error) {
		var working []string
		var skipped []string
		for _, s := range servers {
			if strings.HasPrefix(s, "docker-") {
				skipped = append(skipped, s)
				continue
			}
			working = append(working, s)
		}
		return &prereq.Result{SoftSkipped: skipped, WorkingSet: working}, nil
	}

	var buf bytes.Buffer
	if err := runAddWithWriter(t.Context(), []string{"containers"}, &buf); err != nil {
		t.Fatalf("runAddWithWriter() error = %v", err)
	}

	if len(h.installCalls) != 0 {
		t.Errorf("docker servers should be skipped, got installs %v", h.installCalls)
	}
	out := buf.String()
	if !strings.Contains(out, "Warning: docker unavailable, skipping: docker-gateway, docker-hub") {
		t.Errorf("output missing degradation warning:\n%s", out)
	}
	if !strings.Contains(out, "2 skipped (docker unavailable)") {
		t.Errorf("output missing skipped summary:\n%s", out)
	}
}

func TestRunAdd_FailureIsolation(t *testing.T) {
	h := &fakeHost{
		installErr: map[string]error{"fetch": errors.New("exit status 1")},
	}
	setupCommandTest(t, h)

	var buf bytes.Buffer
	err := runAddWithWriter(t.Context(), []string{"core"}, &buf)
	if err == nil {
		t.Fatal("expected non-nil error when an installation fails")
	}

	var exitErr *mcpackerrors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Code != mcpackerrors.ExitSystem {
		t.Errorf("exit code = %d, want %d", exitErr.Code, mcpackerrors.ExitSystem)
	}
	if !errors.Is(err, mcpackerrors.ErrInstallFailed) {
		t.Error("error should wrap ErrInstallFailed")
	}

	// All five core servers were attempted despite the mid-set failure.
	if len(h.installCalls) != 5 {
		t.Errorf("install calls = %v, want all 5 attempted", h.installCalls)
	}

	out := buf.String()
	if !strings.Contains(out, "Installing 'fetch'... failed") {
		t.Errorf("output missing inline failure:\n%s", out)
	}
	if !strings.Contains(out, "4 installed") || !strings.Contains(out, "1 failed") {
		t.Errorf("output missing summary:\n%s", out)
	}
}

func TestRunAdd_DryRunInvokesNothing(t *testing.T) {
	h := &fakeHost{}
	setupCommandTest(t, h)

	checkPrereqs = func(_ context.Context, _ *registry.Registry, _ string, _ []string) (*prereq.Result, error) {
		t.Fatal("dry-run must not run the prerequisite gate")
		return nil, nil
	}

	addDryRun = true
	var buf bytes.Buffer
	if err := runAddWithWriter(t.Context(), []string{"core"}, &buf); err != nil {
		t.Fatalf("runAddWithWriter() error = %v", err)
	}

	if len(h.installCalls) != 0 {
		t.Errorf("dry-run must not install, got %v", h.installCalls)
	}
	out := buf.String()
	if !strings.Contains(out, "Would ensure 5 server(s) are installed:") {
		t.Errorf("output missing dry-run header:\n%s", out)
	}
	if !strings.Contains(out, "sequential-thinking") {
		t.Errorf("output missing resolved server:\n%s", out)
	}
}

func TestRunAdd_Idempotent(t *testing.T) {
	h := &fakeHost{installed: map[string]bool{
		"filesystem": true, "git": true, "fetch": true,
		"memory": true, "sequential-thinking": true,
	}}
	setupCommandTest(t, h)

	var buf bytes.Buffer
	if err := runAddWithWriter(t.Context(), []string{"core"}, &buf); err != nil {
		t.Fatalf("runAddWithWriter() error = %v", err)
	}

	if len(h.installCalls) != 0 {
		t.Errorf("second run should install nothing, got %v", h.installCalls)
	}
	if !strings.Contains(buf.String(), "5 already installed") {
		t.Errorf("output missing already-installed summary:\n%s", buf.String())
	}
}
