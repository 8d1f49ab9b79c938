// Package host is a narrow adapter over the host tool's CLI.
//
// All interaction with the external system of record goes through here:
// listing currently registered servers, registering one, and removing
// one. Each call is a blocking external process invocation; only the
// exit status and, for listing, stdout are interpreted. The line-based
// list format is isolated in [ParseList] so a structured listing format
// can replace it without touching callers.
package host

import (
	"context"
	"log/slog"
	"os/exec"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"mcpack/internal/logging"
	"mcpack/internal/registry"
)

// Client invokes the host tool's CLI.
type Client struct {
	binary string
	scope  string
	logger *slog.Logger

	// run is swappable for tests. It executes the host binary with the
	// given arguments and returns combined output.
	run func(ctx context.Context, args ...string) ([]byte, error)
}

// NewClient creates a Client for the given host binary and registration scope.
func NewClient(binary, scope string, logger *slog.Logger) *Client {
	c := &Client{
		binary: binary,
		scope:  scope,
		logger: logger,
	}
	c.run = func(ctx context.Context, args ...string) ([]byte, error) {
		c.logger.Log(ctx, logging.LevelTrace, "exec", "binary", c.binary, "args", strings.Join(args, " "))
		return exec.CommandContext(ctx, c.binary, args...).CombinedOutput()
	}
	return c
}

// ListNames returns the set of server names currently registered with
// the host tool.
//
// A failed query is treated as "nothing installed": detection must never
// block an installation, at the cost of possibly redundant install
// attempts (the host tool overwrites on re-add). The failure is logged.
func (c *Client) ListNames(ctx context.Context) map[string]bool {
	output, err := c.run(ctx, "mcp", "list")
	if err != nil {
		c.logger.Warn("could not query installed servers, assuming none",
			"error", err)
		return map[string]bool{}
	}
	return ParseList(output)
}

// ParseList extracts server names from the host tool's listing output.
// Each registration is reported as "name: details"; the name is the
// trimmed text before the first colon. Lines without a colon are skipped,
// so partial or garbled output degrades instead of failing.
func ParseList(output []byte) map[string]bool {
	installed := make(map[string]bool)
	for _, line := range strings.Split(string(output), "\n") {
		name, _, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		installed[name] = true
	}
	return installed
}

// Install registers a server with the host tool.
func (c *Client) Install(ctx context.Context, srv registry.Server) error {
	args := []string{"mcp", "add", srv.Name, "--scope", c.scope}

	// Sorted env flags keep the invocation deterministic.
	keys := make([]string, 0, len(srv.Env))
	for k := range srv.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--env", k+"="+srv.Env[k])
	}

	args = append(args, "--", srv.Command)
	args = append(args, srv.Args...)

	output, err := c.run(ctx, args...)
	if err != nil {
		return errors.Wrapf(err, "registering %s: %s", srv.Name, strings.TrimSpace(string(output)))
	}
	return nil
}

// Remove unregisters a server from the host tool. A non-zero exit means
// the server was not registered; callers treat that as a warning.
func (c *Client) Remove(ctx context.Context, name string) error {
	output, err := c.run(ctx, "mcp", "remove", name, "--scope", c.scope)
	if err != nil {
		return errors.Wrapf(err, "removing %s: %s", name, strings.TrimSpace(string(output)))
	}
	return nil
}
