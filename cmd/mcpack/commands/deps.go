package commands

import (
	"context"
	"log/slog"

	"mcpack/internal/host"
	"mcpack/internal/prereq"
	"mcpack/internal/registry"
)

// hostClient is the subset of the host adapter the commands need.
type hostClient interface {
	ListNames(ctx context.Context) map[string]bool
	Install(ctx context.Context, srv registry.Server) error
	Remove(ctx context.Context, name string) error
}

// newHostClient creates the host adapter. Swappable for tests.
var newHostClient = func(binary, scope string, logger *slog.Logger) hostClient {
	return host.NewClient(binary, scope, logger)
}

// checkPrereqs runs the prerequisite gate. Swappable for tests.
var checkPrereqs = func(ctx context.Context, reg *registry.Registry, hostBinary string, servers []string) (*prereq.Result, error) {
	return prereq.NewChecker(reg, hostBinary, slog.Default()).Check(ctx, servers)
}
