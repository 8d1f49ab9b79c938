package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	mcpackerrors "mcpack/internal/errors"
)

// Registration scopes understood by the host tool.
const (
	ScopeLocal   = "local"
	ScopeUser    = "user"
	ScopeProject = "project"
)

// Scopes returns the valid registration scopes in display order.
func Scopes() []string {
	return []string{ScopeLocal, ScopeUser, ScopeProject}
}

// ValidScope reports whether s is a recognized registration scope.
func ValidScope(s string) bool {
	switch s {
	case ScopeLocal, ScopeUser, ScopeProject:
		return true
	}
	return false
}

// Validate checks a loaded configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.WithStack(mcpackerrors.ErrInvalidConfig)
	}

	if cfg.HostBinary == "" {
		return errors.Wrap(mcpackerrors.ErrInvalidConfig, "host_binary must not be empty")
	}

	if !ValidScope(cfg.Scope) {
		return errors.Wrapf(mcpackerrors.ErrInvalidConfig,
			"invalid scope %q (valid: %s)", cfg.Scope, strings.Join(Scopes(), ", "))
	}

	return nil
}
