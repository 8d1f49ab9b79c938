package registry

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for registry lookups.
var (
	// ErrPatternNotFound indicates the requested pattern is not registered.
	ErrPatternNotFound = errors.New("pattern not found")

	// ErrServerNotFound indicates the requested server is not registered.
	ErrServerNotFound = errors.New("server not found")
)

// Prerequisite identifies the class of external tool a server needs to run.
type Prerequisite string

// Prerequisite classes. Docker is the only soft class: when it is absent
// or its daemon is unreachable, dependent servers are skipped instead of
// aborting the operation.
const (
	PrereqNone      Prerequisite = "none"
	PrereqNode      Prerequisite = "node"
	PrereqPython    Prerequisite = "python"
	PrereqDocker    Prerequisite = "docker"
	PrereqTerraform Prerequisite = "terraform"
)

// Tool returns the binary probed on PATH for this prerequisite class,
// or an empty string for PrereqNone.
func (p Prerequisite) Tool() string {
	switch p {
	case PrereqNode:
		return "npx"
	case PrereqPython:
		return "uvx"
	case PrereqDocker:
		return "docker"
	case PrereqTerraform:
		return "terraform"
	}
	return ""
}

// Soft reports whether a missing tool of this class only degrades the
// operation instead of aborting it.
func (p Prerequisite) Soft() bool {
	return p == PrereqDocker
}

// InstallHint returns a short human instruction for obtaining the tool.
func (p Prerequisite) InstallHint() string {
	switch p {
	case PrereqNode:
		return "install Node.js (https://nodejs.org) so npx is on PATH"
	case PrereqPython:
		return "install uv (https://docs.astral.sh/uv) so uvx is on PATH"
	case PrereqDocker:
		return "install Docker (https://docs.docker.com/get-docker) and start the daemon"
	case PrereqTerraform:
		return "install Terraform (https://developer.hashicorp.com/terraform/install)"
	}
	return ""
}

// Server describes a single MCP server integration: how it is launched
// and what it needs. Servers are defined at build time and immutable.
type Server struct {
	// Name is the unique identity used with the host tool.
	Name string

	// Description is a one-line human summary.
	Description string

	// Prerequisite is the external tool class needed to run the server.
	Prerequisite Prerequisite

	// Command and Args form the launch invocation registered with the
	// host tool.
	Command string
	Args    []string

	// Env holds fixed environment variables passed at registration time.
	Env map[string]string
}

// Pattern is a named, ordered group of servers representing a use case.
type Pattern struct {
	// Name is the unique, lowercase pattern identity.
	Name string

	// Description is a one-line human summary.
	Description string

	// Servers lists member server names in registry order. Patterns may
	// overlap; resolution deduplicates.
	Servers []string
}

// Registry is an ordered lookup table of patterns and server descriptors.
type Registry struct {
	patternOrder []string
	patterns     map[string]Pattern
	servers      map[string]Server
}

// New builds a Registry from the built-in tables. The returned value owns
// its own copies, so overlay application never touches package data.
func New() *Registry {
	r := &Registry{
		patterns: make(map[string]Pattern, len(builtinPatterns)),
		servers:  make(map[string]Server, len(builtinServers)),
	}

	for _, s := range builtinServers {
		r.servers[s.Name] = s
	}
	for _, p := range builtinPatterns {
		cp := p
		cp.Servers = append([]string(nil), p.Servers...)
		r.patternOrder = append(r.patternOrder, cp.Name)
		r.patterns[cp.Name] = cp
	}

	return r
}

// PatternNames returns all pattern names in registry order.
func (r *Registry) PatternNames() []string {
	return append([]string(nil), r.patternOrder...)
}

// HasPattern reports whether name is a registered pattern.
func (r *Registry) HasPattern(name string) bool {
	_, ok := r.patterns[name]
	return ok
}

// Pattern returns the pattern registered under name.
// Returns ErrPatternNotFound for unrecognized names.
func (r *Registry) Pattern(name string) (Pattern, error) {
	p, ok := r.patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrPatternNotFound, "%q", name)
	}
	return p, nil
}

// PatternServers returns the ordered server names of the named pattern.
// Returns ErrPatternNotFound for unrecognized names.
func (r *Registry) PatternServers(name string) ([]string, error) {
	p, err := r.Pattern(name)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), p.Servers...), nil
}

// Server returns the descriptor registered under name.
// Returns ErrServerNotFound for unrecognized names.
func (r *Registry) Server(name string) (Server, error) {
	s, ok := r.servers[name]
	if !ok {
		return Server{}, errors.Wrapf(ErrServerNotFound, "%q", name)
	}
	return s, nil
}
