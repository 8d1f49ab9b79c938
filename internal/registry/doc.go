// Package registry holds the static tables behind mcpack: which MCP
// servers exist, how each one is launched, what external tool it needs,
// and which named patterns group them.
//
// The built-in tables are compiled in and immutable for the process
// lifetime. An optional TOML overlay file may add patterns (or extend
// built-in ones) composed of already-registered servers; it can never
// change a server descriptor.
//
// Pattern and server names are canonically lowercase. Lookup misses are
// reported through [ErrPatternNotFound] and [ErrServerNotFound].
package registry
