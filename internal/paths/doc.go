// Package paths resolves filesystem locations for mcpack's own
// configuration following the XDG Base Directory specification.
//
// mcpack never touches the host tool's configuration files directly;
// registrations go through the host CLI. The only paths owned by this
// tool are its config file and the optional custom patterns file.
package paths
