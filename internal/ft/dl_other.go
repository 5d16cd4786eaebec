//go:build !linux && !darwin && !freebsd

package ft

import "errors"

// Dynamic loading of the engine is only wired for unix-like systems.
// Everything else still compiles; it just can't resolve a call table
// from a system library.
func Load() (*Procs, error) {
	return nil, errors.New("engine shared library loading not supported on this platform")
}
