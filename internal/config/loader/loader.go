// Package loader reads configuration sources into generic maps.
//
// Each loader returns a map[string]any keyed by section; sources are
// layered with DeepMerge before being decoded into typed settings.
package loader

import "os"

// Loader reads one configuration source.
type Loader interface {
	// Load returns the source as a section map, or nil, nil when the
	// source is absent.
	Load() (map[string]any, error)
}

// FileSystem reads whole files. Tests substitute an in-memory one.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the operating system.
type OSFS struct{}

// ReadFile implements FileSystem.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}
