// Package persist provides the namespaced key/value stores that back the
// MRU list. Two backends are available — a SQLite database and a flat YAML
// file — both implementing Adapter. The backend is chosen by configuration,
// not build target.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultVersion is the storage-location version tag used when none is
// configured.
const DefaultVersion = "1.0a"

// Adapter is the store consumed by the MRU list. Keys live inside named
// sections; a whole section can be erased at once.
type Adapter interface {
	// ReadString returns the value stored for key in section, or fallback
	// when the key is absent. Read failures are treated as absence, never
	// surfaced as errors.
	ReadString(section, key, fallback string) string

	// WriteString stores value under key in section, creating both as needed.
	WriteString(section, key, value string) error

	// EraseSection removes every key in section. Other sections are untouched.
	EraseSection(section string) error

	Close() error
}

// Location identifies where an application's state lives: a hierarchical
// {company, product, version} triple shared by all backends.
type Location struct {
	Company string
	Product string
	Version string
}

// normalized fills in the defaulted fields: Product falls back to the host
// binary's name, Version to DefaultVersion.
func (l Location) normalized() Location {
	if l.Product == "" {
		l.Product = filepath.Base(os.Args[0])
	}
	if l.Version == "" {
		l.Version = DefaultVersion
	}
	return l
}

// Scope returns the flattened storage path for this location, used as the
// row scope in the SQLite backend and the directory path in the file backend.
func (l Location) Scope() string {
	l = l.normalized()
	if l.Company == "" {
		return filepath.ToSlash(filepath.Join(l.Product, l.Version))
	}
	return filepath.ToSlash(filepath.Join(l.Company, l.Product, l.Version))
}

// Open opens the backend named by kind ("sqlite" or "file") at path. An
// empty path uses the backend's default under ~/.filemru.
func Open(kind, path string, loc Location) (Adapter, error) {
	switch kind {
	case "", "sqlite":
		if path == "" {
			var err error
			path, err = DefaultDBPath()
			if err != nil {
				return nil, err
			}
		}
		return OpenSQLite(path, loc)
	case "file":
		if path == "" {
			var err error
			path, err = DefaultFilePath(loc)
			if err != nil {
				return nil, err
			}
		}
		return OpenFile(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
