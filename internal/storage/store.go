package storage

import "fmt"

// Store is a minimal durable key-value record store. The repository keeps the
// whole content snapshot under one key and the admin-session flag under
// another; nothing here knows about either shape.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	Close() error
}

// Open creates a Store for the given backend name.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "bolt", "":
		if path == "" {
			return nil, fmt.Errorf("bolt store requires a data path")
		}
		return OpenBolt(path)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}
