package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no record exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// Entry is a single key/value pair returned by a prefix scan.
type Entry struct {
	Key   string
	Value []byte
}

// Store is a generic ordered key-value store. Values are opaque JSON
// documents; writes are last-write-wins with no conditional operations and
// no multi-key atomicity. Implementations must be safe for concurrent use
// and must return ScanPrefix results sorted by key so that listings are
// deterministic.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	ScanPrefix(ctx context.Context, prefix string) ([]Entry, error)
}
