// Package storage provides the key-value backends the repositories persist
// into.  Each key holds one JSON document (for example the whole list of
// reservations), and every write replaces the document wholesale, which is
// the layout the browser client used with its local storage.
package storage

import (
    "context"
    "errors"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a key-value store of JSON documents.  Set must be atomic from
// the caller's point of view: a reader observes either the previous or the
// new value, never a partial one.
type Store interface {
    Get(ctx context.Context, key string) ([]byte, error)
    Set(ctx context.Context, key string, value []byte) error
    Close() error
}
