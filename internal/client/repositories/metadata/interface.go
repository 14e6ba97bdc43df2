// Package metadata is a small key/value store over sqlite used to persist
// the session credential across process restarts.
package metadata

import "context"

type Repository interface {
	// Get returns the value under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
