package repositories

import "context"

// KVStore is the abstract durable key-value store the application persists
// into. Values are opaque JSON-serialized blobs; the typed repositories layer
// the transaction and suggestion schemas on top of it.
type KVStore interface {
	// Get retrieves the value stored under key, or apperrors.ErrNotFound if
	// the key has never been written (or has been deleted).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key entirely. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
