// Package storage provides the durable key-value collaborator the
// repositories persist through. Collections live under fixed logical
// keys and are written as opaque serialized blobs; the store never
// inspects their contents.
package storage

// Logical keys for the two persisted collections.
const (
	KeyUsers    = "users"
	KeyListings = "listings"
)

// Store is the persistence contract. Load reports absence through its
// second return value rather than an error so that a first run (no
// blob yet) is distinguishable from a failing store.
type Store interface {
	// Load returns the blob stored under key, or ok=false when the
	// key has never been written.
	Load(key string) (blob []byte, ok bool, err error)
	// Save writes the blob under key, replacing any previous value.
	Save(key string, blob []byte) error
	Close() error
}
