package core

import "context"

// Store is the key-value storage contract for the behavior subsystem.
//
// Design principles:
//   - defined in the domain layer (core), implemented in store/
//   - treated as unreliable: reads may miss, writes may fail; callers in
//     this core log and degrade instead of propagating
//
// Implementations: store.MemoryStore (dev/tests), store.RedisStore
// (production).
type Store interface {
	// Name returns the backend name, used in logs.
	Name() string

	// Get reads one key. Returns ErrStoreNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes one key. ttl, when given, is in seconds.
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	// Delete removes one key.
	Delete(ctx context.Context, key string) error

	// Close releases the backend connection/resources.
	Close() error
}

// KeyValueStore extends Store with the richer structures the behavior
// subsystem uses: hashes for per-user snapshots and sorted sets for the
// trending counters.
//
// Backends that cannot serve an operation return ErrStoreNotSupported.
type KeyValueStore interface {
	Store

	// ZIncrBy increments member's score inside a sorted set; the member is
	// created at delta when absent. Used for view counters.
	ZIncrBy(ctx context.Context, key string, delta float64, member string) error

	// ZRange returns members by descending score, start..stop inclusive.
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// ZScore returns a member's score, or ErrStoreNotFound.
	ZScore(ctx context.Context, key string, member string) (float64, error)

	// HGet reads one hash field, or ErrStoreNotFound.
	HGet(ctx context.Context, key, field string) ([]byte, error)

	// HSet writes one hash field.
	HSet(ctx context.Context, key, field string, value []byte) error

	// HDel removes one hash field.
	HDel(ctx context.Context, key, field string) error

	// HGetAll reads the whole hash. Missing key yields an empty map.
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)
}

var (
	// ErrStoreNotFound marks an absent key/field/member.
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

	// ErrStoreNotSupported marks an operation the backend cannot serve.
	ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
)

// IsStoreNotFound reports whether err is the store NOT_FOUND condition.
func IsStoreNotFound(err error) bool {
	de := GetDomainError(err)
	return de != nil && de.Module == ModuleStore && de.Code == ErrorCodeNotFound
}
