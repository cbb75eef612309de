package repositories

import "context"

// KVStore is the single-slot persistence boundary the preset repository
// writes through. Get reports ok=false for an absent key; Set overwrites.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
