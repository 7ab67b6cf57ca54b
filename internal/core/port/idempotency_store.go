package port

import "context"

// IdempotencyStore remembers which Idempotency-Key values have already
// produced an inquiry, so a replayed submission returns the original record
// instead of inserting a duplicate.
type IdempotencyStore interface {
	// Get returns the inquiry id recorded for the key, or
	// repository.ErrNotFound when the key has not been seen.
	Get(ctx context.Context, key string) (string, error)
	// Put records the key once. A key that is already present keeps its
	// original value.
	Put(ctx context.Context, key, inquiryID string) error
}
