package interfaces

import "context"

// ISequenceRepository exposes the store's atomic increment-and-return
// primitive over a named counter record.
//
// Next must upsert the counter (first call yields 1) and return the
// post-increment value in a single round trip. Implementations must not
// emulate it with separate read and write calls: two concurrent callers
// would then observe the same value.
type ISequenceRepository interface {
	Next(ctx context.Context, key string) (int64, error)
}
