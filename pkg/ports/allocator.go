package ports

// Allocator hands out pooled storage for values of type T.
type Allocator[T any] interface {
	// Acquire returns zeroed storage, or domain.ErrAllocation when exhausted.
	Acquire() (*T, error)

	// Release returns storage to the pool. The caller must not use v afterwards.
	Release(v *T)
}
