package auth

import "context"

// BoundedHasher caps the number of concurrent hash computations so a burst
// of registrations cannot occupy every scheduler thread with bcrypt work.
// Waiting for a slot respects context cancellation.
type BoundedHasher struct {
	inner PasswordHasher
	sem   chan struct{}
}

// NewBoundedHasher wraps a hasher with a concurrency limit.
func NewBoundedHasher(inner PasswordHasher, size int) *BoundedHasher {
	if size <= 0 {
		size = 1
	}
	return &BoundedHasher{inner: inner, sem: make(chan struct{}, size)}
}

// Hash delegates to the wrapped hasher once a slot is acquired.
func (h *BoundedHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer h.release()
	return h.inner.Hash(ctx, password)
}

// Compare delegates to the wrapped hasher once a slot is acquired.
func (h *BoundedHasher) Compare(ctx context.Context, hash, password string) error {
	if err := h.acquire(ctx); err != nil {
		return err
	}
	defer h.release()
	return h.inner.Compare(ctx, hash, password)
}

func (h *BoundedHasher) acquire(ctx context.Context) error {
	select {
	case h.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *BoundedHasher) release() {
	<-h.sem
}
