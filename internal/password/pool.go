package password

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/dtroode/account-service/internal/model"
)

// Pool runs hashing on background goroutines, bounding how many run at once.
// Each argon2id computation holds its memory cost for its whole duration.
type Pool struct {
	hasher *Argon2
	sem    *semaphore.Weighted
}

var _ model.PasswordHasher = (*Pool)(nil)

// NewPool creates a Pool. A non-positive concurrency means GOMAXPROCS.
func NewPool(hasher *Argon2, concurrency int) *Pool {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &Pool{hasher: hasher, sem: semaphore.NewWeighted(int64(concurrency))}
}

type hashResult struct {
	hash string
	err  error
}

// Hash hashes plaintext or returns ctx.Err() when the context ends first.
func (p *Pool) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}

	done := make(chan hashResult, 1)
	go func() {
		defer p.sem.Release(1)
		h, err := p.hasher.Hash(plaintext)
		done <- hashResult{hash: h, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.hash, r.err
	}
}

// Verify compares plaintext with hash or returns ctx.Err() when the context ends first.
func (p *Pool) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}

	done := make(chan bool, 1)
	go func() {
		defer p.sem.Release(1)
		done <- p.hasher.Verify(plaintext, hash)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case ok := <-done:
		return ok, nil
	}
}

// NeedsRehash delegates to the underlying hasher.
func (p *Pool) NeedsRehash(hash string) bool {
	return p.hasher.NeedsRehash(hash)
}
