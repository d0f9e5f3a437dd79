// Package kdfpool bounds how many PBKDF2 derivations run at once.
//
// Derivation is CPU bound. Callers block in Derive until a slot is free and
// the key is ready. The context only limits the wait for a slot; once a
// derivation has started it always runs to completion.
package kdfpool

import (
	"context"
	"runtime"

	"github.com/dmitrijs2005/pwcred/internal/cryptox"
	"golang.org/x/sync/semaphore"
)

// Pool limits concurrent derivations. The zero value is not usable; use New.
type Pool struct {
	sem     *semaphore.Weighted
	workers int
	derive  func(password, salt []byte, digest string) ([]byte, error)
}

// New returns a pool running at most workers derivations at a time.
// workers <= 0 means GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		sem:     semaphore.NewWeighted(int64(workers)),
		workers: workers,
		derive:  cryptox.DeriveKey,
	}
}

// Workers returns the concurrency limit.
func (p *Pool) Workers() int {
	return p.workers
}

// Derive waits for a free slot and derives a key.
func (p *Pool) Derive(ctx context.Context, password, salt []byte, digest string) ([]byte, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer p.sem.Release(1)

	return p.derive(password, salt, digest)
}
