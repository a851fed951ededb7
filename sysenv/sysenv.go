// Package sysenv implements the process-wide environment shared by every
// scheme backend: a seeded pseudo-random stream and the small numeric helpers
// built on top of it (uniform range draws, Fisher-Yates shuffling).
//
// A single Environment is not safe for concurrent use without external
// synchronization - see spec §5 ("Concurrency & resource model"). Callers
// that want to parallelize signing across goroutines must give each
// goroutine its own Environment.
package sysenv

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// ErrNotInitialized names the condition of using an Environment that was not
// built with New. No function in this package returns it.
var ErrNotInitialized = errors.New("sysenv: environment not initialized")

// Environment bundles the PRNG state consumed by every scheme operation that
// needs randomness: key generation, join, signing, proofs, and the
// blind/convert permutation step.
type Environment struct {
	mu     sync.Mutex
	stream cipher.Stream
}

// New builds a fresh Environment. When seed is non-empty, the internal stream
// is derived deterministically from it (hashed to a 256-bit AES-CTR key),
// enabling reproducible runs; otherwise OS randomness seeds it, mirroring
// drand/entropy.GetRandom's fallback to crypto/rand.
func New(seed []byte) (*Environment, error) {
	key := make([]byte, 32)
	if len(seed) == 0 {
		if _, err := rand.Read(key); err != nil {
			return nil, err
		}
	} else {
		key = blake2bSum256(seed)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	iv := make([]byte, aes.BlockSize)
	return &Environment{stream: cipher.NewCTR(block, iv)}, nil
}

func blake2bSum256(b []byte) []byte {
	sum := blake2b.Sum256(b)
	return sum[:]
}

// Stream exposes the Environment's randomness as a cipher.Stream, the shape
// kyber's Scalar().Pick and Point().Pick take as their randomness source
// (see engine.Suite.PickScalar(env.Stream())).
func (e *Environment) Stream() cipher.Stream {
	return e
}

// XORKeyStream implements cipher.Stream by serializing access to the
// underlying deterministic stream; it is safe to call from exactly one
// goroutine at a time per the package's concurrency contract, the lock only
// guards against accidental same-environment reuse.
func (e *Environment) XORKeyStream(dst, src []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stream.XORKeyStream(dst, src)
}

// RandomBytes returns n uniformly random bytes drawn from the environment.
func (e *Environment) RandomBytes(n int) []byte {
	buf := make([]byte, n)
	e.XORKeyStream(buf, buf)
	return buf
}

// UniformN returns a uniform integer in [0, n]. It reduces a 64-bit draw
// modulo n+1 without rejection sampling - acceptable per spec §9 Open
// Question (i) because its only call site, Shuffle, draws a small n (a
// permutation index), never a value approaching 2^64.
func (e *Environment) UniformN(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	buf := e.RandomBytes(8)
	v := binary.BigEndian.Uint64(buf)
	return v % (n + 1)
}

// Shuffle performs a Fisher-Yates (Durstenfeld) shuffle of a sequence of
// length n using swap to exchange two positions, producing a uniform
// permutation of [0, n). This is the permutation step used by the blind/
// convert flow (spec §4.6 invariant (c)) to break positional linkage of a
// converted batch.
func (e *Environment) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(e.UniformN(uint64(i)))
		swap(i, j)
	}
}
