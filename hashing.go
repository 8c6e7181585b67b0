// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Hash functions

// _SEED is the multiplicative constant used by our hash functions (the
// fractional part of the golden ratio, as in Knuth's multiplicative hashing).
const _SEED uint64 = 0x517cc1b727220a95

// _HASHBLOCK is the number of consecutive slots of the task cache that share
// the same base in LocalityHash.
const _HASHBLOCK = 1 << 13

// TaskHasher is a hash strategy for the task cache. Slot must return a value in
// the interval [0, size) and must be deterministic.
type TaskHasher interface {
	Slot(a, b Addr, size int) int
	String() string
}

// LocalityHash is the default strategy of the task cache. The slot of task
// (a, b) is the address a, used as a base, plus an offset obtained by hashing b
// inside a block of _HASHBLOCK slots. Tasks that share their left operand, and
// that are often visited in sequence, end up in the same region of the cache.
// The price is a higher collision rate than with a uniform hash.
type LocalityHash struct{}

func (LocalityHash) Slot(a, b Addr, size int) int {
	offset := (uint64(b) * _SEED) % _HASHBLOCK
	return int((uint64(a) + offset) % uint64(size))
}

func (LocalityHash) String() string { return "locality" }

// KnuthHash is a uniform multiplicative hash of the two addresses.
type KnuthHash struct{}

func (KnuthHash) Slot(a, b Addr, size int) int {
	h := bits.RotateLeft64(uint64(a)*_SEED, 32) ^ (uint64(b) * _SEED)
	return int((h * _SEED) % uint64(size))
}

func (KnuthHash) String() string { return "knuth" }

// XXHash hashes the two addresses with xxHash64. It gives the best dispersal
// but is the most costly strategy.
type XXHash struct{}

func (XXHash) Slot(a, b Addr, size int) int {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(a))
	binary.LittleEndian.PutUint64(buf[8:], uint64(b))
	return int(xxhash.Sum64(buf[:]) % uint64(size))
}

func (XXHash) String() string { return "xxhash" }

// ConstantHash maps every task to slot 0. It turns the task cache into a
// single entry and is only useful to test the behavior of apply on
// collisions.
type ConstantHash struct{}

func (ConstantHash) Slot(_, _ Addr, _ int) int { return 0 }

func (ConstantHash) String() string { return "constant" }

// hasherByName returns the strategy with the given name, as used in Config.
func hasherByName(name string) (TaskHasher, error) {
	switch name {
	case "", "locality":
		return LocalityHash{}, nil
	case "knuth":
		return KnuthHash{}, nil
	case "xxhash":
		return XXHash{}, nil
	case "constant":
		return ConstantHash{}, nil
	}
	return nil, fmt.Errorf("%w: unknown task hash %q", ErrConfig, name)
}

// nodehash is the hash used by the unique index, with key (level, low, high)
// already packed in a Node.
func nodehash(n Node, size int) int {
	h := bits.RotateLeft64(n[0]*_SEED, 32) ^ (n[1] * _SEED)
	return int(((h * _SEED) >> 16) % uint64(size))
}
