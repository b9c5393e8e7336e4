// Package hash wraps xxHash64 for names, payloads and directory fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// NewDigest returns a streaming xxHash64 digest.
func NewDigest() *xxhash.Digest {
	return xxhash.New()
}
