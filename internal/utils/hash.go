package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Supported content hash algorithms.
const (
	HashMD5     = "md5"
	HashSHA256  = "sha256"
	HashBLAKE2b = "blake2b"
)

// ErrUnsupportedHash is returned for an unknown algorithm prefix.
var ErrUnsupportedHash = errors.New("unsupported content hash algorithm")

// ErrMalformedHash is returned when the digest part is not valid hex or has
// the wrong length for its algorithm.
var ErrMalformedHash = errors.New("malformed content hash")

// hasherPools holds one sync.Pool of hash.Hash instances per algorithm.
// Reusing hashers keeps allocations low when many files are verified.
var hasherPools = map[string]*sync.Pool{
	HashMD5:     {New: func() any { return md5.New() }},
	HashSHA256:  {New: func() any { return sha256.New() }},
	HashBLAKE2b: {New: func() any { return newBlake2b() }},
}

func newBlake2b() hash.Hash {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	return h
}

// ContentHash is a parsed "<algo>:<hex>" digest. A bare hex string is read
// as md5, which is the format manifest servers publish by default.
type ContentHash struct {
	Algo   string
	Digest []byte
}

// ParseContentHash parses s. An empty string yields a zero ContentHash and
// no error; callers treat that as "no checksum to verify".
//
// Example usage:
//
//	h, err := utils.ParseContentHash("sha256:9f86d0...")
func ParseContentHash(s string) (ContentHash, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ContentHash{}, nil
	}

	algo, digestHex := HashMD5, s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		algo, digestHex = strings.ToLower(s[:i]), s[i+1:]
	}

	pool, ok := hasherPools[algo]
	if !ok {
		return ContentHash{}, fmt.Errorf("%w: %q", ErrUnsupportedHash, algo)
	}

	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return ContentHash{}, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	h := pool.Get().(hash.Hash)
	size := h.Size()
	pool.Put(h)
	if len(digest) != size {
		return ContentHash{}, fmt.Errorf("%w: %s digest must be %d bytes, got %d", ErrMalformedHash, algo, size, len(digest))
	}

	return ContentHash{Algo: algo, Digest: digest}, nil
}

// IsZero reports whether there is no digest to verify against.
func (c ContentHash) IsZero() bool {
	return c.Algo == "" && len(c.Digest) == 0
}

// String returns the canonical "<algo>:<hex>" form.
func (c ContentHash) String() string {
	if c.IsZero() {
		return ""
	}
	return c.Algo + ":" + hex.EncodeToString(c.Digest)
}

// NewHasher returns a reset hasher for c.Algo taken from the pool.
// Callers must hand it back with ReleaseHasher.
func (c ContentHash) NewHasher() hash.Hash {
	algo := c.Algo
	if algo == "" {
		algo = HashSHA256
	}
	h := hasherPools[algo].Get().(hash.Hash)
	h.Reset()
	return h
}

// ReleaseHasher returns h to the pool of c.Algo.
func (c ContentHash) ReleaseHasher(h hash.Hash) {
	algo := c.Algo
	if algo == "" {
		algo = HashSHA256
	}
	h.Reset()
	hasherPools[algo].Put(h)
}

// Matches reports whether sum equals the expected digest in constant time.
// A zero ContentHash matches anything.
func (c ContentHash) Matches(sum []byte) bool {
	if c.IsZero() {
		return true
	}
	return subtle.ConstantTimeCompare(c.Digest, sum) == 1
}
