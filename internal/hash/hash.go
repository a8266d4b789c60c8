package hash

import (
	"fmt"
	"log"

	"github.com/alecthomas/unsafeslice"
	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/minio/highwayhash"
	"github.com/shivakar/metrohash"
	"github.com/twmb/murmur3"
)

const SaltLength = 32

// Kind selects the family of hash functions a Set is built from
type Kind int

const (
	// Positional is the pair of position-weighted accumulators,
	// it is deterministic and ignores the seed
	Positional Kind = iota
	Murmur3
	Metro
	Highway
	SIP
	XXHash
)

var kindNames = map[Kind]string{
	Positional: "positional",
	Murmur3:    "murmur3",
	Metro:      "metro",
	Highway:    "highway",
	SIP:        "sip",
	XXHash:     "xxhash",
}

var (
	ErrUnknownHash        = fmt.Errorf("cannot create a hasher of unknown hash type")
	ErrSaltLengthMismatch = fmt.Errorf("provided salt is not %d length", SaltLength)
)

func init() {
	// highwayhash keys and the SIP key words are both carved out of one salt
	if SaltLength != 32 {
		log.Fatalf("SaltLength has to be fixed to 32 and is set to %d", SaltLength)
	}
}

// Hasher implements different non cryptographic hashing functions
type Hasher interface {
	Hash64([]byte) uint64
}

// New creates a salted hasher of kind t
func New(t Kind, salt []byte) (Hasher, error) {
	if len(salt) != SaltLength {
		return nil, ErrSaltLengthMismatch
	}
	// never share the caller's backing array
	s := make([]byte, SaltLength)
	copy(s, salt)

	switch t {
	case Murmur3:
		return murmur64{salt: s}, nil
	case Metro:
		return metro{salt: s}, nil
	case Highway:
		return highway{key: s}, nil
	case SIP:
		return newSIPHasher(s), nil
	case XXHash:
		return xx{salt: s}, nil
	default:
		return nil, ErrUnknownHash
	}
}

// ParseKind returns the Kind named s
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHash, s)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "undefined"
}

// Murmur3 implementation of Hasher
type murmur64 struct {
	salt []byte
}

func (t murmur64) Hash64(p []byte) uint64 {
	// prepend the salt in m and then Sum
	return murmur3.Sum64(append(t.salt[:len(t.salt):len(t.salt)], p...))
}

// Metro Hash implementation of Hasher
type metro struct {
	salt []byte
}

func (m metro) Hash64(p []byte) uint64 {
	h := metrohash.NewMetroHash64()
	h.Write(m.salt)
	h.Write(p)
	return h.Sum64()
}

// HighwayHash implementation of Hasher, the salt is the 256 bit key
type highway struct {
	key []byte
}

func (h highway) Hash64(p []byte) uint64 {
	return highwayhash.Sum64(p, h.key)
}

// sipHash implementation of Hasher
type siphash64 struct {
	key0, key1 uint64
}

// newSIPHasher keys siphash with the first two words of salt
func newSIPHasher(salt []byte) siphash64 {
	words := unsafeslice.Uint64SliceFromByteSlice(salt)
	return siphash64{key0: words[0], key1: words[1]}
}

func (s siphash64) Hash64(p []byte) uint64 {
	return siphash.Hash(s.key0, s.key1, p)
}

// xxHash implementation of Hasher
type xx struct {
	salt []byte
}

func (x xx) Hash64(p []byte) uint64 {
	d := xxhash.New()
	d.Write(x.salt)
	d.Write(p)
	return d.Sum64()
}
