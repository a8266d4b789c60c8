package hash

import (
	crand "crypto/rand"

	"github.com/zeebo/blake3"
)

const (
	// TableA is the primary table, every insertion starts there
	TableA = 0
	// TableB is the eviction table
	TableB = 1
)

// labels appended to the seed to derive one salt per table
var saltLabels = [2]byte{'a', 'b'}

// Set holds the two independent hash functions of a two-table
// cuckoo hash, h_A for TableA and h_B for TableB.
type Set struct {
	kind    Kind
	hashers [2]Hasher
}

// NewSet instantiates a Set of kind k. Seeded kinds derive one salt per
// table from seed with blake3, a nil seed is replaced by 32 bytes read
// from crypto/rand. Positional ignores the seed.
func NewSet(k Kind, seed []byte) (*Set, error) {
	if k == Positional {
		return &Set{kind: k, hashers: [2]Hasher{positionalA{}, positionalB{}}}, nil
	}

	if seed == nil {
		seed = make([]byte, SaltLength)
		if _, err := crand.Read(seed); err != nil {
			return nil, err
		}
	}

	var hashers [2]Hasher
	for i, label := range saltLabels {
		h, err := New(k, deriveSalt(seed, label))
		if err != nil {
			return nil, err
		}
		hashers[i] = h
	}

	return &Set{kind: k, hashers: hashers}, nil
}

// Index returns the home slot of key in table, reduced modulo capacity.
// capacity must be the current one: an index does not survive a resize.
func (s *Set) Index(table int, key string, capacity uint64) uint64 {
	return s.hashers[table].Hash64([]byte(key)) % capacity
}

// Kind returns the hash family of s
func (s *Set) Kind() Kind {
	return s.kind
}

func deriveSalt(seed []byte, label byte) []byte {
	material := make([]byte, len(seed)+1)
	copy(material, seed)
	material[len(seed)] = label
	sum := blake3.Sum256(material)
	return sum[:]
}
