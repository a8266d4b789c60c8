package cuckoo

import (
	"github.com/go-logr/logr"
	engine "github.com/optable/cuckoo/internal/cuckoo"
	"github.com/optable/cuckoo/internal/hash"
)

// Hash selects the pair of hash functions indexing the tables
type Hash = hash.Kind

const (
	HashPositional = hash.Positional
	HashMurmur3    = hash.Murmur3
	HashMetro      = hash.Metro
	HashHighway    = hash.Highway
	HashSIP        = hash.SIP
	HashXXHash     = hash.XXHash
)

// ErrUnknownHash is returned for a Hash with no hash functions behind it
var ErrUnknownHash = hash.ErrUnknownHash

// ParseHash returns the Hash named s, one of positional, murmur3,
// metro, highway, sip or xxhash
func ParseHash(s string) (Hash, error) {
	return hash.ParseKind(s)
}

type config struct {
	logger   logr.Logger
	hashKind Hash
	seed     []byte
	primes   []uint64
}

func defaultConfig() config {
	return config{
		logger:   logr.Discard(),
		hashKind: HashPositional,
		primes:   engine.DefaultPrimes,
	}
}

// Option configures a Table
type Option func(*config)

// WithLogger logs rehashes and rejected inserts at V(1),
// and relocation chains at V(2)
func WithLogger(logger logr.Logger) Option {
	return func(c *config) {
		if logger.GetSink() != nil {
			c.logger = logger
		}
	}
}

// WithHash indexes the tables with the hash functions of kind k.
// Seeded kinds derive their salts from seed, or from crypto/rand
// when seed is nil.
func WithHash(k Hash, seed []byte) Option {
	return func(c *config) {
		c.hashKind = k
		c.seed = seed
	}
}

// WithPrimes replaces the capacity sequence, it has to be
// an ascending list of primes
func WithPrimes(primes []uint64) Option {
	return func(c *config) {
		c.primes = primes
	}
}
