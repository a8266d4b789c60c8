package cuckoo

import (
	"github.com/go-logr/logr"
	"github.com/optable/cuckoo/internal/hash"
)

// Cuckoo is a two-table cuckoo hash. Every key has one home slot in
// table A and one in table B and lives in at most one of them. Both
// tables share a capacity taken from an ascending sequence of primes;
// the tables grow to the next prime when either one is half full or
// when an insertion displaces too many records.
//
// A Cuckoo is not safe for concurrent use.
type Cuckoo struct {
	store    *store
	primes   []uint64
	primeIdx int
	logger   logr.Logger

	rehashes    uint64
	relocations uint64
}

// Stats counts the work done by the tables since they were created
type Stats struct {
	// Rehashes is the number of times the tables grew
	Rehashes uint64
	// Relocations is the number of records displaced by insertions
	Relocations uint64
}

// New instantiates a Cuckoo with the first capacity of primes,
// indexed by hashes.
func New(primes []uint64, hashes *hash.Set, logger logr.Logger) (*Cuckoo, error) {
	if err := validatePrimes(primes); err != nil {
		return nil, err
	}

	p := make([]uint64, len(primes))
	copy(p, primes)

	return &Cuckoo{
		store:  newStore(p[0], hashes),
		primes: p,
		logger: logger,
	}, nil
}

// Insert adds r, whose key must not be present yet. The tables are grown
// first if either one is half full. Returns ErrCapacityExhausted, with
// nothing inserted, when a required growth is past the last prime.
func (c *Cuckoo) Insert(r Record) error {
	if c.overloaded() {
		if err := c.grow("load factor"); err != nil {
			return err
		}
	}

	return c.relocate(r)
}

// Search returns the value stored under key
func (c *Cuckoo) Search(key string) (int, bool) {
	table, idx, found := c.store.lookup(key)
	if !found {
		return 0, false
	}

	return c.store.tables[table].slots[idx].Value, true
}

// Exists returns true if key is in either table
func (c *Cuckoo) Exists(key string) bool {
	_, _, found := c.store.lookup(key)
	return found
}

// Remove empties the slot holding key and returns false if there is none.
// Records of table B are never promoted to table A.
func (c *Cuckoo) Remove(key string) bool {
	table, idx, found := c.store.lookup(key)
	if !found {
		return false
	}
	c.store.clear(table, idx)

	return true
}

// Len returns the number of records in both tables
func (c *Cuckoo) Len() uint64 {
	return c.store.len()
}

// Count returns the number of records in table
func (c *Cuckoo) Count(table int) uint64 {
	return c.store.tables[table].count
}

// Capacity returns the number of slots of each table
func (c *Cuckoo) Capacity() uint64 {
	return c.store.capacity
}

// Records returns every record, in slot order
func (c *Cuckoo) Records() []Record {
	return c.store.records()
}

// LoadFactor returns the ratio of occupied slots over the slots of both tables
func (c *Cuckoo) LoadFactor() float64 {
	return float64(c.store.len()) / float64(2*c.store.capacity)
}

// Stats returns the rehash and relocation counters
func (c *Cuckoo) Stats() Stats {
	return Stats{Rehashes: c.rehashes, Relocations: c.relocations}
}
