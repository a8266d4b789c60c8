package cuckoo

import (
	"fmt"

	"github.com/optable/cuckoo/internal/hash"
)

var ErrCapacityExhausted = fmt.Errorf("capacity sequence exhausted")

// overloaded reports whether either table is at least half full
func (c *Cuckoo) overloaded() bool {
	half := c.store.capacity / 2
	return c.store.tables[hash.TableA].count >= half || c.store.tables[hash.TableB].count >= half
}

// grow moves every record to tables of the next capacity in the prime
// sequence. The new tables are fully populated before they replace the
// current ones; a capacity whose rebuild runs into a relocation cycle is
// skipped. When no capacity is left, ErrCapacityExhausted is returned and
// the current tables are untouched.
func (c *Cuckoo) grow(reason string) error {
	live := c.store.records()

	for next := c.primeIdx + 1; next < len(c.primes); next++ {
		s, err := rebuild(c.primes[next], c.store.hashes, live)
		if err != nil {
			c.logger.V(1).Info("skipping capacity", "capacity", c.primes[next], "error", err.Error())
			continue
		}

		c.logger.V(1).Info("rehashed", "reason", reason, "from", c.store.capacity, "to", s.capacity, "records", len(live))
		c.store, c.primeIdx = s, next
		c.rehashes++
		return nil
	}

	c.logger.V(1).Info("cannot grow", "reason", reason, "capacity", c.store.capacity, "records", len(live))
	return fmt.Errorf("%w at capacity %d with %d records", ErrCapacityExhausted, c.store.capacity, len(live))
}

// rebuild seats records, in order, in fresh tables of the given capacity
func rebuild(capacity uint64, hashes *hash.Set, records []Record) (*store, error) {
	s := newStore(capacity, hashes)
	limit := 2*len(records) + 2
	for _, r := range records {
		if err := s.seat(r, limit); err != nil {
			return nil, err
		}
	}

	return s, nil
}
