package cuckoo

import (
	"errors"
	"math/bits"

	"github.com/optable/cuckoo/internal/hash"
)

var errRebuildCycle = errors.New("relocation cycle while rebuilding tables")

// step is a slot visited by a relocation chain
type step struct {
	table int
	idx   uint64
}

// other returns the table a displaced record moves to
func other(table int) int {
	return table ^ 1
}

// cycleBound is floor(log2(n)), the number of displacements
// an insertion may reach before the tables are grown.
func cycleBound(n uint64) int {
	if n == 0 {
		return 0
	}
	return bits.Len64(n) - 1
}

// relocate seats r, a record whose key is absent, starting at its home
// slot in table A. Each time the target slot is occupied, the occupant
// is taken in hand and moved to its home slot in the other table.
// When the displacements reach the cycle bound, the chain is unwound so
// that r is in hand again, the tables are grown and placement resumes
// with a fresh count. If growing fails, the tables are left exactly as
// they were before the call.
func (c *Cuckoo) relocate(r Record) error {
	var path []step
	inHand := r
	table := hash.TableA
	displaced := 0

	for {
		idx := c.store.home(table, inHand.Key)
		prev, occupied := c.store.place(table, idx, inHand)
		if !occupied {
			if displaced > 0 {
				c.logger.V(2).Info("relocation chain settled", "key", r.Key, "displacements", displaced)
			}
			return nil
		}

		path = append(path, step{table: table, idx: idx})
		c.relocations++
		inHand = prev
		displaced++
		table = other(table)

		if displaced >= cycleBound(c.store.len()) {
			c.logger.V(2).Info("cycle bound reached", "key", r.Key, "displacements", displaced, "records", c.store.len())
			inHand = c.store.unwind(path, inHand)
			path = path[:0]
			if err := c.grow("cycle bound"); err != nil {
				return err
			}
			table = hash.TableA
			displaced = 0
		}
	}
}

// unwind replays path backwards, putting every displaced record back
// in the slot it was evicted from, and returns the record that started
// the chain.
func (s *store) unwind(path []step, inHand Record) Record {
	for i := len(path) - 1; i >= 0; i-- {
		inHand, _ = s.place(path[i].table, path[i].idx, inHand)
	}

	return inHand
}

// seat places r during a rebuild. No growth is ever triggered here,
// a chain longer than limit is reported as errRebuildCycle instead.
func (s *store) seat(r Record, limit int) error {
	table := hash.TableA
	for steps := 0; steps <= limit; steps++ {
		prev, occupied := s.place(table, s.home(table, r.Key), r)
		if !occupied {
			return nil
		}
		r = prev
		table = other(table)
	}

	return errRebuildCycle
}
