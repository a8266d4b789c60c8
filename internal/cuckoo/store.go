package cuckoo

import (
	"github.com/optable/cuckoo/internal/hash"
)

// Record is a key and its value as stored in one slot
type Record struct {
	Key   string
	Value int
}

// slot is empty unless used is set, the empty string is a legal key
type slot struct {
	Record
	used bool
}

// bucket is one fixed capacity table and the number of used slots in it
type bucket struct {
	slots []slot
	count uint64
}

func newBucket(capacity uint64) *bucket {
	return &bucket{slots: make([]slot, capacity)}
}

// store holds the two tables of a cuckoo hash along with the hash
// functions that index them at the current capacity.
type store struct {
	tables   [2]*bucket
	capacity uint64
	hashes   *hash.Set
}

func newStore(capacity uint64, hashes *hash.Set) *store {
	return &store{
		tables:   [2]*bucket{newBucket(capacity), newBucket(capacity)},
		capacity: capacity,
		hashes:   hashes,
	}
}

// home returns the index of key in table at the current capacity
func (s *store) home(table int, key string) uint64 {
	return s.hashes.Index(table, key, s.capacity)
}

// place writes r at idx in table and returns the previous occupant, if any
func (s *store) place(table int, idx uint64, r Record) (prev Record, occupied bool) {
	b := s.tables[table]
	sl := &b.slots[idx]
	prev, occupied = sl.Record, sl.used
	sl.Record, sl.used = r, true
	if !occupied {
		b.count++
	}

	return prev, occupied
}

// lookup returns the table and the index holding key,
// table A home slot first and then table B home slot
func (s *store) lookup(key string) (table int, idx uint64, found bool) {
	for _, t := range [2]int{hash.TableA, hash.TableB} {
		i := s.home(t, key)
		if sl := s.tables[t].slots[i]; sl.used && sl.Key == key {
			return t, i, true
		}
	}

	return 0, 0, false
}

// clear empties the slot at idx in table
func (s *store) clear(table int, idx uint64) {
	b := s.tables[table]
	if b.slots[idx].used {
		b.slots[idx] = slot{}
		b.count--
	}
}

// len is the number of records across both tables
func (s *store) len() uint64 {
	return s.tables[hash.TableA].count + s.tables[hash.TableB].count
}

// records lists every record in slot order, A then B for each index
func (s *store) records() []Record {
	out := make([]Record, 0, s.len())
	for i := uint64(0); i < s.capacity; i++ {
		for _, b := range s.tables {
			if b.slots[i].used {
				out = append(out, b.slots[i].Record)
			}
		}
	}

	return out
}
