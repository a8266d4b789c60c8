package cuckoo

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	engine "github.com/optable/cuckoo/internal/cuckoo"
	"github.com/optable/cuckoo/internal/hash"
)

const (
	// MinValue and MaxValue bound the values a Table stores: four digits
	MinValue = 1000
	MaxValue = 9999
)

var (
	ErrDuplicateKey = errors.New("key already exists within the table")
	ErrInvalidValue = fmt.Errorf("value must be in [%d, %d]", MinValue, MaxValue)
	ErrNotFound     = errors.New("key does not exist within the table")
	// ErrCapacityExhausted is returned by Insert when the tables need to
	// grow past the last capacity, the record is not inserted
	ErrCapacityExhausted = engine.ErrCapacityExhausted
	ErrInvalidPrimes     = engine.ErrInvalidPrimes
)

// Record is a key and its value
type Record = engine.Record

// Stats counts rehashes and relocations
type Stats = engine.Stats

// Table maps string keys to four digit values with cuckoo hashing.
// A key lives either in table A or in table B, at the home slot given
// by that table's hash function. Inserts that land on an occupied slot
// move the occupant to its home slot in the other table.
//
// A Table is not safe for concurrent use, guard it with a lock
// held for the duration of every call.
type Table struct {
	c      *engine.Cuckoo
	logger logr.Logger
}

// New instantiates an empty Table at the first capacity of the sequence
func New(opts ...Option) (*Table, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	hashes, err := hash.NewSet(cfg.hashKind, cfg.seed)
	if err != nil {
		return nil, err
	}

	c, err := engine.New(cfg.primes, hashes, cfg.logger)
	if err != nil {
		return nil, err
	}

	return &Table{c: c, logger: cfg.logger}, nil
}

// NewWithRecord instantiates a Table and inserts key and value in it
func NewWithRecord(key string, value int, opts ...Option) (*Table, error) {
	t, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := t.Insert(key, value); err != nil {
		return nil, err
	}

	return t, nil
}

// Insert adds key with value. It fails with ErrInvalidValue when value
// is not four digits, ErrDuplicateKey when key is present and
// ErrCapacityExhausted when the tables cannot grow any further.
// The table is unchanged whenever an error is returned.
func (t *Table) Insert(key string, value int) error {
	if value < MinValue || value > MaxValue {
		t.logger.V(1).Info("rejected insert", "key", key, "value", value)
		return fmt.Errorf("%w: got %d", ErrInvalidValue, value)
	}

	if t.c.Exists(key) {
		t.logger.V(1).Info("rejected insert", "key", key, "reason", "duplicate")
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	if err := t.c.Insert(Record{Key: key, Value: value}); err != nil {
		t.logger.Error(err, "insert failed", "key", key)
		return err
	}

	return nil
}

// Search returns the value of key, or ErrNotFound
func (t *Table) Search(key string) (int, error) {
	if v, ok := t.c.Search(key); ok {
		return v, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrNotFound, key)
}

// Remove deletes key, or returns ErrNotFound
func (t *Table) Remove(key string) error {
	if !t.c.Remove(key) {
		t.logger.V(1).Info("nothing to remove", "key", key)
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	return nil
}

// Contains returns true if key is in the table
func (t *Table) Contains(key string) bool {
	return t.c.Exists(key)
}

// Size returns the number of records
func (t *Table) Size() int {
	return int(t.c.Len())
}

// Capacity returns the number of slots of each of the two tables
func (t *Table) Capacity() int {
	return int(t.c.Capacity())
}

// Enumerate returns every record in slot order
func (t *Table) Enumerate() []Record {
	return t.c.Records()
}

// LoadFactor returns the ratio of records over the slots of both tables
func (t *Table) LoadFactor() float64 {
	return t.c.LoadFactor()
}

// Stats returns the rehash and relocation counters
func (t *Table) Stats() Stats {
	return t.c.Stats()
}
