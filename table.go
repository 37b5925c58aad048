// Package hashtable provides an open-addressed hash table whose backing array
// is sized from a fixed list of primes.
package hashtable

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	slotEmpty   = 0x00
	slotFull    = 0x01
	slotDeleted = 0xFE
)

type slot[K comparable, V any] struct {
	Pair[K, V]

	// Digest of Pair.First, cached so probing and rebuilds don't rehash.
	hash uint32
}

// Table maps keys to values in a single probed array.
//
// Keys are identified by their Digest only: two different keys with the same
// digest are the same key to the table, and adding the second one replaces
// the value of the first.
//
// The table grows through Primes when an insertion finds it completely full,
// and refuses insertions once the largest prime is full. A Table is not safe
// for concurrent use.
type Table[K comparable, V any] struct {
	// ctrls[i] is the state of slots[i]: empty, full or deleted (tombstone).
	ctrls []uint8
	slots []slot[K, V]

	size int

	logger *zap.Logger

	emptyV V
}

// Returns a new table with DefaultCapacity.
func New[K comparable, V any](opts ...Option[K, V]) *Table[K, V] {
	return NewWithCapacity(DefaultCapacity, opts...)
}

// Returns a new table with the given initial capacity.
// Growth moves to the next listed prime greater than `capacity`.
func NewWithCapacity[K comparable, V any](capacity int, opts ...Option[K, V]) *Table[K, V] {
	if capacity <= 0 {
		panic("hashtable: capacity must be positive")
	}

	t := &Table[K, V]{
		ctrls: make([]uint8, capacity),
		slots: make([]slot[K, V], capacity),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}

	return t
}

// Number of live entries.
func (t *Table[K, V]) Len() int {
	return t.size
}

// Length of the backing array.
func (t *Table[K, V]) Cap() int {
	return len(t.slots)
}

// Add inserts key or replaces its value.
// Returns false, leaving the table untouched, when the table is full and
// can't grow any further.
func (t *Table[K, V]) Add(key K, value V) bool {
	if t.size == len(t.slots) && !t.resize() {
		return false
	}

	t.put(Digest(key), key, value)

	return true
}

// put is the insertion probe. The caller guarantees at least one slot
// isn't full.
func (t *Table[K, V]) put(h uint32, key K, value V) {
	var (
		capacity = uint64(len(t.slots))
		target   = -1
	)

	for n := uint64(0); n < capacity; n++ {
		idx := int((uint64(h) + n) % capacity)

		switch t.ctrls[idx] {
		case slotFull:
			if t.slots[idx].hash == h {
				t.slots[idx].Second = value
				return
			}
		case slotDeleted:
			// Reuse the first tombstone on the way, but keep probing:
			// the key may live further down the chain.
			if target == -1 {
				target = idx
			}
		case slotEmpty:
			if target == -1 {
				target = idx
			}

			t.place(target, h, key, value)
			return
		}
	}

	// Every slot is full or deleted and none holds the key, so target
	// points at a tombstone.
	t.place(target, h, key, value)
}

func (t *Table[K, V]) place(idx int, h uint32, key K, value V) {
	t.ctrls[idx] = slotFull
	t.slots[idx] = slot[K, V]{
		Pair: Pair[K, V]{First: key, Second: value},
		hash: h,
	}
	t.size++
}

// indexOf returns the slot holding key, or -1.
func (t *Table[K, V]) indexOf(key K) int {
	var (
		h        = Digest(key)
		capacity = uint64(len(t.slots))
	)

	for n := uint64(0); n < capacity; n++ {
		idx := int((uint64(h) + n) % capacity)

		switch t.ctrls[idx] {
		case slotEmpty:
			return -1
		case slotFull:
			if t.slots[idx].hash == h {
				return idx
			}
		}
	}

	return -1
}

// Reports whether key is in the table.
func (t *Table[K, V]) Has(key K) bool {
	return t.indexOf(key) != -1
}

// Returns the value stored for key, or ErrKeyNotFound.
func (t *Table[K, V]) Get(key K) (V, error) {
	idx := t.indexOf(key)
	if idx == -1 {
		return t.emptyV, errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}

	return t.slots[idx].Second, nil
}

// Removes key from the table, or returns ErrKeyNotFound.
func (t *Table[K, V]) Remove(key K) error {
	idx := t.indexOf(key)
	if idx == -1 {
		return errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}

	// Mark as deleted to keep the probe chain through this slot intact.
	t.ctrls[idx] = slotDeleted
	t.slots[idx] = slot[K, V]{}
	t.size--

	return nil
}

// resize moves the table to the next listed prime. Returns false if the
// table is already at the largest one.
func (t *Table[K, V]) resize() bool {
	from := len(t.slots)

	to, ok := NextCapacity(from)
	if !ok {
		t.logger.Warn("Table can't grow",
			zap.Int("capacity", from),
			zap.Int("size", t.size),
			zap.Error(ErrCapacityExhausted),
		)

		return false
	}

	t.rebuild(to)

	t.logger.Debug("Table resized",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("size", t.size),
	)

	return true
}

// rebuild replaces the backing arrays with fresh ones of the given capacity
// and reinserts every live entry in slot order. Tombstones are dropped.
func (t *Table[K, V]) rebuild(capacity int) {
	ctrls, slots := t.ctrls, t.slots

	t.ctrls = make([]uint8, capacity)
	t.slots = make([]slot[K, V], capacity)
	t.size = 0

	for i, c := range ctrls {
		if c == slotFull {
			s := &slots[i]
			t.put(s.hash, s.First, s.Second)
		}
	}
}

// Compact drops all tombstones, keeping the current capacity.
func (t *Table[K, V]) Compact() {
	tombstones := t.tombstones()
	if tombstones == 0 {
		return
	}

	t.rebuild(len(t.slots))

	t.logger.Debug("Table compacted",
		zap.Int("capacity", len(t.slots)),
		zap.Int("size", t.size),
		zap.Int("tombstones", tombstones),
	)
}

// Reset removes every entry, keeping the current capacity.
func (t *Table[K, V]) Reset() {
	clear(t.ctrls)
	clear(t.slots)

	t.size = 0
}

func (t *Table[K, V]) tombstones() int {
	n := 0
	for _, c := range t.ctrls {
		if c == slotDeleted {
			n++
		}
	}

	return n
}

func (t *Table[K, V]) Stats() Stats {
	var (
		capacity   = len(t.slots)
		tombstones = t.tombstones()
		stats      = Stats{
			Size:                    t.size,
			Capacity:                capacity,
			Tombstones:              tombstones,
			LoadFactor:              float32(t.size) / float32(capacity),
			TombstonesCapacityRatio: float32(tombstones) / float32(capacity),
		}
	)

	if t.size > 0 {
		stats.TombstonesSizeRatio = float32(tombstones) / float32(t.size)
	}

	return stats
}
