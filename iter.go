package hashtable

import (
	"iter"
	"strings"
)

// Values returns the live values in slot order. The order changes
// whenever the table is resized or compacted.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	for i, c := range t.ctrls {
		if c == slotFull {
			values = append(values, t.slots[i].Second)
		}
	}

	return values
}

// All yields the live entries in slot order.
// The table must not be modified while iterating.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, c := range t.ctrls {
			if c != slotFull {
				continue
			}

			if !yield(t.slots[i].First, t.slots[i].Second) {
				return
			}
		}
	}
}

// String renders the table as {(k1, v1), (k2, v2)} in slot order.
func (t *Table[K, V]) String() string {
	var b strings.Builder

	b.WriteByte('{')
	first := true
	for i, c := range t.ctrls {
		if c != slotFull {
			continue
		}

		if !first {
			b.WriteString(", ")
		}
		first = false

		b.WriteString(t.slots[i].Pair.String())
	}
	b.WriteByte('}')

	return b.String()
}
