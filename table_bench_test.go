package hashtable

import (
	"strconv"
	"testing"
)

var sizes = []int{
	// 6,
	1 << 10,
	1 << 16,
	1 << 20,
}

func BenchmarkTableGet_Miss(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapGetMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapGetMiss[uint64], genKeys[uint64]))
	})

	b.Run("variant=table", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkTableGetMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkTableGetMiss[uint64], genKeys[uint64]))
	})
}

func BenchmarkTableGet_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapGetHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=table", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkTableGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkTableGetHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkTableAdd_Grow(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapAddGrow[uint64], genKeys[uint64]))
	})

	b.Run("variant=table", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkTableAddGrow[uint64], genKeys[uint64]))
	})
}

func benchmarkStdMapGetMiss[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, capacity/2)
	misses := genKeys(capacity, capacity+capacity/2)
	m := make(map[K]int, capacity)

	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m[misses[i%len(misses)]]
	}
}

func benchmarkTableGetMiss[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, capacity/2)
	misses := genKeys(capacity, capacity+capacity/2)
	tt := NewWithCapacity[K, int](capacity)

	for i, k := range keys {
		tt.Add(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tt.Has(misses[i%len(misses)])
	}
}

func benchmarkStdMapGetHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, capacity/2)
	m := make(map[K]int, capacity)

	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkTableGetHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, capacity/2)
	tt := NewWithCapacity[K, int](capacity)

	for i, k := range keys {
		tt.Add(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tt.Get(keys[i%len(keys)])
	}
}

func benchmarkStdMapAddGrow[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, capacity)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m := make(map[K]int)
		for j, key := range keys {
			m[key] = j
		}
	}
}

func benchmarkTableAddGrow[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, capacity)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tt := New[K, int]()
		for j, key := range keys {
			tt.Add(key, j)
		}
	}
}

func genKeys[K comparable](start, end int) []K {
	keys := make([]K, end-start)

	for i := range keys {
		var k any
		switch any(keys[i]).(type) {
		case uint64:
			k = uint64(start + i)
		case string:
			k = strconv.Itoa(start + i)
		default:
			panic("not reached")
		}

		keys[i] = k.(K)
	}

	return keys
}

func benchSimulateLoad[K comparable](
	benchFunc func(b *testing.B, capacity int, keysFunc func(start, end int) []K),
	keysFunc func(start, end int) []K,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("capacity="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size, keysFunc)
			})
		}
	}
}
