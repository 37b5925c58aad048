package hashtable

import (
	"hash/maphash"
	"reflect"
)

// Hasher is implemented by keys that provide their own digest.
// Keys with equal digests are treated as the same key by the table.
type Hasher interface {
	HashCode() uint32
}

var digestSeed = maphash.MakeSeed()

// Digest returns the integer digest the table uses for key.
//
// Integers digest to themselves (folded to 32 bits), strings use the
// 31-polynomial string hash, and keys implementing Hasher use HashCode.
// Everything else falls back to maphash with a per-process seed.
func Digest[K comparable](key K) uint32 {
	switch k := any(key).(type) {
	case Hasher:
		return k.HashCode()
	case int:
		return foldUint64(uint64(k))
	case int8:
		return uint32(k)
	case int16:
		return uint32(k)
	case int32:
		return uint32(k)
	case int64:
		return foldUint64(uint64(k))
	case uint:
		return foldUint64(uint64(k))
	case uint8:
		return uint32(k)
	case uint16:
		return uint32(k)
	case uint32:
		return k
	case uint64:
		return foldUint64(k)
	case uintptr:
		return foldUint64(uint64(k))
	case string:
		return hashString(k)
	case bool:
		if k {
			return 1231
		}
		return 1237
	}

	// Named types over primitive kinds.
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return foldUint64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return foldUint64(v.Uint())
	case reflect.String:
		return hashString(v.String())
	}

	return foldUint64(maphash.Comparable(digestSeed, key))
}

func foldUint64(v uint64) uint32 {
	return uint32(v ^ (v >> 32))
}

func hashString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = 31*h + uint32(s[i])
	}

	return h
}
