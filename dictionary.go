package hashtable

// Dictionary is a key-value store.
//
// Add reports false only when the store can't make room for the key.
// Remove and Get return ErrKeyNotFound for absent keys.
type Dictionary[K comparable, V any] interface {
	Add(key K, value V) bool
	Remove(key K) error
	Has(key K) bool
	Get(key K) (V, error)
}

var _ Dictionary[string, int] = (*Table[string, int])(nil)
