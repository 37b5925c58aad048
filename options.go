package hashtable

import "go.uber.org/zap"

type Option[K comparable, V any] func(t *Table[K, V])

// Sets the logger used to report resizes and compactions.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(t *Table[K, V]) {
		t.logger = logger
	}
}
