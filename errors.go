package hashtable

import "github.com/pkg/errors"

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrCapacityExhausted = errors.New("no larger capacity available")
)
