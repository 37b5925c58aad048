package hashtable

import "slices"

// Primes are the backing array sizes a table moves through as it grows.
// Each is roughly twice the previous one.
var Primes = [...]int{
	53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593, 49157,
	98317, 196613, 393241, 786433, 1572869,
}

// DefaultCapacity is the capacity of a table created by New.
const DefaultCapacity = 53

// Returns the smallest listed prime strictly greater than `capacity`,
// or false if `capacity` is already at or above the largest one.
func NextCapacity(capacity int) (int, bool) {
	i, found := slices.BinarySearch(Primes[:], capacity)
	if found {
		i++
	}

	if i == len(Primes) {
		return 0, false
	}

	return Primes[i], true
}
