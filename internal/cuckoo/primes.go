package cuckoo

import (
	"fmt"
	"math/big"
)

// DefaultPrimes are the table capacities, each step roughly doubles
// the previous one rounded up to the nearest prime
var DefaultPrimes = []uint64{11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853, 25717, 51481}

var ErrInvalidPrimes = fmt.Errorf("capacity sequence must be a non-empty ascending list of primes")

// validatePrimes checks that primes can serve as a capacity sequence
func validatePrimes(primes []uint64) error {
	if len(primes) == 0 {
		return ErrInvalidPrimes
	}

	for i, p := range primes {
		if p < 2 || !new(big.Int).SetUint64(p).ProbablyPrime(0) {
			return fmt.Errorf("%w: %d is not prime", ErrInvalidPrimes, p)
		}
		if i > 0 && p <= primes[i-1] {
			return fmt.Errorf("%w: %d follows %d", ErrInvalidPrimes, p, primes[i-1])
		}
	}

	return nil
}
