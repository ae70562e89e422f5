package rational

import "sync"

// primeCache is the process-wide prime sequence shared by every GCD
// computation. Append-only and strictly ascending; the first entry is
// always 2. All access goes through the mutex.
var primeCache = struct {
	sync.Mutex
	seq []uint64
}{}

// primes returns an iterator over the ascending prime sequence, starting
// again from 2. The backing cache is shared and extended by trial division
// on demand; each step holds the cache lock for the duration of the
// lookup, including any extension. Callers may stop consuming at any
// point.
func primes() func() uint64 {
	index := 0
	return func() uint64 {
		primeCache.Lock()
		defer primeCache.Unlock()
		if len(primeCache.seq) == 0 {
			primeCache.seq = append(primeCache.seq, 2)
		}
		for len(primeCache.seq) <= index {
			primeCache.seq = append(primeCache.seq, nextPrimeLocked())
		}
		p := primeCache.seq[index]
		index++
		return p
	}
}

// nextPrimeLocked finds the first prime above the last cached entry.
// Caller must hold the cache lock.
func nextPrimeLocked() uint64 {
	for cand := primeCache.seq[len(primeCache.seq)-1] + 1; ; cand++ {
		if isPrimeLocked(cand) {
			return cand
		}
	}
}

// isPrimeLocked reports whether no cached prime divides cand. The cache
// holds every prime up to its last entry, so trial division with the
// p*p <= cand cutoff is sufficient. Caller must hold the cache lock.
func isPrimeLocked(cand uint64) bool {
	for _, p := range primeCache.seq {
		if p*p > cand {
			return true
		}
		if cand%p == 0 {
			return false
		}
	}
	return true
}

// gcd computes the greatest common divisor of two unsigned magnitudes by
// dividing shared prime factors out of both. The prime walk stops once the
// smaller value can hold no further factor.
func gcd(a, b uint64) uint64 {
	lowest, highest := a, b
	if lowest > highest {
		lowest, highest = highest, lowest
	}
	result := uint64(1)
	next := primes()
	for {
		i := next()
		if lowest/i < 1 {
			break
		}
		for lowest%i == 0 && highest%i == 0 {
			lowest /= i
			highest /= i
			result *= i
		}
	}
	return result
}
