package rational

import (
	"sync"
	"testing"
)

func TestPrimesSequence(t *testing.T) {
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	next := primes()
	for i, w := range want {
		if got := next(); got != w {
			t.Fatalf("prime at index %d = %d, want %d", i, got, w)
		}
	}
}

func TestPrimesRestart(t *testing.T) {
	first := primes()
	first()
	first()
	first()

	// A fresh iterator starts over at 2 regardless of cache state.
	second := primes()
	if got := second(); got != 2 {
		t.Errorf("restarted iterator yielded %d, want 2", got)
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{100, 10, 10},
		{1, 99, 1},
		{64, 48, 16},
		// The trial-division loop exits on the first prime when the
		// smaller value is zero.
		{0, 5, 1},
		{5, 0, 1},
		{0, 0, 1},
	}

	for _, tt := range tests {
		if got := gcd(tt.a, tt.b); got != tt.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPrimeCacheStaysOrderedUnderConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			for i := uint64(1); i < 200; i++ {
				gcd(seed*i, (seed+3)*i)
			}
		}(uint64(g + 2))
	}
	wg.Wait()

	primeCache.Lock()
	defer primeCache.Unlock()
	if len(primeCache.seq) == 0 || primeCache.seq[0] != 2 {
		t.Fatalf("cache does not start at 2: %v", primeCache.seq)
	}
	for i := 1; i < len(primeCache.seq); i++ {
		if primeCache.seq[i] <= primeCache.seq[i-1] {
			t.Fatalf("cache not strictly ascending at index %d: %d after %d",
				i, primeCache.seq[i], primeCache.seq[i-1])
		}
	}
}
