package isolate_test

import "math/rand"

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test jitter
}
