package util

import "testing"

func TestNextPow2(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ in, want uint64 }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {8, 8}, {1000, 1024},
		{1<<63 + 1, 1 << 63},
	} {
		if got := NextPow2(tc.in); got != tc.want {
			t.Fatalf("NextPow2(%d): want %d, got %d", tc.in, tc.want, got)
		}
		if !IsPowerOfTwo(NextPow2(tc.in)) {
			t.Fatalf("NextPow2(%d) is not a power of two", tc.in)
		}
	}
	if IsPowerOfTwo(0) || IsPowerOfTwo(6) {
		t.Fatal("IsPowerOfTwo false positives")
	}
}
