package ratelimit

import "testing"

func TestLimiterConsumesCapacity(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("finnhub", 3, 0) {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("finnhub", 3, 0) {
		t.Fatal("bucket exhausted, request should be denied")
	}
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := New()

	if !l.Allow("a", 1, 0) {
		t.Fatal("first request on key a should pass")
	}
	if l.Allow("a", 1, 0) {
		t.Fatal("key a exhausted")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatal("key b has its own bucket")
	}
}
