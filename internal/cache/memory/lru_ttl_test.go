package memory

import (
	"testing"
	"time"
)

func TestLRUTTLEvictsOldest(t *testing.T) {
	c := NewLRUTTL[string, int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("oldest entry survived eviction")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatalf("newest entry lost: %v %v", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRUTTLExpiry(t *testing.T) {
	c := NewLRUTTL[string, int](8, 10*time.Millisecond)
	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expired entry returned")
	}
}

func TestLRUTTLGetRefreshesRecency(t *testing.T) {
	c := NewLRUTTL[string, int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("a"); !ok {
		t.Fatalf("recently used entry evicted")
	}
	if _, ok := c.Get("b"); ok {
		t.Fatalf("least recently used entry survived")
	}
}

func TestLRUTTLNilReceiver(t *testing.T) {
	var c *LRUTTL[string, int]
	c.Set("a", 1)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("nil cache returned a value")
	}
}
