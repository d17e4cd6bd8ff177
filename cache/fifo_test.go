package cache

import (
	"errors"
	"fmt"
	"testing"
)

func TestFIFOBasic(t *testing.T) {
	c := NewFIFO[string, int](4)

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache should miss")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if c.Capacity() != 4 {
		t.Errorf("Capacity = %d, want 4", c.Capacity())
	}
}

func TestFIFOEvictsOldestFirst(t *testing.T) {
	c := NewFIFO[int, int](3)
	for i := 0; i < 3; i++ {
		c.Set(i, i*10)
	}

	// Reading key 0 must not protect it: eviction is insertion-ordered.
	c.Get(0)
	c.Set(3, 30)

	if _, ok := c.Get(0); ok {
		t.Error("oldest entry survived eviction")
	}
	for _, k := range []int{1, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d missing, want present", k)
		}
	}
}

func TestFIFOBounded(t *testing.T) {
	c := NewFIFO[int, int](10)
	for i := 0; i < 35; i++ {
		c.Set(i, i)
	}
	if c.Len() != 10 {
		t.Errorf("Len = %d after 35 inserts, want 10", c.Len())
	}
	// The survivors are exactly the last 10 insertions.
	for i := 25; i < 35; i++ {
		if _, ok := c.Get(i); !ok {
			t.Errorf("recent entry %d missing", i)
		}
	}
}

func TestFIFOUpdateKeepsPosition(t *testing.T) {
	c := NewFIFO[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 9) // update, not re-insert

	c.Set("c", 3) // evicts "a", still the oldest
	if _, ok := c.Get("a"); ok {
		t.Error("updated entry kept its insertion position, should have been evicted")
	}
	if v, _ := c.Get("b"); v != 2 {
		t.Errorf("Get(b) = %d, want 2", v)
	}
}

func TestFIFOGetOrCreate(t *testing.T) {
	c := NewFIFO[string, int](4)
	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := c.GetOrCreate("k", create)
	if err != nil || v != 42 {
		t.Fatalf("GetOrCreate = %d, %v, want 42, nil", v, err)
	}
	v, err = c.GetOrCreate("k", create)
	if err != nil || v != 42 {
		t.Fatalf("second GetOrCreate = %d, %v, want 42, nil", v, err)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestFIFOGetOrCreateError(t *testing.T) {
	c := NewFIFO[string, int](4)
	boom := errors.New("boom")

	_, err := c.GetOrCreate("k", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("GetOrCreate error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed create must not insert an entry")
	}
	if _, ok := c.Get("k"); ok {
		t.Error("key present after failed create")
	}
}

func TestFIFODelete(t *testing.T) {
	c := NewFIFO[string, int](4)
	c.Set("a", 1)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after delete, want 0", c.Len())
	}
}

func TestFIFOClear(t *testing.T) {
	c := NewFIFO[int, int](8)
	for i := 0; i < 8; i++ {
		c.Set(i, i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", c.Len())
	}
	// Insertion works normally again.
	c.Set(1, 1)
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Errorf("Get after Clear = %d, %v, want 1, true", v, ok)
	}
}

func TestFIFOStats(t *testing.T) {
	c := NewFIFO[int, int](2)
	c.Set(1, 1)
	c.Get(1) // hit
	c.Get(2) // miss
	c.Set(2, 2)
	c.Set(3, 3) // evicts 1

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Evictions != 1 {
		t.Errorf("stats = %+v, want 1 hit, 1 miss, 1 eviction", s)
	}
	if s.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", s.HitRate)
	}

	c.ResetStats()
	s = c.Stats()
	if s.Hits != 0 || s.Misses != 0 || s.Evictions != 0 || s.HitRate != 0 {
		t.Errorf("stats after reset = %+v, want zeros", s)
	}
}

func TestFIFODefaultCapacity(t *testing.T) {
	c := NewFIFO[string, int](0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", c.Capacity(), DefaultCapacity)
	}
}

func BenchmarkFIFOGet(b *testing.B) {
	c := NewFIFO[string, int](DefaultCapacity)
	for i := 0; i < DefaultCapacity; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key-25")
	}
}
