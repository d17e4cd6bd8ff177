package brush

import (
	"bytes"
	"math"
	"testing"
)

func TestMaskDeterminism(t *testing.T) {
	a := rasterizeMask(21.5, 40)
	b := rasterizeMask(21.5, 40)
	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("two masks from the same (size, hardness) are not bit-identical")
	}
}

func TestMaskSide(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{1, 1},
		{2, 2},
		{10, 10},
		{10.1, 11},
		{21.5, 22},
	}
	for _, tt := range tests {
		if got := rasterizeMask(tt.size, 50).Side(); got != tt.want {
			t.Errorf("Side for size %v = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestMaskFalloff(t *testing.T) {
	size, hardness := 40.0, 50.0
	m := rasterizeMask(size, hardness)

	radius := size / 2
	innerR := radius * hardness / 100
	cx, cy := size/2, size/2

	for y := 0; y < m.Side(); y++ {
		for x := 0; x < m.Side(); x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			a := m.At(x, y)
			switch {
			case d <= innerR:
				if a != 255 {
					t.Fatalf("texel (%d,%d) at d=%.2f inside inner radius: alpha %d, want 255", x, y, d, a)
				}
			case d >= radius:
				if a != 0 {
					t.Fatalf("texel (%d,%d) at d=%.2f outside radius: alpha %d, want 0", x, y, d, a)
				}
			}
		}
	}
}

func TestMaskRadialMonotone(t *testing.T) {
	m := rasterizeMask(30, 30)
	cy := m.Side() / 2

	// Walking right from the center row, alpha never increases.
	prev := m.At(m.Side()/2, cy)
	for x := m.Side() / 2; x < m.Side(); x++ {
		a := m.At(x, cy)
		if a > prev {
			t.Fatalf("alpha increased from %d to %d at x=%d", prev, a, x)
		}
		prev = a
	}
}

func TestMaskOutOfBoundsAt(t *testing.T) {
	m := rasterizeMask(4, 100)
	if m.At(-1, 0) != 0 || m.At(0, -1) != 0 || m.At(4, 0) != 0 || m.At(0, 4) != 0 {
		t.Error("At outside mask bounds should return 0")
	}
}

func TestMaskCacheReusesMasks(t *testing.T) {
	c := NewMaskCache(10)
	a, err := c.Get(15, 60)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, err := c.Get(15, 60)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a != b {
		t.Error("identical keys should return the identical cached mask")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit, 1 miss", stats)
	}
}

func TestMaskCacheBound(t *testing.T) {
	const bound = 8
	c := NewMaskCache(bound)

	// Request bound+k distinct keys; the cache never exceeds its bound.
	for i := 0; i < bound+5; i++ {
		if _, err := c.Get(float64(3+i), 50); err != nil {
			t.Fatalf("Get: %v", err)
		}
		if c.Len() > bound {
			t.Fatalf("cache grew to %d entries, bound is %d", c.Len(), bound)
		}
	}
	if c.Len() != bound {
		t.Errorf("Len = %d, want %d", c.Len(), bound)
	}
	if got := c.Stats().Evictions; got != 5 {
		t.Errorf("evictions = %d, want 5", got)
	}
}

func TestMaskCacheClampsKey(t *testing.T) {
	c := NewMaskCache(0)
	m, err := c.Get(0.2, 140)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m.Size() != 1 || m.Hardness() != 100 {
		t.Errorf("key clamped to (%v, %v), want (1, 100)", m.Size(), m.Hardness())
	}
}
