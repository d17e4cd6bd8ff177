package brush

import (
	"errors"
	"image"
	"testing"

	"github.com/disintegration/imaging"
)

func TestPixmapRegionRoundTrip(t *testing.T) {
	pm := NewPixmap(30, 30)
	pm.SetPixel(11, 12, Red)

	buf, err := pm.GetRegion(Rg(10, 10, 5, 5))
	if err != nil {
		t.Fatalf("GetRegion: %v", err)
	}
	c := buf.NRGBAAt(1, 2)
	if c.R != 255 || c.A != 255 {
		t.Fatalf("region pixel = %+v, want red", c)
	}

	// Modify the buffer and write it back.
	buf.SetNRGBA(0, 0, Blue.NRGBA())
	if err := pm.PutRegion(buf, 10, 10); err != nil {
		t.Fatalf("PutRegion: %v", err)
	}
	if got := pm.GetPixel(10, 10); got.B < 0.99 {
		t.Errorf("pixel after PutRegion = %+v, want blue", got)
	}
}

func TestPixmapRegionCopyIsolation(t *testing.T) {
	pm := NewPixmap(20, 20)
	buf, err := pm.GetRegion(Rg(0, 0, 5, 5))
	if err != nil {
		t.Fatalf("GetRegion: %v", err)
	}

	// Mutating the returned buffer must not touch the pixmap until
	// PutRegion.
	buf.SetNRGBA(0, 0, Red.NRGBA())
	if got := pm.GetPixel(0, 0); got.A != 0 {
		t.Error("GetRegion returned a live view, want a copy")
	}
}

func TestPixmapEmptyRegion(t *testing.T) {
	pm := NewPixmap(20, 20)
	buf, err := pm.GetRegion(Rg(5, 5, 0, 3))
	if err != nil {
		t.Fatalf("GetRegion: %v", err)
	}
	if buf != nil {
		t.Error("empty region should return a nil buffer")
	}
	if err := pm.PutRegion(nil, 0, 0); err != nil {
		t.Errorf("PutRegion(nil) = %v, want no-op", err)
	}
}

func TestPixmapLocked(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.Lock()

	if _, err := pm.GetRegion(Rg(0, 0, 5, 5)); !errors.Is(err, ErrSurfaceLocked) {
		t.Errorf("GetRegion on locked pixmap = %v, want ErrSurfaceLocked", err)
	}
	if err := pm.PutRegion(image.NewNRGBA(image.Rect(0, 0, 2, 2)), 0, 0); !errors.Is(err, ErrSurfaceLocked) {
		t.Errorf("PutRegion on locked pixmap = %v, want ErrSurfaceLocked", err)
	}

	pm.Unlock()
	if _, err := pm.GetRegion(Rg(0, 0, 5, 5)); err != nil {
		t.Errorf("GetRegion after Unlock = %v, want nil", err)
	}
}

func TestPixmapFromImage(t *testing.T) {
	src := imaging.New(8, 6, Red.NRGBA())
	pm := FromImage(src)

	if pm.Width() != 8 || pm.Height() != 6 {
		t.Fatalf("dimensions = %dx%d, want 8x6", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(4, 3); got.R < 0.99 || got.A < 0.99 {
		t.Errorf("pixel = %+v, want red", got)
	}
}

func TestPixmapRenderCallback(t *testing.T) {
	pm := NewPixmap(10, 10)
	fired := 0
	pm.SetRenderFunc(func() { fired++ })

	pm.RequestRender()
	pm.RequestRender()
	if fired != 2 || pm.Renders() != 2 {
		t.Errorf("render callback fired %d times (counted %d), want 2", fired, pm.Renders())
	}
}
