package brush

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap is the in-memory reference Surface implementation: a
// straight-alpha (NRGBA) pixel buffer. Host applications typically
// implement Surface over their own layer representation; Pixmap makes
// the engine usable and testable without one.
type Pixmap struct {
	width  int
	height int
	img    *image.NRGBA

	locked   bool
	onRender func()
	renders  int
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// FromImage creates a pixmap holding a copy of img.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	xdraw.Copy(pm.img, image.Point{}, img, bounds, xdraw.Src, nil)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Image returns the underlying NRGBA image. Mutating it mutates the
// pixmap.
func (p *Pixmap) Image() *image.NRGBA { return p.img }

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.img.SetNRGBA(x, y, c.NRGBA())
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	nc := p.img.NRGBAAt(x, y)
	return RGBA{
		R: float64(nc.R) / 255,
		G: float64(nc.G) / 255,
		B: float64(nc.B) / 255,
		A: float64(nc.A) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	nc := c.NRGBA()
	for y := 0; y < p.height; y++ {
		row := p.img.Pix[y*p.img.Stride:]
		for x := 0; x < p.width; x++ {
			i := x * 4
			row[i+0] = nc.R
			row[i+1] = nc.G
			row[i+2] = nc.B
			row[i+3] = nc.A
		}
	}
}

// GetRegion implements Surface. It returns a copy of the pixels in r.
// An empty region returns (nil, nil).
func (p *Pixmap) GetRegion(r Region) (*image.NRGBA, error) {
	if p.locked {
		return nil, ErrSurfaceLocked
	}
	if p.img == nil {
		return nil, ErrNoContext
	}
	r = r.Clamp(p.width, p.height)
	if r.Empty() {
		return nil, nil
	}

	out := image.NewNRGBA(image.Rect(0, 0, r.W, r.H))
	src := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	xdraw.Copy(out, image.Point{}, p.img, src, xdraw.Src, nil)
	return out, nil
}

// PutRegion implements Surface. It writes img with its top-left corner
// at (x, y), dropping pixels outside the pixmap.
func (p *Pixmap) PutRegion(img *image.NRGBA, x, y int) error {
	if p.locked {
		return ErrSurfaceLocked
	}
	if p.img == nil {
		return ErrNoContext
	}
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Empty() {
		return nil
	}

	xdraw.Copy(p.img, image.Pt(x, y), img, b, xdraw.Src, nil)
	return nil
}

// RequestRender implements Surface. It invokes the render callback set
// with SetRenderFunc, if any, and counts the request.
func (p *Pixmap) RequestRender() {
	p.renders++
	if p.onRender != nil {
		p.onRender()
	}
}

// SetRenderFunc registers a callback invoked by RequestRender.
func (p *Pixmap) SetRenderFunc(fn func()) { p.onRender = fn }

// Renders returns the number of render requests received.
func (p *Pixmap) Renders() int { return p.renders }

// Lock makes the pixmap refuse region access with ErrSurfaceLocked,
// simulating a locked layer.
func (p *Pixmap) Lock() { p.locked = true }

// Unlock re-enables region access.
func (p *Pixmap) Unlock() { p.locked = false }

// ToImage returns a copy of the pixmap as an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	out := image.NewNRGBA(p.img.Bounds())
	copy(out.Pix, p.img.Pix)
	return out
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
