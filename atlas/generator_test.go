package atlas

import (
	"testing"

	"github.com/gogpu/msdffont/fontload"
	"github.com/gogpu/msdffont/internal/parallel"
)

func median3(a, b, c byte) byte {
	return max(min(a, b), min(max(a, b), c))
}

// renderSquare renders a unit square at 8 px per unit with a 2 px range.
// The box is 10x10: the square plus 1 px of margin on each side.
func renderSquare(t *testing.T, o *fontload.Outline) (*renderer, Box) {
	t.Helper()

	s := NewShape(o, 1)
	s.ColorEdges(3.0)

	const pxPerUnit, pixelRange = 8.0, 2.0
	bounds := s.Bounds.Expand(pixelRange / pxPerUnit / 2)
	box := Box{W: 10, H: 10}
	r := &renderer{
		bitmap:     make([]byte, box.W*box.H*4),
		side:       10,
		pxPerUnit:  pxPerUnit,
		pixelRange: pixelRange,
	}
	pool := parallel.NewPool(2)
	defer pool.Close()
	r.renderAll([]glyphJob{{shape: s, box: box, origin: Point{bounds.MinX, bounds.MinY}}}, pool)
	return r, box
}

// texel returns the pixel at box column i, row j counted from the bottom.
func texel(r *renderer, b Box, i, j int) [4]byte {
	off := ((b.Y+b.H-1-j)*r.side + b.X + i) * 4
	return [4]byte(r.bitmap[off : off+4])
}

func TestRenderSquare(t *testing.T) {
	r, box := renderSquare(t, unitSquare())

	// The centre is deeper than the range: fully inside.
	if px := texel(r, box, 5, 5); px != [4]byte{255, 255, 255, 255} {
		t.Errorf("centre texel = %v, want all 255", px)
	}

	// The bottom-left corner pixel samples (-1/16, -1/16): outside.
	px := texel(r, box, 0, 0)
	if px[3] >= 128 {
		t.Errorf("corner alpha = %d, want < 128", px[3])
	}
	if m := median3(px[0], px[1], px[2]); m >= 128 {
		t.Errorf("corner median = %d, want < 128", m)
	}

	// Pixel 1 samples 1/16 inside the left edge.
	px = texel(r, box, 1, 5)
	if px[3] <= 128 || median3(px[0], px[1], px[2]) <= 128 {
		t.Errorf("texel just inside the left edge = %v, want > 128", px)
	}
}

func TestRenderWindingIndependent(t *testing.T) {
	ccw, box := renderSquare(t, unitSquare())
	cw, _ := renderSquare(t, polygon(
		fontload.Point{X: 0, Y: 0}, fontload.Point{X: 0, Y: 1},
		fontload.Point{X: 1, Y: 1}, fontload.Point{X: 1, Y: 0},
	))

	for j := range box.H {
		for i := range box.W {
			a, b := texel(ccw, box, i, j), texel(cw, box, i, j)
			// Edge colors differ between the two, so only the median's
			// side of the outline has to agree.
			ma, mb := median3(a[0], a[1], a[2]), median3(b[0], b[1], b[2])
			if a[3] != b[3] || (ma >= 128) != (mb >= 128) {
				t.Errorf("texel (%d, %d): ccw %v, cw %v", i, j, a, b)
			}
		}
	}
}

func TestToByte(t *testing.T) {
	r := &renderer{pxPerUnit: 8, pixelRange: 2}
	tests := []struct {
		d    float64
		want byte
	}{
		{0, 128},
		{0.125, 255},
		{-0.125, 0},
		{10, 255},
		{-10, 0},
		{0.0625, 191},
	}
	for _, tt := range tests {
		if got := r.toByte(tt.d); got != tt.want {
			t.Errorf("toByte(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}
