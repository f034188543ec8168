package atlas

import (
	"math"

	"github.com/gogpu/msdffont/internal/parallel"
)

// glyphJob is one glyph placed in the atlas, ready to render.
type glyphJob struct {
	shape *Shape

	// box is the glyph's region in the bitmap, top-left origin.
	box Box

	// origin is the shape-space point under the box's bottom-left corner.
	origin Point
}

// renderer writes MTSDF pixels into a square RGBA8 bitmap.
type renderer struct {
	bitmap     []byte
	side       int
	pxPerUnit  float64
	pixelRange float64
}

// renderAll renders every non-empty job on the pool. Jobs write disjoint
// regions, so the bitmap needs no locking.
func (r *renderer) renderAll(jobs []glyphJob, pool *parallel.Pool) {
	pending := make([]int, 0, len(jobs))
	for i := range jobs {
		if !jobs[i].box.Empty() {
			pending = append(pending, i)
		}
	}
	pool.ForEach(len(pending), func(i int) {
		r.render(&jobs[pending[i]])
	})
}

// render fills one glyph box. Box row j counts up from the bottom while
// bitmap rows run top-down.
func (r *renderer) render(job *glyphJob) {
	b := job.box
	for j := range b.H {
		row := b.Y + b.H - 1 - j
		py := job.origin.Y + (float64(j)+0.5)/r.pxPerUnit
		for i := range b.W {
			p := Point{job.origin.X + (float64(i)+0.5)/r.pxPerUnit, py}
			px := r.sample(job.shape, p)
			off := (row*r.side + b.X + i) * 4
			copy(r.bitmap[off:off+4], px[:])
		}
	}
}

// sample returns the MTSDF texel at p: three channel pseudo-distances and
// the true distance in alpha, all positive inside the shape.
func (r *renderer) sample(s *Shape, p Point) [4]byte {
	var (
		channel [3]SignedDistance
		nearest [3]*Edge
		param   [3]float64
	)
	channel[0], channel[1], channel[2] = farDistance, farDistance, farDistance
	closest := farDistance

	for ci := range s.Contours {
		edges := s.Contours[ci].Edges
		for ei := range edges {
			e := &edges[ei]
			sd, t := e.signedDistance(p)
			if sd.closerThan(closest) {
				closest = sd
			}
			for c := range channel {
				if e.Color&(1<<c) != 0 && sd.closerThan(channel[c]) {
					channel[c], nearest[c], param[c] = sd, e, t
				}
			}
		}
	}

	var out [4]byte
	for c := range channel {
		d := closest.Distance
		if nearest[c] != nil {
			d = nearest[c].pseudoDistance(channel[c], p, param[c]).Distance
		}
		out[c] = r.toByte(d * s.orientation)
	}

	d := math.Abs(closest.Distance)
	if !s.inside(p) {
		d = -d
	}
	out[3] = r.toByte(d)
	return out
}

// toByte maps a shape-space distance to a texel: 0.5 on the edge and the
// full byte range across PixelRange pixels.
func (r *renderer) toByte(d float64) byte {
	v := 0.5 + d*r.pxPerUnit/r.pixelRange
	return byte(math.Round(min(max(v, 0), 1) * 255))
}
