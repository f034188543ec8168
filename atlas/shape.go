package atlas

import (
	"math"

	"github.com/gogpu/msdffont/fontload"
)

// Contour is a closed loop of edges.
type Contour struct {
	Edges []Edge
}

// Bounds returns the exact bounding box of the contour.
func (c *Contour) Bounds() Rect {
	r := emptyRect()
	for i := range c.Edges {
		r = r.Union(c.Edges[i].Bounds())
	}
	return r
}

// Area returns the contour's signed area, positive for counter-clockwise
// winding with y up. Curves are approximated by their flattened polyline.
func (c *Contour) Area() float64 {
	if len(c.Edges) == 0 {
		return 0
	}
	pts := c.polyline(nil)
	var sum float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		sum += prev.Cross(p)
		prev = p
	}
	return sum / 2
}

// polyline appends the flattened contour to dst.
func (c *Contour) polyline(dst []Point) []Point {
	for i := range c.Edges {
		dst = c.Edges[i].flatten(dst)
	}
	return dst
}

// Shape is a glyph outline converted to edges.
type Shape struct {
	Contours []Contour

	// Bounds is the exact bounding box of all contours.
	Bounds Rect

	// orientation is +1 when the filled side lies left of the edge
	// direction and -1 when it lies right.
	orientation float64

	// rings are the flattened contours used for inside tests.
	rings [][]Point
}

// EdgeCount returns the number of edges across all contours.
func (s *Shape) EdgeCount() int {
	n := 0
	for i := range s.Contours {
		n += len(s.Contours[i].Edges)
	}
	return n
}

// IsEmpty reports whether the shape encloses no area.
func (s *Shape) IsEmpty() bool {
	return s.EdgeCount() == 0 || s.Bounds.IsEmpty()
}

// NewShape converts an outline to a shape, scaling every coordinate by
// scale. Degenerate line segments are dropped and open contours closed.
func NewShape(o *fontload.Outline, scale float64) *Shape {
	s := &Shape{}
	if o == nil {
		s.finish()
		return s
	}

	var (
		cur        Contour
		start, pos Point
	)
	pt := func(p fontload.Point) Point { return Point{p.X * scale, p.Y * scale} }
	flush := func() {
		if pos != start {
			cur.Edges = append(cur.Edges, NewLinearEdge(pos, start))
		}
		if len(cur.Edges) > 0 {
			s.Contours = append(s.Contours, cur)
		}
		cur = Contour{}
	}

	for _, seg := range o.Segments {
		switch seg.Op {
		case fontload.MoveTo:
			flush()
			start = pt(seg.Points[0])
			pos = start
		case fontload.LineTo:
			end := pt(seg.Points[0])
			if end != pos {
				cur.Edges = append(cur.Edges, NewLinearEdge(pos, end))
			}
			pos = end
		case fontload.QuadTo:
			end := pt(seg.Points[1])
			cur.Edges = append(cur.Edges, NewQuadraticEdge(pos, pt(seg.Points[0]), end))
			pos = end
		case fontload.CubeTo:
			end := pt(seg.Points[2])
			cur.Edges = append(cur.Edges, NewCubicEdge(pos, pt(seg.Points[0]), pt(seg.Points[1]), end))
			pos = end
		}
	}
	flush()
	s.finish()
	return s
}

// finish computes the derived fields after the contours are final.
func (s *Shape) finish() {
	s.Bounds = Rect{}
	if s.EdgeCount() > 0 {
		s.Bounds = emptyRect()
		for i := range s.Contours {
			s.Bounds = s.Bounds.Union(s.Contours[i].Bounds())
		}
	}

	var area float64
	s.rings = s.rings[:0]
	for i := range s.Contours {
		area += s.Contours[i].Area()
		s.rings = append(s.rings, s.Contours[i].polyline(nil))
	}
	s.orientation = 1
	if area < 0 {
		s.orientation = -1
	}
}

// inside reports whether p is filled under the non-zero winding rule.
func (s *Shape) inside(p Point) bool {
	winding := 0
	for _, ring := range s.rings {
		prev := ring[len(ring)-1]
		for _, cur := range ring {
			side := cur.Sub(prev).Cross(p.Sub(prev))
			switch {
			case prev.Y <= p.Y && cur.Y > p.Y && side > 0:
				winding++
			case cur.Y <= p.Y && prev.Y > p.Y && side < 0:
				winding--
			}
			prev = cur
		}
	}
	return winding != 0
}

// ColorEdges assigns channel colors so that every corner sharper than
// angleThreshold separates two differently colored edge runs. Contours
// without corners stay white.
func (s *Shape) ColorEdges(angleThreshold float64) {
	crossThreshold := math.Sin(angleThreshold)
	for i := range s.Contours {
		colorContour(&s.Contours[i], crossThreshold)
	}
}

// isCorner reports whether the turn from direction a to direction b is a
// corner: it reverses, or it deviates by more than the threshold.
func isCorner(a, b Point, crossThreshold float64) bool {
	return a.Dot(b) <= 0 || math.Abs(a.Cross(b)) > crossThreshold
}

// nextColor returns the first of cyan, magenta and yellow after cur that
// differs from both cur and banned.
func nextColor(cur, banned EdgeColor) EdgeColor {
	cycle := [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}
	start := 0
	for i, c := range cycle {
		if c == cur {
			start = i + 1
		}
	}
	for i := range cycle {
		if c := cycle[(start+i)%3]; c != cur && c != banned {
			return c
		}
	}
	return ColorCyan
}

func colorContour(c *Contour, crossThreshold float64) {
	n := len(c.Edges)
	if n == 0 {
		return
	}

	// corners[k] is the index of the edge that starts at the k-th corner.
	var corners []int
	prevDir := c.Edges[n-1].Direction(1).Normalized()
	for i := range c.Edges {
		dir := c.Edges[i].Direction(0).Normalized()
		if isCorner(prevDir, dir, crossThreshold) {
			corners = append(corners, i)
		}
		prevDir = c.Edges[i].Direction(1).Normalized()
	}

	switch len(corners) {
	case 0:
		for i := range c.Edges {
			c.Edges[i].Color = ColorWhite
		}
	case 1:
		colorTeardrop(c, corners[0])
	default:
		first := ColorCyan
		color := first
		k := 0
		for i := range n {
			idx := (corners[0] + i) % n
			if k+1 < len(corners) && corners[k+1] == idx {
				k++
				banned := ColorBlack
				if k == len(corners)-1 {
					banned = first
				}
				color = nextColor(color, banned)
			}
			c.Edges[idx].Color = color
		}
	}
}

// colorTeardrop colors a contour with a single corner. Its edges are
// divided into three runs so that both sides of the corner differ.
func colorTeardrop(c *Contour, corner int) {
	colors := [3]EdgeColor{ColorMagenta, ColorWhite, ColorYellow}
	n := len(c.Edges)

	if n < 3 {
		// Too few edges for three runs: split them.
		var parts []Edge
		for i := range n {
			e := c.Edges[(corner+i)%n]
			if n == 1 {
				t := e.SplitThirds()
				parts = append(parts, t[:]...)
				continue
			}
			a, b := e.Split(0.5)
			parts = append(parts, a, b)
		}
		c.Edges = parts
		n = len(parts)
		corner = 0
	}

	for i := range n {
		// Symmetric split of n edges into runs -1, 0, +1.
		run := int(3+2.875*float64(i)/float64(n-1)-1.4375+0.5) - 3
		c.Edges[(corner+i)%n].Color = colors[run+1]
	}
}
