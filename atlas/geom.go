package atlas

import "math"

// Point is a 2D point or vector in glyph units, y up.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the 3D cross product. It is positive
// when q points to the left of p.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean length.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Normalized returns a unit vector in the direction of p, or the zero
// vector if p has no length.
func (p Point) Normalized() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Lerp returns p + t*(q-p).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
}

// Rect is an axis-aligned box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsEmpty reports whether r has zero or negative area.
func (r Rect) IsEmpty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// Expand returns r grown by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{r.MinX - margin, r.MinY - margin, r.MaxX + margin, r.MaxY + margin}
}

// Union returns the smallest box containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{min(r.MinX, s.MinX), min(r.MinY, s.MinY), max(r.MaxX, s.MaxX), max(r.MaxY, s.MaxY)}
}

// include grows r to contain p.
func (r Rect) include(p Point) Rect {
	return Rect{min(r.MinX, p.X), min(r.MinY, p.Y), max(r.MaxX, p.X), max(r.MaxY, p.Y)}
}

// emptyRect is the identity for Union and include.
func emptyRect() Rect {
	return Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

// SignedDistance is a distance to an edge plus the tie-breaker used when
// two edges are equally close.
type SignedDistance struct {
	// Distance is positive to the left of the edge direction.
	Distance float64

	// Dot is |cos| of the angle between the edge tangent and the
	// direction to the point. Smaller means more orthogonal.
	Dot float64
}

// farDistance is farther than any real edge.
var farDistance = SignedDistance{Distance: math.MaxFloat64, Dot: 1}

// closerThan reports whether d is closer to its edge than o.
func (d SignedDistance) closerThan(o SignedDistance) bool {
	ad, ao := math.Abs(d.Distance), math.Abs(o.Distance)
	if ad != ao {
		return ad < ao
	}
	return d.Dot < o.Dot
}
