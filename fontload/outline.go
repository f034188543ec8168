package fontload

import (
	"math"

	"github.com/gogpu/msdffont"
)

// Point is an outline coordinate in em units, y up.
type Point struct {
	X, Y float64
}

// SegmentOp is the type of path operation.
type SegmentOp uint8

const (
	// MoveTo starts a new contour at Points[0].
	MoveTo SegmentOp = iota

	// LineTo draws a line to Points[0].
	LineTo

	// QuadTo draws a quadratic Bézier: control Points[0], target Points[1].
	QuadTo

	// CubeTo draws a cubic Bézier: controls Points[0] and Points[1],
	// target Points[2].
	CubeTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// PointCount returns how many entries of Segment.Points op uses.
func (op SegmentOp) PointCount() int {
	switch op {
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	default:
		return 1
	}
}

// Segment is one path operation of an outline.
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// End returns the segment's target point.
func (s Segment) End() Point {
	return s.Points[s.Op.PointCount()-1]
}

// Outline is a glyph's vector outline: one or more closed contours, each
// introduced by a MoveTo.
type Outline struct {
	Segments []Segment

	// Bounds is the control-point bounding box. It contains the curve.
	Bounds msdffont.Bounds

	// Advance is the horizontal advance width.
	Advance float64
}

// IsEmpty reports whether the outline has no segments, as for a space.
func (o *Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Scale returns a copy of o with every coordinate multiplied by f.
func (o *Outline) Scale(f float64) *Outline {
	if o == nil {
		return nil
	}

	scaled := &Outline{
		Segments: make([]Segment, len(o.Segments)),
		Bounds: msdffont.Bounds{
			Left:   o.Bounds.Left * f,
			Bottom: o.Bounds.Bottom * f,
			Right:  o.Bounds.Right * f,
			Top:    o.Bounds.Top * f,
		},
		Advance: o.Advance * f,
	}
	if f < 0 {
		scaled.Bounds.Left, scaled.Bounds.Right = scaled.Bounds.Right, scaled.Bounds.Left
		scaled.Bounds.Bottom, scaled.Bounds.Top = scaled.Bounds.Top, scaled.Bounds.Bottom
	}

	for i, seg := range o.Segments {
		s := Segment{Op: seg.Op}
		for j := range seg.Op.PointCount() {
			s.Points[j] = Point{X: seg.Points[j].X * f, Y: seg.Points[j].Y * f}
		}
		scaled.Segments[i] = s
	}
	return scaled
}

// boundsOf returns the box around every point segs use.
func boundsOf(segs []Segment) msdffont.Bounds {
	if len(segs) == 0 {
		return msdffont.Bounds{}
	}

	b := msdffont.Bounds{
		Left:   math.Inf(1),
		Bottom: math.Inf(1),
		Right:  math.Inf(-1),
		Top:    math.Inf(-1),
	}
	for _, seg := range segs {
		for _, p := range seg.Points[:seg.Op.PointCount()] {
			b.Left = min(b.Left, p.X)
			b.Bottom = min(b.Bottom, p.Y)
			b.Right = max(b.Right, p.X)
			b.Top = max(b.Top, p.Y)
		}
	}
	return b
}
