package atlas

import "math"

// EdgeType classifies edge segments by their geometric type.
type EdgeType int

const (
	// EdgeLinear is a straight segment.
	EdgeLinear EdgeType = iota

	// EdgeQuadratic is a quadratic Bézier with one control point.
	EdgeQuadratic

	// EdgeCubic is a cubic Bézier with two control points.
	EdgeCubic
)

// String returns a string representation of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// EdgeColor is the set of distance channels an edge contributes to.
type EdgeColor uint8

// Edge colors. Each bit selects one of the red, green and blue channels.
const (
	ColorBlack EdgeColor = 0
	ColorRed   EdgeColor = 1 << (iota - 1)
	ColorGreen
	ColorBlue

	ColorYellow  = ColorRed | ColorGreen
	ColorCyan    = ColorGreen | ColorBlue
	ColorMagenta = ColorRed | ColorBlue
	ColorWhite   = ColorRed | ColorGreen | ColorBlue
)

// String returns a string representation of the edge color.
func (c EdgeColor) String() string {
	switch c {
	case ColorBlack:
		return "Black"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorCyan:
		return "Cyan"
	case ColorMagenta:
		return "Magenta"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// Edge is one segment of a contour.
type Edge struct {
	Type EdgeType

	// Points holds the start point, the control points and the end point,
	// in that order. Unused entries are zero.
	Points [4]Point

	Color EdgeColor
}

// NewLinearEdge returns a white line from a to b.
func NewLinearEdge(a, b Point) Edge {
	return Edge{Type: EdgeLinear, Points: [4]Point{a, b}, Color: ColorWhite}
}

// NewQuadraticEdge returns a white quadratic Bézier.
func NewQuadraticEdge(a, c, b Point) Edge {
	return Edge{Type: EdgeQuadratic, Points: [4]Point{a, c, b}, Color: ColorWhite}
}

// NewCubicEdge returns a white cubic Bézier.
func NewCubicEdge(a, c1, c2, b Point) Edge {
	return Edge{Type: EdgeCubic, Points: [4]Point{a, c1, c2, b}, Color: ColorWhite}
}

// Start returns the first point of the edge.
func (e *Edge) Start() Point { return e.Points[0] }

// End returns the last point of the edge.
func (e *Edge) End() Point { return e.Points[e.Type+1] }

// PointAt evaluates the edge at t in [0, 1].
func (e *Edge) PointAt(t float64) Point {
	p := e.Points
	switch e.Type {
	case EdgeQuadratic:
		return p[0].Lerp(p[1], t).Lerp(p[1].Lerp(p[2], t), t)
	case EdgeCubic:
		p12 := p[1].Lerp(p[2], t)
		return p[0].Lerp(p[1], t).Lerp(p12, t).Lerp(p12.Lerp(p[2].Lerp(p[3], t), t), t)
	default:
		return p[0].Lerp(p[1], t)
	}
}

// derivative returns dB/dt at t. It may be zero where a control point
// coincides with an end point.
func (e *Edge) derivative(t float64) Point {
	p := e.Points
	switch e.Type {
	case EdgeQuadratic:
		return p[1].Sub(p[0]).Lerp(p[2].Sub(p[1]), t).Mul(2)
	case EdgeCubic:
		d01, d12, d23 := p[1].Sub(p[0]), p[2].Sub(p[1]), p[3].Sub(p[2])
		return d01.Lerp(d12, t).Lerp(d12.Lerp(d23, t), t).Mul(3)
	default:
		return p[1].Sub(p[0])
	}
}

// Direction returns the tangent at t. At a degenerate end the chord
// toward the far end stands in for the zero derivative.
func (e *Edge) Direction(t float64) Point {
	d := e.derivative(t)
	if d.X != 0 || d.Y != 0 || e.Type == EdgeLinear {
		return d
	}
	if t <= 0.5 {
		return e.PointAt(min(t+0.5, 1)).Sub(e.PointAt(t))
	}
	return e.PointAt(t).Sub(e.PointAt(max(t-0.5, 0)))
}

// Bounds returns the exact bounding box of the edge.
func (e *Edge) Bounds() Rect {
	r := emptyRect().include(e.Start()).include(e.End())
	var buf [2]float64
	p := e.Points
	switch e.Type {
	case EdgeQuadratic:
		for _, t := range quadExtrema(buf[:0], p[0], p[1], p[2]) {
			r = r.include(e.PointAt(t))
		}
	case EdgeCubic:
		for _, t := range cubicExtrema(buf[:0], p[0].X, p[1].X, p[2].X, p[3].X) {
			r = r.include(e.PointAt(t))
		}
		for _, t := range cubicExtrema(buf[:0], p[0].Y, p[1].Y, p[2].Y, p[3].Y) {
			r = r.include(e.PointAt(t))
		}
	}
	return r
}

// quadExtrema appends the parameters in (0, 1) where a quadratic has a
// horizontal or vertical tangent.
func quadExtrema(dst []float64, p0, p1, p2 Point) []float64 {
	for _, v := range [2][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := v[0] - 2*v[1] + v[2]
		if den == 0 {
			continue
		}
		if t := (v[0] - v[1]) / den; t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}
	return dst
}

// cubicExtrema appends the parameters in (0, 1) where one coordinate of a
// cubic has zero derivative.
func cubicExtrema(dst []float64, v0, v1, v2, v3 float64) []float64 {
	var roots [2]float64
	a := -v0 + 3*v1 - 3*v2 + v3
	b := 2 * (v0 - 2*v1 + v2)
	c := v1 - v0
	for _, t := range solveQuadratic(roots[:0], a, b, c) {
		if t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}
	return dst
}

// Split divides the edge at t into two edges of the same type and color.
func (e *Edge) Split(t float64) (Edge, Edge) {
	p := e.Points
	a, b := Edge{Type: e.Type, Color: e.Color}, Edge{Type: e.Type, Color: e.Color}
	switch e.Type {
	case EdgeQuadratic:
		m01, m12 := p[0].Lerp(p[1], t), p[1].Lerp(p[2], t)
		mid := m01.Lerp(m12, t)
		a.Points = [4]Point{p[0], m01, mid}
		b.Points = [4]Point{mid, m12, p[2]}
	case EdgeCubic:
		m01, m12, m23 := p[0].Lerp(p[1], t), p[1].Lerp(p[2], t), p[2].Lerp(p[3], t)
		m012, m123 := m01.Lerp(m12, t), m12.Lerp(m23, t)
		mid := m012.Lerp(m123, t)
		a.Points = [4]Point{p[0], m01, m012, mid}
		b.Points = [4]Point{mid, m123, m23, p[3]}
	default:
		mid := p[0].Lerp(p[1], t)
		a.Points = [4]Point{p[0], mid}
		b.Points = [4]Point{mid, p[1]}
	}
	return a, b
}

// SplitThirds divides the edge into three parts of equal parameter span.
func (e *Edge) SplitThirds() [3]Edge {
	first, rest := e.Split(1.0 / 3)
	second, third := rest.Split(0.5)
	return [3]Edge{first, second, third}
}

// flatten appends points along the edge, excluding the start point.
func (e *Edge) flatten(dst []Point) []Point {
	steps := 1
	switch e.Type {
	case EdgeQuadratic:
		steps = 8
	case EdgeCubic:
		steps = 12
	}
	for i := 1; i < steps; i++ {
		dst = append(dst, e.PointAt(float64(i)/float64(steps)))
	}
	return append(dst, e.End())
}

// signedDistance returns the distance from p to the edge and the curve
// parameter of the closest point.
func (e *Edge) signedDistance(p Point) (SignedDistance, float64) {
	best, bestT := farDistance, 0.0
	try := func(t float64) {
		if t < 0 || t > 1 {
			return
		}
		diff := p.Sub(e.PointAt(t))
		dir := e.Direction(t)
		d := diff.Length()
		if dir.Cross(diff) < 0 {
			d = -d
		}
		sd := SignedDistance{Distance: d}
		if t == 0 || t == 1 {
			sd.Dot = math.Abs(dir.Normalized().Dot(diff.Normalized()))
		}
		if sd.closerThan(best) {
			best, bestT = sd, t
		}
	}

	try(0)
	try(1)

	pts := e.Points
	switch e.Type {
	case EdgeLinear:
		ab := pts[1].Sub(pts[0])
		if l2 := ab.Dot(ab); l2 > 0 {
			try(p.Sub(pts[0]).Dot(ab) / l2)
		}
	case EdgeQuadratic:
		// d/dt |B(t)-p|^2 = 0 is a cubic in t.
		qa := pts[0].Sub(p)
		ab := pts[1].Sub(pts[0])
		br := pts[2].Sub(pts[1]).Sub(ab)
		var buf [3]float64
		for _, t := range solveCubic(buf[:0], br.Dot(br), 3*ab.Dot(br), 2*ab.Dot(ab)+qa.Dot(br), qa.Dot(ab)) {
			try(t)
		}
	case EdgeCubic:
		const starts = 8
		for i := 0; i <= starts; i++ {
			try(e.refineCubic(p, float64(i)/starts))
		}
	}
	return best, bestT
}

// refineCubic runs Newton iterations on d/dt |B(t)-p|^2 from t.
func (e *Edge) refineCubic(p Point, t float64) float64 {
	const (
		iterations = 8
		eps        = 1e-12
	)
	pts := e.Points
	for range iterations {
		q := e.PointAt(t).Sub(p)
		d1 := e.derivative(t)
		d2 := pts[2].Sub(pts[1].Mul(2)).Add(pts[0]).Lerp(pts[3].Sub(pts[2].Mul(2)).Add(pts[1]), t).Mul(6)
		den := d1.Dot(d1) + q.Dot(d2)
		if math.Abs(den) < eps {
			break
		}
		step := q.Dot(d1) / den
		t = min(max(t-step, 0), 1)
		if math.Abs(step) < eps {
			break
		}
	}
	return t
}

// pseudoDistance replaces sd with the distance to the edge's tangent line
// when the closest point is an end point and p lies beyond it. This keeps
// channel distances straight past corners.
func (e *Edge) pseudoDistance(sd SignedDistance, p Point, t float64) SignedDistance {
	var origin, dir Point
	switch {
	case t <= 0:
		origin, dir = e.Start(), e.Direction(0).Normalized()
		if p.Sub(origin).Dot(dir) >= 0 {
			return sd
		}
	case t >= 1:
		origin, dir = e.End(), e.Direction(1).Normalized()
		if p.Sub(origin).Dot(dir) <= 0 {
			return sd
		}
	default:
		return sd
	}
	if pd := dir.Cross(p.Sub(origin)); math.Abs(pd) <= math.Abs(sd.Distance) {
		return SignedDistance{Distance: pd}
	}
	return sd
}

// solveQuadratic appends the real roots of a*x^2 + b*x + c to dst.
func solveQuadratic(dst []float64, a, b, c float64) []float64 {
	if math.Abs(a) < 1e-14 {
		if math.Abs(b) < 1e-14 {
			return dst
		}
		return append(dst, -c/b)
	}
	disc := b*b - 4*a*c
	switch {
	case disc > 0:
		s := math.Sqrt(disc)
		return append(dst, (-b+s)/(2*a), (-b-s)/(2*a))
	case disc == 0:
		return append(dst, -b/(2*a))
	default:
		return dst
	}
}

// solveCubic appends the real roots of a*x^3 + b*x^2 + c*x + d to dst.
func solveCubic(dst []float64, a, b, c, d float64) []float64 {
	if math.Abs(a) < 1e-14 {
		return solveQuadratic(dst, b, c, d)
	}
	b, c, d = b/a, c/a, d/a

	// Depressed form x = u - b/3: u^3 + p*u + q = 0.
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	shift := -b / 3
	disc := q*q/4 + p*p*p/27

	switch {
	case disc > 1e-14:
		s := math.Sqrt(disc)
		return append(dst, math.Cbrt(-q/2+s)+math.Cbrt(-q/2-s)+shift)
	case disc < -1e-14:
		m := 2 * math.Sqrt(-p/3)
		phi := math.Acos(min(max(3*q/(p*m), -1), 1))
		for k := range 3 {
			dst = append(dst, m*math.Cos((phi-2*math.Pi*float64(k))/3)+shift)
		}
		return dst
	default:
		u := math.Cbrt(-q / 2)
		return append(dst, 2*u+shift, -u+shift)
	}
}
