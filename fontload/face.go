// Package fontload opens TrueType and OpenType font files and extracts the
// per-glyph data the atlas generator consumes: outlines, advances and
// pair kerning, all in em units with y pointing up.
package fontload

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/msdffont"
)

// ErrGlyphNotFound is returned when the font has no glyph for a rune.
var ErrGlyphNotFound = errors.New("fontload: glyph not found")

// Face is a parsed font file.
//
// Face is not safe for concurrent use: queries share one sfnt.Buffer.
type Face struct {
	data []byte
	font *sfnt.Font
	upem float64

	// ppem at which sfnt reports coordinates in font units.
	ppem fixed.Int26_6

	buf sfnt.Buffer
}

// Open reads and parses the font file at path. Any failure is reported as
// a *msdffont.FontOpenError.
func Open(path string) (*Face, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- font path is provided by the caller
	if err != nil {
		return nil, &msdffont.FontOpenError{Path: path, Err: err}
	}
	f, err := Parse(data)
	if err != nil {
		return nil, &msdffont.FontOpenError{Path: path, Err: err}
	}
	msdffont.Logger().Debug("font opened", "path", path, "name", f.Name(), "glyphs", f.font.NumGlyphs())
	return f, nil
}

// Parse parses an in-memory TrueType or OpenType font. The Face keeps a
// reference to data.
func Parse(data []byte) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontload: failed to parse font: %w", err)
	}
	upem := f.UnitsPerEm()
	if upem <= 0 {
		return nil, fmt.Errorf("fontload: invalid units per em %d", upem)
	}
	return &Face{
		data: data,
		font: f,
		upem: float64(upem),
		ppem: fixed.I(int(upem)),
	}, nil
}

// Name returns the font family name, or "" if the font has none.
func (f *Face) Name() string {
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// UnitsPerEm returns the font's design units per em.
func (f *Face) UnitsPerEm() int {
	return int(f.upem)
}

// Data returns the raw font file.
func (f *Face) Data() []byte {
	return f.data
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Face) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// glyphIndex maps r to its glyph. Index 0 is .notdef and means absent.
func (f *Face) glyphIndex(r rune) (sfnt.GlyphIndex, bool) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return idx, true
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Face) HasGlyph(r rune) bool {
	_, ok := f.glyphIndex(r)
	return ok
}

// Advance returns r's horizontal advance in em units.
func (f *Face) Advance(r rune) (float64, error) {
	idx, ok := f.glyphIndex(r)
	if !ok {
		return 0, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}
	return f.advance(idx)
}

func (f *Face) advance(idx sfnt.GlyphIndex) (float64, error) {
	adv, err := f.font.GlyphAdvance(&f.buf, idx, f.ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("fontload: glyph %d advance: %w", idx, err)
	}
	return f.toEm(adv), nil
}

// Outline returns r's outline in em units, y up.
func (f *Face) Outline(r rune) (*Outline, error) {
	idx, ok := f.glyphIndex(r)
	if !ok {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	segs, err := f.font.LoadGlyph(&f.buf, idx, f.ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("fontload: load glyph %U: %w", r, err)
	}

	out := &Outline{Segments: make([]Segment, 0, len(segs))}
	for _, seg := range segs {
		s := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = MoveTo
		case sfnt.SegmentOpLineTo:
			s.Op = LineTo
		case sfnt.SegmentOpQuadTo:
			s.Op = QuadTo
		case sfnt.SegmentOpCubeTo:
			s.Op = CubeTo
		default:
			return nil, fmt.Errorf("fontload: glyph %U: unknown segment op %d", r, seg.Op)
		}
		for j := range s.Op.PointCount() {
			s.Points[j] = f.toPoint(seg.Args[j])
		}
		out.Segments = append(out.Segments, s)
	}
	out.Bounds = boundsOf(out.Segments)

	if out.Advance, err = f.advance(idx); err != nil {
		return nil, err
	}
	return out, nil
}

// Kern returns the pair adjustment sfnt finds for l followed by r, in em
// units. Pairs without an entry and fonts without kerning data yield 0.
func (f *Face) Kern(l, r rune) (float64, error) {
	li, ok := f.glyphIndex(l)
	if !ok {
		return 0, fmt.Errorf("%w: %U", ErrGlyphNotFound, l)
	}
	ri, ok := f.glyphIndex(r)
	if !ok {
		return 0, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	k, err := f.font.Kern(&f.buf, li, ri, f.ppem, font.HintingNone)
	if errors.Is(err, sfnt.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("fontload: kern %U %U: %w", l, r, err)
	}
	return f.toEm(k), nil
}

// toEm converts a 26.6 value at ppem == unitsPerEm to em units.
func (f *Face) toEm(v fixed.Int26_6) float64 {
	return float64(v) / 64 / f.upem
}

// toPoint converts an sfnt point (y down) to em units, y up.
func (f *Face) toPoint(p fixed.Point26_6) Point {
	return Point{X: f.toEm(p.X), Y: -f.toEm(p.Y)}
}
