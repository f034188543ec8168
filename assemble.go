package msdffont

import "fmt"

// Bounds is an axis-aligned box with y growing upward.
type Bounds struct {
	Left, Bottom, Right, Top float64
}

// Width returns Right - Left.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns Top - Bottom.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// GeneratedGlyph is one glyph as emitted by an atlas generator.
type GeneratedGlyph struct {
	Codepoint rune

	// Atlas is the glyph's box in bitmap pixels, measured from the bottom
	// row upward.
	Atlas Bounds

	// Plane is the glyph's quad relative to the pen position on the
	// baseline, in font units.
	Plane Bounds

	Advance float64
}

// GeneratedAtlas is the finished output of an atlas generator: glyph
// geometry, the kerning table and the packed RGBA8 bitmap.
type GeneratedAtlas struct {
	Glyphs  []GeneratedGlyph
	Kerning map[KernKey]float64
	Bitmap  []byte
	Width   uint32
	Height  uint32
}

// Assemble converts generator output into a FontData. Glyphs keep the
// generator's order; kerning values and advances are narrowed to float32.
func Assemble(a *GeneratedAtlas) (*FontData, error) {
	if want := uint64(a.Width) * uint64(a.Height) * BytesPerPixel; uint64(len(a.Bitmap)) != want {
		return nil, &BitmapSizeError{Width: a.Width, Height: a.Height, Len: len(a.Bitmap)}
	}

	d := &FontData{
		GlyphIndex:   make(map[rune]uint32, len(a.Glyphs)),
		Glyphs:       make([]GlyphRecord, 0, len(a.Glyphs)),
		Bitmap:       a.Bitmap,
		BitmapWidth:  a.Width,
		BitmapHeight: a.Height,
		KernPairs:    make(map[KernKey]float32, len(a.Kerning)),
	}

	w, h := float64(a.Width), float64(a.Height)
	for i := range a.Glyphs {
		g := &a.Glyphs[i]
		if _, dup := d.GlyphIndex[g.Codepoint]; dup {
			return nil, fmt.Errorf("%w: %U", ErrDuplicateGlyph, g.Codepoint)
		}

		atlasL, atlasR := normalize(g.Atlas.Left, w), normalize(g.Atlas.Right, w)
		atlasB, atlasT := normalize(g.Atlas.Bottom, h), normalize(g.Atlas.Top, h)

		d.GlyphIndex[g.Codepoint] = uint32(len(d.Glyphs)) //nolint:gosec // bounded by len(a.Glyphs)
		d.Glyphs = append(d.Glyphs, GlyphRecord{
			Codepoint: g.Codepoint,
			Transform: NewTransform(
				float32(atlasR-atlasL), float32(atlasT-atlasB),
				float32(atlasL), float32(atlasB),
				float32(g.Plane.Width()), float32(g.Plane.Height()),
				float32(g.Plane.Left), float32(g.Plane.Bottom),
			),
			Advance: float32(g.Advance),
		})
	}

	for k, v := range a.Kerning {
		d.KernPairs[k] = float32(v)
	}

	Logger().Debug("assembled font data",
		"glyphs", len(d.Glyphs), "kernPairs", len(d.KernPairs),
		"width", a.Width, "height", a.Height)
	return d, nil
}

// normalize maps a pixel coordinate to [0, 1]. A zero dimension yields 0.
func normalize(v, size float64) float64 {
	if size == 0 {
		return 0
	}
	return v / size
}
