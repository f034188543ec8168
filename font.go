package msdffont

import (
	"maps"
	"slices"
)

// Font answers per-glyph and per-pair queries over a decoded asset.
//
// A Font is immutable after construction and safe for concurrent use.
type Font struct {
	data *FontData
}

// NewFont wraps d, which must not be nil. The Font takes ownership of d;
// the caller must not mutate it afterwards.
func NewFont(d *FontData) *Font {
	return &Font{data: d}
}

// Parse decodes an asset held in memory.
func Parse(data []byte) (*Font, error) {
	d, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return NewFont(d), nil
}

// Load reads and decodes the asset at path.
func Load(path string) (*Font, error) {
	d, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	Logger().Debug("font asset loaded", "path", path, "glyphs", len(d.Glyphs))
	return NewFont(d), nil
}

// GlyphRecord returns the record for cp. An index that points outside the
// record table is reported as not found.
func (f *Font) GlyphRecord(cp rune) (GlyphRecord, bool) {
	idx, ok := f.data.GlyphIndex[cp]
	if !ok || int(idx) >= len(f.data.Glyphs) {
		return GlyphRecord{}, false
	}
	return f.data.Glyphs[idx], true
}

// HasGlyph reports whether cp resolves to a record.
func (f *Font) HasGlyph(cp rune) bool {
	_, ok := f.GlyphRecord(cp)
	return ok
}

// Bitmap returns the RGBA8 atlas and its dimensions. The slice is shared
// and must not be modified.
func (f *Font) Bitmap() (pixels []byte, width, height uint32) {
	return f.data.Bitmap, f.data.BitmapWidth, f.data.BitmapHeight
}

// Kerning returns the horizontal distance from left's pen position to
// right's: left's advance plus the pair correction, if any. It reports
// false when left has no glyph; right is not required to exist.
func (f *Font) Kerning(left, right rune) (float32, bool) {
	g, ok := f.GlyphRecord(left)
	if !ok {
		return 0, false
	}
	return g.Advance + f.data.KernPairs[KernKey{Left: left, Right: right}], true
}

// GlyphCount returns the number of glyph records.
func (f *Font) GlyphCount() int { return len(f.data.Glyphs) }

// KernPairCount returns the number of stored pair corrections.
func (f *Font) KernPairCount() int { return len(f.data.KernPairs) }

// Codepoints returns the indexed codepoints in ascending order.
func (f *Font) Codepoints() []rune {
	return slices.Sorted(maps.Keys(f.data.GlyphIndex))
}
