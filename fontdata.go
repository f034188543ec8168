package msdffont

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// FontData is the aggregate shared by the builder, the encoder, the decoder
// and Font.
//
// A FontData has a single owner. It is assembled once, then handed to
// Encode/WriteFile or to NewFont; the receiver must not be mutated
// afterwards.
type FontData struct {
	// GlyphIndex maps a codepoint to its position in Glyphs.
	GlyphIndex map[rune]uint32

	// Glyphs holds the records, addressed by GlyphIndex.
	Glyphs []GlyphRecord

	// Bitmap is RGBA8, row-major, top-down.
	Bitmap []byte

	BitmapWidth  uint32
	BitmapHeight uint32

	// KernPairs holds the non-zero pair corrections. A missing pair means
	// no correction.
	KernPairs map[KernKey]float32
}

// Validate checks the structural invariants the encoder relies on.
func (d *FontData) Validate() error {
	if len(d.Glyphs) != len(d.GlyphIndex) {
		return fmt.Errorf("%w: %d index entries, %d records", ErrInconsistentIndex, len(d.GlyphIndex), len(d.Glyphs))
	}

	seen := make([]bool, len(d.Glyphs))
	for cp, idx := range d.GlyphIndex {
		if int(idx) >= len(d.Glyphs) {
			return fmt.Errorf("%w: codepoint %U points to record %d of %d", ErrInconsistentIndex, cp, idx, len(d.Glyphs))
		}
		if seen[idx] {
			return fmt.Errorf("%w: record %d is indexed twice", ErrInconsistentIndex, idx)
		}
		seen[idx] = true
		if d.Glyphs[idx].Codepoint != cp {
			return fmt.Errorf("%w: codepoint %U points to record for %U", ErrInconsistentIndex, cp, d.Glyphs[idx].Codepoint)
		}
	}

	if want := uint64(d.BitmapWidth) * uint64(d.BitmapHeight) * BytesPerPixel; uint64(len(d.Bitmap)) != want {
		return &BitmapSizeError{Width: d.BitmapWidth, Height: d.BitmapHeight, Len: len(d.Bitmap)}
	}
	return nil
}

// sortedCodepoints returns the GlyphIndex keys in ascending order.
func (d *FontData) sortedCodepoints() []rune {
	return slices.Sorted(maps.Keys(d.GlyphIndex))
}

// sortedKernPairs returns KernPairs ordered by (left, right).
func (d *FontData) sortedKernPairs() []KernPair {
	pairs := make([]KernPair, 0, len(d.KernPairs))
	for k, v := range d.KernPairs {
		pairs = append(pairs, KernPair{KernKey: k, Kerning: v})
	}
	slices.SortFunc(pairs, func(a, b KernPair) int {
		if c := cmp.Compare(a.Left, b.Left); c != 0 {
			return c
		}
		return cmp.Compare(a.Right, b.Right)
	})
	return pairs
}
