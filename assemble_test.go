package msdffont

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestAssembleFormulas(t *testing.T) {
	a := &GeneratedAtlas{
		Glyphs: []GeneratedGlyph{{
			Codepoint: 'A',
			Atlas:     Bounds{Left: 10, Bottom: 5, Right: 30, Top: 25},
			Plane:     Bounds{Left: -0.1, Bottom: -0.2, Right: 0.5, Top: 0.7},
			Advance:   0.625,
		}},
		Bitmap: make([]byte, 100*50*4),
		Width:  100,
		Height: 50,
	}

	d, err := Assemble(a)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	g := d.Glyphs[d.GlyphIndex['A']]

	checks := []struct {
		name      string
		got, want float32
	}{
		{"texScaleX", g.Transform[SlotTexScaleX], 0.2},
		{"texScaleY", g.Transform[SlotTexScaleY], 0.4},
		{"texOffsetX", g.Transform[SlotTexOffsetX], 0.1},
		{"texOffsetY", g.Transform[SlotTexOffsetY], 0.1},
		{"one", g.Transform[SlotOne], 1},
		{"quadScaleX", g.Transform[SlotQuadScaleX], 0.6},
		{"quadScaleY", g.Transform[SlotQuadScaleY], 0.9},
		{"bearingX", g.Transform[SlotBearingX], -0.1},
		{"bearingY", g.Transform[SlotBearingY], -0.2},
		{"advance", g.Advance, 0.625},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestAssembleKeepsGenerationOrder(t *testing.T) {
	a := &GeneratedAtlas{
		Glyphs: []GeneratedGlyph{
			{Codepoint: 'c', Advance: 3},
			{Codepoint: 'a', Advance: 1},
			{Codepoint: 'b', Advance: 2},
		},
	}
	d, err := Assemble(a)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	for i, cp := range []rune{'c', 'a', 'b'} {
		if d.Glyphs[i].Codepoint != cp {
			t.Errorf("Glyphs[%d] = %q, want %q", i, d.Glyphs[i].Codepoint, cp)
		}
		if d.GlyphIndex[cp] != uint32(i) {
			t.Errorf("GlyphIndex[%q] = %d, want %d", cp, d.GlyphIndex[cp], i)
		}
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestAssembleZeroBitmap(t *testing.T) {
	a := &GeneratedAtlas{
		Glyphs: []GeneratedGlyph{{Codepoint: ' ', Advance: 0.25}},
	}
	d, err := Assemble(a)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	for i, v := range d.Glyphs[0].Transform {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Errorf("transform[%d] = %v, want finite", i, v)
		}
	}
}

func TestAssembleKerning(t *testing.T) {
	a := &GeneratedAtlas{
		Kerning: map[KernKey]float64{
			{Left: 'A', Right: 'V'}: -0.0625,
			{Left: 'T', Right: 'o'}: -0.1,
		},
	}
	d, err := Assemble(a)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if len(d.KernPairs) != 2 {
		t.Fatalf("len(KernPairs) = %d, want 2", len(d.KernPairs))
	}
	if got := d.KernPairs[KernKey{'A', 'V'}]; got != -0.0625 {
		t.Errorf("KernPairs[A,V] = %v, want -0.0625", got)
	}
	if got := d.KernPairs[KernKey{'T', 'o'}]; got != float32(-0.1) {
		t.Errorf("KernPairs[T,o] = %v, want %v", got, float32(-0.1))
	}
}

func TestAssembleErrors(t *testing.T) {
	t.Run("duplicate codepoint", func(t *testing.T) {
		_, err := Assemble(&GeneratedAtlas{
			Glyphs: []GeneratedGlyph{{Codepoint: 'a'}, {Codepoint: 'a'}},
		})
		if !errors.Is(err, ErrDuplicateGlyph) {
			t.Errorf("Assemble() error = %v, want ErrDuplicateGlyph", err)
		}
	})

	t.Run("bitmap size", func(t *testing.T) {
		_, err := Assemble(&GeneratedAtlas{Bitmap: make([]byte, 10), Width: 2, Height: 2})
		var e *BitmapSizeError
		if !errors.As(err, &e) {
			t.Fatalf("Assemble() error = %v, want *BitmapSizeError", err)
		}
		if e.Len != 10 || e.Width != 2 || e.Height != 2 {
			t.Errorf("BitmapSizeError = %+v", e)
		}
	})
}
