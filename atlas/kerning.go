package atlas

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/msdffont"
	"github.com/gogpu/msdffont/fontload"
)

// Kerner extracts pair adjustments for a glyph set. Values are in ems
// scaled by the configured font scale; zero pairs are omitted.
type Kerner interface {
	Kerning(runes []rune) (map[msdffont.KernKey]float64, error)
}

// NewKerner returns the Kerner for mode, reading from face.
func NewKerner(mode KerningMode, face *fontload.Face, scale float64) (Kerner, error) {
	switch mode {
	case KerningShaping:
		return newShapingKerner(face.Data(), scale)
	case KerningTable:
		return &tableKerner{face: face, scale: scale}, nil
	case KerningNone:
		return noKerner{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKerningMode, mode)
	}
}

type noKerner struct{}

func (noKerner) Kerning([]rune) (map[msdffont.KernKey]float64, error) {
	return map[msdffont.KernKey]float64{}, nil
}

// tableKerner asks the sfnt parser for every ordered pair.
type tableKerner struct {
	face  *fontload.Face
	scale float64
}

func (k *tableKerner) Kerning(runes []rune) (map[msdffont.KernKey]float64, error) {
	out := make(map[msdffont.KernKey]float64)
	for _, l := range runes {
		for _, r := range runes {
			v, err := k.face.Kern(l, r)
			if errors.Is(err, fontload.ErrGlyphNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if v != 0 {
				out[msdffont.KernKey{Left: l, Right: r}] = v * k.scale
			}
		}
	}
	return out, nil
}

// shapingKerner shapes each glyph alone and each ordered pair, and records
// how much wider the pair is than its two glyphs set apart. Legacy kern
// tables split the adjustment across both advances, so only the total is
// meaningful.
type shapingKerner struct {
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	upem   float64
	scale  float64
}

func newShapingKerner(data []byte, scale float64) (*shapingKerner, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("atlas: failed to parse font for shaping: %w", err)
	}
	upem := float64(face.Upem())
	if upem == 0 {
		return nil, fmt.Errorf("atlas: font reports zero units per em")
	}
	return &shapingKerner{face: face, upem: upem, scale: scale}, nil
}

func (k *shapingKerner) shape(text []rune) []shaping.Glyph {
	out := k.shaper.Shape(shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      k.face,
		// One pixel per font unit: advances come back in 26.6 font units.
		Size:     fixed.Int26_6(k.upem * 64),
		Script:   language.LookupScript(text[0]),
		Language: language.NewLanguage("en"),
	})
	return out.Glyphs
}

func (k *shapingKerner) Kerning(runes []rune) (map[msdffont.KernKey]float64, error) {
	solo := make(map[rune]fixed.Int26_6, len(runes))
	for _, r := range runes {
		if g := k.shape([]rune{r}); len(g) == 1 {
			solo[r] = g[0].Advance
		}
	}

	out := make(map[msdffont.KernKey]float64)
	pair := make([]rune, 2)
	for _, l := range runes {
		adv, ok := solo[l]
		if !ok {
			continue
		}
		for _, r := range runes {
			radv, ok := solo[r]
			if !ok {
				continue
			}
			pair[0], pair[1] = l, r
			g := k.shape(pair)
			if len(g) != 2 {
				// Ligature or decomposition: not a simple pair.
				continue
			}
			if d := g[0].Advance + g[1].Advance - adv - radv; d != 0 {
				out[msdffont.KernKey{Left: l, Right: r}] = float64(d) / 64 / k.upem * k.scale
			}
		}
	}
	msdffont.Logger().Debug("shaped kerning pairs", "glyphs", len(solo), "pairs", len(out))
	return out, nil
}
