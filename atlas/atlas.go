package atlas

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/msdffont"
	"github.com/gogpu/msdffont/fontload"
	"github.com/gogpu/msdffont/internal/parallel"
)

// Generate renders every charset glyph the face has into one square MTSDF
// atlas and extracts kerning for them. Glyphs are in ascending codepoint
// order. Metrics are in ems scaled by cfg.FontScale.
func Generate(face *fontload.Face, cfg Config) (*msdffont.GeneratedAtlas, error) {
	if face == nil {
		return nil, errors.New("atlas: nil face")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := msdffont.Logger()

	pxPerUnit := cfg.MinimumScale / cfg.FontScale
	margin := cfg.PixelRange / pxPerUnit / 2

	var (
		runes  []rune
		glyphs []msdffont.GeneratedGlyph
		jobs   []glyphJob
		boxes  []Box
	)

	// Face is not safe for concurrent use: outlines are read serially.
	for _, r := range cfg.Charset.Runes() {
		if !face.HasGlyph(r) {
			log.Debug("skipping codepoint missing from font", "codepoint", fmt.Sprintf("%U", r))
			continue
		}
		o, err := face.Outline(r)
		if err != nil {
			return nil, fmt.Errorf("atlas: %w", err)
		}

		shape := NewShape(o, cfg.FontScale)
		job := glyphJob{shape: shape}
		if !shape.IsEmpty() {
			shape.ColorEdges(cfg.AngleThreshold)
			bounds := shape.Bounds.Expand(margin)
			job.origin = Point{bounds.MinX, bounds.MinY}
			job.box.W = int(math.Ceil(bounds.Width() * pxPerUnit))
			job.box.H = int(math.Ceil(bounds.Height() * pxPerUnit))
		}

		runes = append(runes, r)
		glyphs = append(glyphs, msdffont.GeneratedGlyph{
			Codepoint: r,
			Advance:   o.Advance * cfg.FontScale,
		})
		jobs = append(jobs, job)
		boxes = append(boxes, job.box)
	}

	side, err := PackSquare(boxes, cfg.Spacing, MaxAtlasSize)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		b := boxes[i]
		jobs[i].box = b
		if b.Empty() {
			continue
		}
		l, bot := jobs[i].origin.X, jobs[i].origin.Y
		glyphs[i].Plane = msdffont.Bounds{
			Left:   l,
			Bottom: bot,
			Right:  l + float64(b.W)/pxPerUnit,
			Top:    bot + float64(b.H)/pxPerUnit,
		}
		glyphs[i].Atlas = msdffont.Bounds{
			Left:   float64(b.X),
			Bottom: float64(side - b.Y - b.H),
			Right:  float64(b.X + b.W),
			Top:    float64(side - b.Y),
		}
	}

	r := &renderer{
		bitmap:     make([]byte, side*side*msdffont.BytesPerPixel),
		side:       side,
		pxPerUnit:  pxPerUnit,
		pixelRange: cfg.PixelRange,
	}
	pool := parallel.NewPool(cfg.Threads)
	r.renderAll(jobs, pool)
	pool.Close()

	kerner, err := NewKerner(cfg.Kerning, face, cfg.FontScale)
	if err != nil {
		return nil, err
	}
	kerning, err := kerner.Kerning(runes)
	if err != nil {
		return nil, fmt.Errorf("atlas: kerning: %w", err)
	}

	log.Debug("generated atlas",
		"font", face.Name(), "glyphs", len(glyphs), "side", side,
		"kerning", cfg.Kerning.String(), "kernPairs", len(kerning))

	return &msdffont.GeneratedAtlas{
		Glyphs:  glyphs,
		Kerning: kerning,
		Bitmap:  r.bitmap,
		Width:   uint32(side), //nolint:gosec // side <= MaxAtlasSize
		Height:  uint32(side), //nolint:gosec // side <= MaxAtlasSize
	}, nil
}
