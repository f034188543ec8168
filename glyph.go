package msdffont

// TransformSize is the number of float32 slots in a glyph transform.
const TransformSize = 16

// BytesPerPixel is the atlas bitmap layout: four 8-bit channels.
const BytesPerPixel = 4

// Slot positions inside a Transform. The block is row-major 4x4:
//
//	row 0: texScaleX   0           0         0
//	row 1: 0           texScaleY   0         0
//	row 2: texOffsetX  texOffsetY  1         0
//	row 3: quadScaleX  quadScaleY  bearingX  bearingY
const (
	SlotTexScaleX  = 0
	SlotTexScaleY  = 5
	SlotTexOffsetX = 8
	SlotTexOffsetY = 9
	SlotOne        = 10
	SlotQuadScaleX = 12
	SlotQuadScaleY = 13
	SlotBearingX   = 14
	SlotBearingY   = 15
)

// Transform holds one glyph's texture-space and quad-space placement.
// Texture values are normalized to [0, 1] of the atlas; quad values are in
// font units.
type Transform [TransformSize]float32

// NewTransform builds a Transform from its four semantic pairs.
func NewTransform(texScaleX, texScaleY, texOffsetX, texOffsetY, quadScaleX, quadScaleY, bearingX, bearingY float32) Transform {
	var t Transform
	t[SlotTexScaleX] = texScaleX
	t[SlotTexScaleY] = texScaleY
	t[SlotTexOffsetX] = texOffsetX
	t[SlotTexOffsetY] = texOffsetY
	t[SlotOne] = 1
	t[SlotQuadScaleX] = quadScaleX
	t[SlotQuadScaleY] = quadScaleY
	t[SlotBearingX] = bearingX
	t[SlotBearingY] = bearingY
	return t
}

// TexScale returns the glyph quad's size in normalized atlas space.
func (t *Transform) TexScale() (x, y float32) { return t[SlotTexScaleX], t[SlotTexScaleY] }

// TexOffset returns the normalized atlas position of the glyph's
// bottom-left corner.
func (t *Transform) TexOffset() (x, y float32) { return t[SlotTexOffsetX], t[SlotTexOffsetY] }

// QuadScale returns the on-baseline quad size.
func (t *Transform) QuadScale() (x, y float32) { return t[SlotQuadScaleX], t[SlotQuadScaleY] }

// Bearing returns the quad's offset from the pen position.
func (t *Transform) Bearing() (x, y float32) { return t[SlotBearingX], t[SlotBearingY] }

// GlyphRecord is one glyph's placement data for rendering.
type GlyphRecord struct {
	Codepoint rune
	Transform Transform

	// Advance is the baseline horizontal advance, before any kerning.
	Advance float32
}

// KernKey identifies an ordered pair of glyphs.
type KernKey struct {
	Left, Right rune
}

// KernPair is one kerning correction, as stored in the asset.
type KernPair struct {
	KernKey
	Kerning float32
}
