package msdffont

import (
	"os"

	"github.com/gogpu/msdffont/internal/wire"
)

// decoder wraps a wire.Reader and turns overruns into CorruptDataError.
type decoder struct {
	r *wire.Reader
}

func (d *decoder) corrupt(field string, err error) error {
	return &CorruptDataError{Field: field, Offset: d.r.Offset(), Err: err}
}

func (d *decoder) uint32(field string) (uint32, error) {
	off := d.r.Offset()
	v, err := d.r.Uint32()
	if err != nil {
		return 0, &CorruptDataError{Field: field, Offset: off, Err: err}
	}
	return v, nil
}

// reserve fails unless count entries of size bytes remain, so a corrupt
// count can never drive an oversized allocation.
func (d *decoder) reserve(field string, count uint32, size int) error {
	need := uint64(count) * uint64(size)
	if need > uint64(d.r.Remaining()) {
		return d.corrupt(field, &wire.OverrunError{
			Offset:    d.r.Offset(),
			Need:      int(min(need, uint64(^uint(0)>>1))), //nolint:gosec // clamped to MaxInt
			Remaining: d.r.Remaining(),
		})
	}
	return nil
}

// Decode parses an asset produced by Encode.
//
// Fields are read in the encoder's order, each advancing the cursor by its
// width. A buffer that ends early yields a *CorruptDataError. Table values
// are trusted: duplicate codepoints or kern pairs resolve last-write-wins
// and kern pairs may name glyphs that do not exist.
func Decode(data []byte) (*FontData, error) {
	d := &decoder{r: wire.NewReader(data)}

	glyphCount, err := d.uint32("glyph count")
	if err != nil {
		return nil, err
	}

	if err := d.reserve("glyph index table", glyphCount, indexEntrySize); err != nil {
		return nil, err
	}
	index := make(map[rune]uint32, glyphCount)
	order := make([]rune, 0, glyphCount)
	for i := uint32(0); i < glyphCount; i++ {
		raw, err := d.r.Next(indexEntrySize)
		if err != nil {
			return nil, d.corrupt("glyph index entry", err)
		}
		// raw holds exactly one entry, so its reads cannot overrun.
		er := wire.NewReader(raw)
		cp, _ := er.Int32()
		idx, _ := er.Uint32()
		index[cp] = idx
		order = append(order, cp)
	}

	if err := d.reserve("glyph record table", glyphCount, recordSize); err != nil {
		return nil, err
	}
	glyphs := make([]GlyphRecord, glyphCount)
	for i := range glyphs {
		raw, err := d.r.Next(recordSize)
		if err != nil {
			return nil, d.corrupt("glyph record", err)
		}
		// raw holds exactly one record.
		rr := wire.NewReader(raw)
		for j := range glyphs[i].Transform {
			glyphs[i].Transform[j], _ = rr.Float32()
		}
		glyphs[i].Advance, _ = rr.Float32()
	}
	// Records carry no codepoint on disk; recover it from the index table
	// in file order so duplicates resolve the same way as the map.
	for _, cp := range order {
		if idx := index[cp]; int(idx) < len(glyphs) {
			glyphs[idx].Codepoint = cp
		}
	}

	bitmapLen, err := d.uint32("bitmap byte length")
	if err != nil {
		return nil, err
	}
	width, err := d.uint32("bitmap width")
	if err != nil {
		return nil, err
	}
	height, err := d.uint32("bitmap height")
	if err != nil {
		return nil, err
	}
	if want := uint64(width) * uint64(height) * BytesPerPixel; want != uint64(bitmapLen) {
		Logger().Debug("bitmap length disagrees with dimensions; using declared length",
			"declared", bitmapLen, "derived", want)
	}
	if err := d.reserve("bitmap", bitmapLen, 1); err != nil {
		return nil, err
	}
	pixels, err := d.r.Next(int(bitmapLen))
	if err != nil {
		return nil, d.corrupt("bitmap", err)
	}
	bitmap := make([]byte, len(pixels))
	copy(bitmap, pixels)

	kernCount, err := d.uint32("kern pair count")
	if err != nil {
		return nil, err
	}
	if err := d.reserve("kern pair table", kernCount, kernEntrySize); err != nil {
		return nil, err
	}
	kern := make(map[KernKey]float32, kernCount)
	for i := uint32(0); i < kernCount; i++ {
		raw, err := d.r.Next(kernEntrySize)
		if err != nil {
			return nil, d.corrupt("kern pair", err)
		}
		// raw holds exactly one pair.
		kr := wire.NewReader(raw)
		left, _ := kr.Int32()
		right, _ := kr.Int32()
		v, _ := kr.Float32()
		kern[KernKey{Left: left, Right: right}] = v
	}

	if rest := d.r.Remaining(); rest > 0 {
		Logger().Debug("ignoring trailing bytes after kern table", "bytes", rest)
	}

	Logger().Debug("decoded font asset",
		"bytes", len(data), "glyphs", glyphCount, "kernPairs", kernCount,
		"width", width, "height", height)

	return &FontData{
		GlyphIndex:   index,
		Glyphs:       glyphs,
		Bitmap:       bitmap,
		BitmapWidth:  width,
		BitmapHeight: height,
		KernPairs:    kern,
	}, nil
}

// ReadFile reads and decodes the asset at path.
func ReadFile(path string) (*FontData, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- asset path is provided by the caller
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return Decode(data)
}
