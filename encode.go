package msdffont

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/msdffont/internal/wire"
)

// Section sizes of the asset layout, in bytes.
const (
	sizeU32        = 4
	indexEntrySize = 4 + 4                        // codepoint i32, index u32
	recordSize     = TransformSize*4 + 4          // transform 16 x f32, advance f32
	kernEntrySize  = 4 + 4 + 4                    // left i32, right i32, kerning f32
	fixedSize      = sizeU32 + 3*sizeU32 + sizeU32 // glyph count, bitmap length/width/height, kern count
)

// EncodedSize returns the exact byte length Encode will produce for d.
func EncodedSize(d *FontData) int {
	return fixedSize +
		len(d.GlyphIndex)*indexEntrySize +
		len(d.Glyphs)*recordSize +
		len(d.Bitmap) +
		len(d.KernPairs)*kernEntrySize
}

// Encode serializes d into a single buffer, allocated once.
//
// Layout (native byte order, no padding):
//
//	glyphCount        u32
//	glyphCount   x    {codepoint i32, index u32}     ascending codepoint
//	glyphCount   x    {transform 16 x f32, advance f32} in Glyphs order
//	bitmapByteLength  u32
//	bitmapWidth       u32
//	bitmapHeight      u32
//	bitmap            bitmapByteLength bytes
//	kernPairCount     u32
//	kernPairCount x   {left i32, right i32, kerning f32} ascending (left, right)
func Encode(d *FontData) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(d.Bitmap)) > math.MaxUint32 || uint64(len(d.Glyphs)) > math.MaxUint32 ||
		uint64(len(d.KernPairs)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}

	size := EncodedSize(d)
	w := wire.NewWriter(size)

	w.Uint32(uint32(len(d.Glyphs))) //nolint:gosec // checked above
	for _, cp := range d.sortedCodepoints() {
		w.Int32(cp)
		w.Uint32(d.GlyphIndex[cp])
	}

	for i := range d.Glyphs {
		g := &d.Glyphs[i]
		for _, v := range g.Transform {
			w.Float32(v)
		}
		w.Float32(g.Advance)
	}

	w.Uint32(uint32(len(d.Bitmap))) //nolint:gosec // checked above
	w.Uint32(d.BitmapWidth)
	w.Uint32(d.BitmapHeight)
	w.Write(d.Bitmap)

	pairs := d.sortedKernPairs()
	w.Uint32(uint32(len(pairs))) //nolint:gosec // checked above
	for _, p := range pairs {
		w.Int32(p.Left)
		w.Int32(p.Right)
		w.Float32(p.Kerning)
	}

	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("msdffont: encode: %w", err)
	}
	if w.Offset() != size {
		return nil, fmt.Errorf("msdffont: encode: wrote %d of %d bytes", w.Offset(), size)
	}

	Logger().Debug("encoded font asset",
		"bytes", size, "glyphs", len(d.Glyphs), "kernPairs", len(pairs),
		"bitmapBytes", len(d.Bitmap))
	return w.Bytes(), nil
}

// WriteFile encodes d and stores it at path.
//
// The asset is built entirely in memory, written to a temporary file in the
// destination directory and renamed over path. On failure the temporary
// file is removed, so path either keeps its previous contents or does not
// exist.
func WriteFile(path string, d *FontData) error {
	data, err := Encode(d)
	if err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &IOError{Op: op, Path: path, Err: err}
	}

	n, err := tmp.Write(data)
	if err != nil {
		return fail("write", err)
	}
	if n != len(data) {
		return fail("write", fmt.Errorf("short write: %d of %d bytes", n, len(data)))
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "rename", Path: path, Err: err}
	}

	Logger().Info("font asset written", "path", path, "bytes", len(data))
	return nil
}
