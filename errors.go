package msdffont

import (
	"errors"
	"fmt"
)

// Sentinel errors for the msdffont package.
var (
	// ErrCorruptData matches every *CorruptDataError via errors.Is.
	ErrCorruptData = errors.New("msdffont: corrupt font data")

	// ErrDuplicateGlyph is returned by Assemble when the generator emits the
	// same codepoint twice.
	ErrDuplicateGlyph = errors.New("msdffont: duplicate glyph codepoint")

	// ErrInconsistentIndex is returned by FontData.Validate when the glyph
	// index and the glyph records disagree.
	ErrInconsistentIndex = errors.New("msdffont: glyph index does not match glyph records")

	// ErrTooLarge is returned by Encode when a section does not fit the
	// format's 32-bit counts.
	ErrTooLarge = errors.New("msdffont: font data exceeds format limits")
)

// FontOpenError is returned when a font file cannot be read or parsed.
// In a batch compile it is reported and the remaining files are processed.
type FontOpenError struct {
	Path string
	Err  error
}

func (e *FontOpenError) Error() string {
	return "msdffont: unable to open font file " + e.Path + ": " + e.Err.Error()
}

func (e *FontOpenError) Unwrap() error { return e.Err }

// IOError is returned when a font asset cannot be created, written or read.
type IOError struct {
	Op   string // "create", "write", "chmod", "sync", "close", "rename", "read"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "msdffont: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// CorruptDataError is returned by Decode when the buffer ends before a
// field could be read in full. No partial Font is ever produced.
type CorruptDataError struct {
	Field  string // field being read, e.g. "glyph count"
	Offset int    // byte offset of the field
	Err    error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("msdffont: corrupt font data: truncated %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// Is reports ErrCorruptData as a match.
func (e *CorruptDataError) Is(target error) bool { return target == ErrCorruptData }

// BitmapSizeError is returned when a bitmap's length is not width*height*4.
type BitmapSizeError struct {
	Width, Height uint32
	Len           int
}

func (e *BitmapSizeError) Error() string {
	return fmt.Sprintf("msdffont: bitmap length %d does not match %dx%d RGBA (%d bytes)",
		e.Len, e.Width, e.Height, uint64(e.Width)*uint64(e.Height)*BytesPerPixel)
}
