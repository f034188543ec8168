// Package wire provides fixed-width, native-endian cursors over byte slices.
//
// Writer fills a buffer allocated once up front. Reader consumes a buffer
// with a monotonically advancing offset. Both track bounds internally and
// fail closed on overrun instead of trusting caller-maintained offsets.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrShortBuffer is reported by Writer when a write does not fit.
var ErrShortBuffer = errors.New("wire: write exceeds buffer capacity")

// OverrunError is returned by Reader when a read would extend past the end
// of the buffer.
type OverrunError struct {
	Offset    int // cursor position when the read was attempted
	Need      int // bytes the read required
	Remaining int // bytes left in the buffer
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("wire: read of %d bytes at offset %d overruns buffer (%d remaining)",
		e.Need, e.Offset, e.Remaining)
}

// Writer writes fixed-width values into a preallocated buffer.
// The first write that does not fit sets a sticky error; later writes are
// dropped.
type Writer struct {
	buf []byte
	off int
	err error
}

// NewWriter allocates a zeroed buffer of exactly size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, size)}
}

func (w *Writer) reserve(n int) []byte {
	if w.err != nil {
		return nil
	}
	if n > len(w.buf)-w.off {
		w.err = ErrShortBuffer
		return nil
	}
	b := w.buf[w.off : w.off+n]
	w.off += n
	return b
}

// Uint32 appends v.
func (w *Writer) Uint32(v uint32) {
	if b := w.reserve(4); b != nil {
		binary.NativeEndian.PutUint32(b, v)
	}
}

// Int32 appends v.
func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v)) //nolint:gosec // bit-preserving reinterpretation
}

// Float32 appends the IEEE 754 bits of v.
func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

// Write appends p verbatim.
func (w *Writer) Write(p []byte) {
	if b := w.reserve(len(p)); b != nil {
		copy(b, p)
	}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int { return w.off }

// Len returns the capacity the writer was created with.
func (w *Writer) Len() int { return len(w.buf) }

// Err returns the first overrun, if any.
func (w *Writer) Err() error { return w.err }

// Bytes returns the underlying buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Reader reads fixed-width values from a byte slice.
// A failed read leaves the cursor where it was.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Next returns the next n bytes as a sub-slice of the underlying buffer and
// advances past them.
func (r *Reader) Next(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.off {
		return nil, &OverrunError{Offset: r.off, Need: n, Remaining: len(r.data) - r.off}
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Uint32 reads one native-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Next(4)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(b), nil
}

// Int32 reads one native-endian int32.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err //nolint:gosec // bit-preserving reinterpretation
}

// Float32 reads one native-endian IEEE 754 float32.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }
