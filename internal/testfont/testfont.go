// Package testfont builds font fixtures for tests.
//
// The Go fonts carry no kerning, so fixtures that need pair adjustments
// are made by splicing a kern table into a copy of one.
package testfont

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"math/bits"
	"slices"

	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Pair is one kerning adjustment in font units.
type Pair struct {
	Left, Right rune
	Value       int16
}

var tagKern = opentype.MustNewTag("kern")

// KernedGoRegular returns Go Regular with a kern table holding pairs.
func KernedGoRegular(pairs ...Pair) ([]byte, error) {
	return WithKern(goregular.TTF, pairs)
}

// WithKern returns a copy of the TrueType font src whose kern table is
// replaced by a version 0, format 0 table holding pairs. Runes the font
// does not map are an error.
func WithKern(src []byte, pairs []Pair) ([]byte, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, err
	}
	var buf sfnt.Buffer
	gid := func(r rune) (uint16, error) {
		g, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return 0, err
		}
		if g == 0 {
			return 0, fmt.Errorf("testfont: %U not in font", r)
		}
		return uint16(g), nil
	}

	type entry struct{ left, right uint16 }
	values := make(map[entry]int16, len(pairs))
	for _, p := range pairs {
		l, err := gid(p.Left)
		if err != nil {
			return nil, err
		}
		r, err := gid(p.Right)
		if err != nil {
			return nil, err
		}
		values[entry{l, r}] = p.Value
	}
	keys := make([]entry, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	// Lookups binary-search on left<<16 | right.
	slices.SortFunc(keys, func(a, b entry) int {
		return cmp.Compare(uint32(a.left)<<16|uint32(a.right), uint32(b.left)<<16|uint32(b.right))
	})

	n := len(keys)
	search, selector := binarySearchParams(n, 6)
	kern := make([]byte, 0, 4+14+6*n)
	kern = binary.BigEndian.AppendUint16(kern, 0) // version
	kern = binary.BigEndian.AppendUint16(kern, 1) // subtables
	kern = binary.BigEndian.AppendUint16(kern, 0) // subtable version
	kern = binary.BigEndian.AppendUint16(kern, uint16(14+6*n))
	kern = append(kern, 0, 0x01) // format 0, horizontal
	kern = binary.BigEndian.AppendUint16(kern, uint16(n))
	kern = binary.BigEndian.AppendUint16(kern, search)
	kern = binary.BigEndian.AppendUint16(kern, selector)
	kern = binary.BigEndian.AppendUint16(kern, uint16(6*n)-search)
	for _, k := range keys {
		kern = binary.BigEndian.AppendUint16(kern, k.left)
		kern = binary.BigEndian.AppendUint16(kern, k.right)
		kern = binary.BigEndian.AppendUint16(kern, uint16(values[k]))
	}

	ld, err := opentype.NewLoader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	var tables []opentype.Table
	for _, tag := range ld.Tables() {
		if tag == tagKern {
			continue
		}
		data, err := ld.RawTable(tag)
		if err != nil {
			return nil, err
		}
		tables = append(tables, opentype.Table{Tag: tag, Content: data})
	}
	tables = append(tables, opentype.Table{Tag: tagKern, Content: kern})
	slices.SortFunc(tables, func(a, b opentype.Table) int { return cmp.Compare(a.Tag, b.Tag) })
	return writeTables(binary.BigEndian.Uint32(src), tables), nil
}

// writeTables lays out a font file with each table on a four-byte boundary,
// which sfnt.Parse requires and opentype.WriteTTF does not guarantee. The
// head checksum adjustment is left stale; parsers ignore it.
func writeTables(version uint32, tables []opentype.Table) []byte {
	n := len(tables)
	search, selector := binarySearchParams(n, 16)

	out := binary.BigEndian.AppendUint32(nil, version)
	out = binary.BigEndian.AppendUint16(out, uint16(n))
	out = binary.BigEndian.AppendUint16(out, search)
	out = binary.BigEndian.AppendUint16(out, selector)
	out = binary.BigEndian.AppendUint16(out, uint16(16*n)-search)

	off := uint32(12 + 16*n)
	for _, t := range tables {
		out = binary.BigEndian.AppendUint32(out, uint32(t.Tag))
		out = binary.BigEndian.AppendUint32(out, checksum(t.Content))
		out = binary.BigEndian.AppendUint32(out, off)
		out = binary.BigEndian.AppendUint32(out, uint32(len(t.Content)))
		off += padded(len(t.Content))
	}
	for _, t := range tables {
		out = append(out, t.Content...)
		out = append(out, make([]byte, int(padded(len(t.Content)))-len(t.Content))...)
	}
	return out
}

func padded(n int) uint32 {
	return uint32((n + 3) &^ 3)
}

func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// binarySearchParams returns searchRange and entrySelector for n records
// of size bytes each.
func binarySearchParams(n, size int) (search, selector uint16) {
	if n == 0 {
		return 0, 0
	}
	p := bits.Len(uint(n)) - 1
	return uint16(size << p), uint16(p)
}
