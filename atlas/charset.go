package atlas

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Charset is an immutable set of codepoints to put in an atlas.
// The zero value is empty.
type Charset struct {
	table *unicode.RangeTable
}

// NewCharset returns a set holding runes. Duplicates are ignored.
func NewCharset(runes ...rune) Charset {
	if len(runes) == 0 {
		return Charset{}
	}
	return Charset{table: rangetable.New(runes...)}
}

// CharsetFromString returns the set of runes in s.
func CharsetFromString(s string) Charset {
	return NewCharset([]rune(s)...)
}

func runeRange(lo, hi rune) []rune {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return rs
}

// ASCII returns the printable ASCII range U+0020 through U+007E.
func ASCII() Charset {
	return NewCharset(runeRange(0x20, 0x7E)...)
}

// Latin1 returns printable ASCII plus U+00A0 through U+00FF.
func Latin1() Charset {
	return ASCII().Merge(NewCharset(runeRange(0xA0, 0xFF)...))
}

// CharsetByName returns a predefined set: "ascii" or "latin1".
func CharsetByName(name string) (Charset, bool) {
	switch strings.ToLower(name) {
	case "ascii":
		return ASCII(), true
	case "latin1", "latin-1":
		return Latin1(), true
	default:
		return Charset{}, false
	}
}

// Merge returns the union of c and o.
func (c Charset) Merge(o Charset) Charset {
	switch {
	case c.table == nil:
		return o
	case o.table == nil:
		return c
	}
	return Charset{table: rangetable.Merge(c.table, o.table)}
}

// Contains reports whether r is in the set.
func (c Charset) Contains(r rune) bool {
	return c.table != nil && unicode.Is(c.table, r)
}

// Runes returns the codepoints in ascending order.
func (c Charset) Runes() []rune {
	if c.table == nil {
		return nil
	}
	var rs []rune
	rangetable.Visit(c.table, func(r rune) {
		rs = append(rs, r)
	})
	return rs
}

// Len returns the number of codepoints in the set.
func (c Charset) Len() int {
	if c.table == nil {
		return 0
	}
	n := 0
	for _, r := range c.table.R16 {
		n += int((r.Hi-r.Lo)/r.Stride) + 1
	}
	for _, r := range c.table.R32 {
		n += int((r.Hi-r.Lo)/r.Stride) + 1
	}
	return n
}
