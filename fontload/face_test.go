package fontload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/msdffont"
)

func loadGoRegular(t *testing.T) *Face {
	t.Helper()
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse(goregular) error: %v", err)
	}
	return f
}

func TestParse(t *testing.T) {
	f := loadGoRegular(t)

	if f.Name() == "" {
		t.Error("Name() is empty")
	}
	if got := f.UnitsPerEm(); got != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", got)
	}
	if f.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if len(f.Data()) != len(goregular.TTF) {
		t.Errorf("len(Data()) = %d, want %d", len(f.Data()), len(goregular.TTF))
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("Parse() of garbage should fail")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "go.ttf")
	if err := os.WriteFile(good, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(good); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	tests := []struct {
		name string
		path string
		data []byte
	}{
		{"missing", filepath.Join(dir, "missing.ttf"), nil},
		{"garbage", filepath.Join(dir, "bad.ttf"), []byte("garbage")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.data != nil {
				if err := os.WriteFile(tt.path, tt.data, 0o600); err != nil {
					t.Fatal(err)
				}
			}
			_, err := Open(tt.path)
			var oe *msdffont.FontOpenError
			if !errors.As(err, &oe) {
				t.Fatalf("Open() error = %v, want *FontOpenError", err)
			}
			if oe.Path != tt.path {
				t.Errorf("FontOpenError.Path = %q, want %q", oe.Path, tt.path)
			}
		})
	}
}

func TestHasGlyph(t *testing.T) {
	f := loadGoRegular(t)

	for _, r := range "AVg0 ~" {
		if !f.HasGlyph(r) {
			t.Errorf("HasGlyph(%q) = false, want true", r)
		}
	}
	if f.HasGlyph('\U0001F600') {
		t.Error("HasGlyph(emoji) = true, want false")
	}
}

func TestOutline(t *testing.T) {
	f := loadGoRegular(t)

	o, err := f.Outline('H')
	if err != nil {
		t.Fatalf("Outline('H') error: %v", err)
	}
	if o.IsEmpty() {
		t.Fatal("Outline('H') is empty")
	}
	if o.Segments[0].Op != MoveTo {
		t.Errorf("first segment = %v, want MoveTo", o.Segments[0].Op)
	}

	// y up: the glyph sits on the baseline and reaches cap height.
	b := o.Bounds
	if b.Bottom < -0.01 || b.Bottom > 0.01 {
		t.Errorf("Bounds.Bottom = %v, want ~0", b.Bottom)
	}
	if b.Top < 0.5 || b.Top > 1 {
		t.Errorf("Bounds.Top = %v, want cap height in (0.5, 1)", b.Top)
	}
	if b.Left < 0 || b.Right <= b.Left || b.Right > o.Advance {
		t.Errorf("Bounds = %+v, advance %v: want 0 <= left < right <= advance", b, o.Advance)
	}

	adv, err := f.Advance('H')
	if err != nil {
		t.Fatalf("Advance('H') error: %v", err)
	}
	if adv != o.Advance {
		t.Errorf("Advance('H') = %v, Outline advance = %v", adv, o.Advance)
	}
}

func TestOutlineSpace(t *testing.T) {
	f := loadGoRegular(t)

	o, err := f.Outline(' ')
	if err != nil {
		t.Fatalf("Outline(' ') error: %v", err)
	}
	if !o.IsEmpty() {
		t.Errorf("Outline(' ') has %d segments, want 0", len(o.Segments))
	}
	if o.Advance <= 0 {
		t.Errorf("Outline(' ').Advance = %v, want > 0", o.Advance)
	}
	if o.Bounds != (msdffont.Bounds{}) {
		t.Errorf("Outline(' ').Bounds = %+v, want zero", o.Bounds)
	}
}

func TestMissingGlyph(t *testing.T) {
	f := loadGoRegular(t)

	if _, err := f.Outline('\U0001F600'); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Outline(emoji) error = %v, want ErrGlyphNotFound", err)
	}
	if _, err := f.Advance('\U0001F600'); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Advance(emoji) error = %v, want ErrGlyphNotFound", err)
	}
	if _, err := f.Kern('A', '\U0001F600'); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Kern(A, emoji) error = %v, want ErrGlyphNotFound", err)
	}
}

func TestKern(t *testing.T) {
	f := loadGoRegular(t)

	k, err := f.Kern('A', 'V')
	if err != nil {
		t.Fatalf("Kern('A', 'V') error: %v", err)
	}
	if k > 0.01 || k < -0.5 {
		t.Errorf("Kern('A', 'V') = %v, want a small non-positive value", k)
	}
}

func TestOutlineScale(t *testing.T) {
	o := &Outline{
		Segments: []Segment{
			{Op: MoveTo, Points: [3]Point{{0, 0}}},
			{Op: QuadTo, Points: [3]Point{{1, 2}, {2, 0}}},
			{Op: LineTo, Points: [3]Point{{0, 0}}},
		},
		Advance: 2.5,
	}
	o.Bounds = boundsOf(o.Segments)

	s := o.Scale(2)
	if s.Advance != 5 {
		t.Errorf("scaled Advance = %v, want 5", s.Advance)
	}
	want := msdffont.Bounds{Left: 0, Bottom: 0, Right: 4, Top: 4}
	if s.Bounds != want {
		t.Errorf("scaled Bounds = %+v, want %+v", s.Bounds, want)
	}
	if got := s.Segments[1].End(); got != (Point{4, 0}) {
		t.Errorf("scaled QuadTo end = %v, want {4 0}", got)
	}
	if o.Segments[1].Points[0] != (Point{1, 2}) {
		t.Error("Scale modified the receiver")
	}
}

func TestSegmentOpString(t *testing.T) {
	tests := []struct {
		op   SegmentOp
		want string
	}{
		{MoveTo, "MoveTo"},
		{LineTo, "LineTo"},
		{QuadTo, "QuadTo"},
		{CubeTo, "CubeTo"},
		{SegmentOp(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("SegmentOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
