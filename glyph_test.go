package msdffont

import "testing"

func TestNewTransform(t *testing.T) {
	tr := NewTransform(1, 2, 3, 4, 5, 6, 7, 8)

	want := Transform{
		1, 0, 0, 0,
		0, 2, 0, 0,
		3, 4, 1, 0,
		5, 6, 7, 8,
	}
	if tr != want {
		t.Errorf("NewTransform() = %v, want %v", tr, want)
	}

	pairs := []struct {
		name         string
		x, y         float32
		wantX, wantY float32
	}{
		{"TexScale", 0, 0, 1, 2},
		{"TexOffset", 0, 0, 3, 4},
		{"QuadScale", 0, 0, 5, 6},
		{"Bearing", 0, 0, 7, 8},
	}
	pairs[0].x, pairs[0].y = tr.TexScale()
	pairs[1].x, pairs[1].y = tr.TexOffset()
	pairs[2].x, pairs[2].y = tr.QuadScale()
	pairs[3].x, pairs[3].y = tr.Bearing()
	for _, p := range pairs {
		if p.x != p.wantX || p.y != p.wantY {
			t.Errorf("%s() = (%v, %v), want (%v, %v)", p.name, p.x, p.y, p.wantX, p.wantY)
		}
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Left: -1, Bottom: 2, Right: 3, Top: 7}
	if w := b.Width(); w != 4 {
		t.Errorf("Width() = %v, want 4", w)
	}
	if h := b.Height(); h != 5 {
		t.Errorf("Height() = %v, want 5", h)
	}
}
