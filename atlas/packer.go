package atlas

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// ShelfPacker implements shelf-based rectangle packing.
//
// Rectangles are placed left to right on horizontal shelves. A shelf is as
// tall as the first rectangle placed on it, so inputs sorted tallest first
// waste the least space. Coordinates grow right and down from the top-left
// corner.
type ShelfPacker struct {
	width   int
	height  int
	spacing int
	shelves []shelf
}

// shelf is a horizontal strip of the atlas.
type shelf struct {
	y      int // top edge
	height int
	x      int // next free column
}

// NewShelfPacker returns a packer for a width x height area that leaves
// spacing pixels between neighbours.
func NewShelfPacker(width, height, spacing int) *ShelfPacker {
	return &ShelfPacker{width: width, height: height, spacing: spacing}
}

// Allocate reserves a w x h rectangle and returns its top-left corner.
// It reports false when no shelf and no new shelf can hold it.
func (p *ShelfPacker) Allocate(w, h int) (x, y int, ok bool) {
	if w > p.width || h > p.height {
		return -1, -1, false
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if h > s.height || s.x+w > p.width {
			continue
		}
		x, y = s.x, s.y
		s.x += w + p.spacing
		return x, y, true
	}

	y = 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		y = last.y + last.height + p.spacing
	}
	if y+h > p.height {
		return -1, -1, false
	}
	p.shelves = append(p.shelves, shelf{y: y, height: h, x: w + p.spacing})
	return 0, y, true
}

// Reset clears all allocations, keeping the dimensions.
func (p *ShelfPacker) Reset() {
	p.shelves = p.shelves[:0]
}

// ShelfCount returns the number of shelves in use.
func (p *ShelfPacker) ShelfCount() int {
	return len(p.shelves)
}

// Box is a rectangle in atlas pixels, measured from the top-left corner.
type Box struct {
	X, Y, W, H int
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// overlaps reports whether b and o share any pixel.
func (b Box) overlaps(o Box) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W && b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

// PackSquare positions boxes inside the smallest square atlas the shelf
// packer can fill, starting from the side whose area covers every box
// and growing one pixel at a time. Only W and H are read; X and Y are
// written. Empty boxes are left at the origin. It returns the side.
func PackSquare(boxes []Box, spacing, maxSide int) (int, error) {
	order := make([]int, 0, len(boxes))
	area, side := 0, 0
	for i, b := range boxes {
		boxes[i].X, boxes[i].Y = 0, 0
		if b.Empty() {
			continue
		}
		order = append(order, i)
		area += (b.W + spacing) * (b.H + spacing)
		side = max(side, b.W, b.H)
	}
	if len(order) == 0 {
		return 0, nil
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(boxes[b].H, boxes[a].H); c != 0 {
			return c
		}
		return cmp.Compare(boxes[b].W, boxes[a].W)
	})

	side = max(side, int(math.Ceil(math.Sqrt(float64(area)))))
	p := NewShelfPacker(side, side, spacing)
	for ; side <= maxSide; side++ {
		p.width, p.height = side, side
		p.Reset()
		if p.place(boxes, order) {
			return side, nil
		}
	}
	return 0, fmt.Errorf("%w: %d boxes need more than %dx%d", ErrAtlasTooLarge, len(order), maxSide, maxSide)
}

func (p *ShelfPacker) place(boxes []Box, order []int) bool {
	for _, i := range order {
		x, y, ok := p.Allocate(boxes[i].W, boxes[i].H)
		if !ok {
			return false
		}
		boxes[i].X, boxes[i].Y = x, y
	}
	return true
}
