package component

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Width    float64
	Height   float64
	Position Position
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{Width: width, Height: height, Position: Position{X: x, Y: y}}
}

func (r Rect) Right() float64  { return r.Position.X + r.Width }
func (r Rect) Bottom() float64 { return r.Position.Y + r.Height }

// Contains reports whether p lies strictly inside r. Points on an edge are
// outside.
func (r Rect) Contains(p Position) bool {
	return p.X > r.Position.X && p.X < r.Right() &&
		p.Y > r.Position.Y && p.Y < r.Bottom()
}

// Overlaps reports whether r and o share interior area. Touching edges do
// not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Position.X < o.Right() &&
		r.Right() > o.Position.X &&
		r.Position.Y < o.Bottom() &&
		r.Bottom() > o.Position.Y
}

func (r Rect) Translate(d Position) Rect {
	r.Position = r.Position.Add(d)
	return r
}

// BB converts r to a Chipmunk bounding box. B holds the top edge because
// world Y grows downward.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.Position.X, B: r.Position.Y, R: r.Right(), T: r.Bottom()}
}
