package spatial

// Rect is an axis-aligned rectangle, the key type stored by AABBTree. W and
// H are extents, not a second corner: the rectangle spans
// [X, X+W] x [Y, Y+H].
type Rect struct {
	X, Y, W, H float64
}

// Vector2 is the motion vector AABBTree.Move accepts.
type Vector2 struct {
	X, Y float64
}

type aabbKeys struct{}

func (aabbKeys) Union(a, b Rect) Rect {
	x0 := minF(a.X, b.X)
	y0 := minF(a.Y, b.Y)
	x1 := maxF(a.X+a.W, b.X+b.W)
	y1 := maxF(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (aabbKeys) Contains(outer, inner Rect) bool {
	return outer.X <= inner.X && outer.Y <= inner.Y &&
		inner.X+inner.W <= outer.X+outer.W &&
		inner.Y+inner.H <= outer.Y+outer.H
}

func (aabbKeys) Overlaps(a, b Rect) bool {
	return a.X <= b.X+b.W && b.X <= a.X+a.W &&
		a.Y <= b.Y+b.H && b.Y <= a.Y+a.H
}

// Expand grows r symmetrically by v on every side (each extent grows by 2v).
func (aabbKeys) Expand(r Rect, v float64) Rect {
	return Rect{X: r.X - v, Y: r.Y - v, W: r.W + 2*v, H: r.H + 2*v}
}

// Area returns the surface area of r, the cost metric the optimal-sibling
// search minimizes for rectangles.
func (aabbKeys) Area(r Rect) float64 {
	return r.W * r.H
}

func (aabbKeys) Equal(a, b Rect) bool {
	return a.X == b.X && a.Y == b.Y && a.W == b.W && a.H == b.H
}

// MovePad fattens newKey symmetrically by padConstant, then extends it by
// moveConstant along whichever axis/direction offset points, so a leaf
// traveling in a straight line needs fewer restructures.
func (aabbKeys) MovePad(newKey Rect, padConstant, moveConstant float64, offset Vector2) Rect {
	padded := Rect{
		X: newKey.X - padConstant,
		Y: newKey.Y - padConstant,
		W: newKey.W + 2*padConstant,
		H: newKey.H + 2*padConstant,
	}
	if offset.X > 0 {
		padded.W += moveConstant * offset.X
	} else if offset.X < 0 {
		extra := -moveConstant * offset.X
		padded.X -= extra
		padded.W += extra
	}
	if offset.Y > 0 {
		padded.H += moveConstant * offset.Y
	} else if offset.Y < 0 {
		extra := -moveConstant * offset.Y
		padded.Y -= extra
		padded.H += extra
	}
	return padded
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
