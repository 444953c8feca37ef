package physics

// Rect is an axis-aligned rectangle. Only the top-left corner and the size
// are stored; every anchor is derived from them.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// RectFromCenter returns a w x h rect centred on c.
func RectFromCenter(c Vector2, w, h float64) Rect {
	r := Rect{W: w, H: h}
	r.SetCenter(c)
	return r
}

// RectFromMidBottom returns a w x h rect whose bottom edge is centred on p.
func RectFromMidBottom(p Vector2, w, h float64) Rect {
	r := Rect{W: w, H: h}
	r.SetMidBottom(p)
	return r
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) Center() Vector2     { return Vector2{r.CenterX(), r.CenterY()} }
func (r Rect) MidTop() Vector2     { return Vector2{r.CenterX(), r.Y} }
func (r Rect) MidBottom() Vector2  { return Vector2{r.CenterX(), r.Bottom()} }
func (r Rect) BottomLeft() Vector2 { return Vector2{r.X, r.Bottom()} }

// SetCenter moves the rect so its centre is c.
func (r *Rect) SetCenter(c Vector2) {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
}

// SetMidTop moves the rect so the middle of its top edge is p.
func (r *Rect) SetMidTop(p Vector2) {
	r.X = p.X - r.W/2
	r.Y = p.Y
}

// SetMidBottom moves the rect so the middle of its bottom edge is p.
func (r *Rect) SetMidBottom(p Vector2) {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H
}

// SetBottomLeft moves the rect so its bottom-left corner is p.
func (r *Rect) SetBottomLeft(p Vector2) {
	r.X = p.X
	r.Y = p.Y - r.H
}

// Move translates the rect by d.
func (r *Rect) Move(d Vector2) {
	r.X += d.X
	r.Y += d.Y
}

// Resize changes the size while keeping the centre in place.
func (r *Rect) Resize(w, h float64) {
	c := r.Center()
	r.W = w
	r.H = h
	r.SetCenter(c)
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
