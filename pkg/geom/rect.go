// pkg/geom/rect.go
package geom

// Rect is an axis-aligned rectangle. X and Y are its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround builds a w×h rectangle centered on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

func (r Rect) MaxX() float64 { return r.X + r.W }

func (r Rect) MaxY() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.X, r.Y},
		{r.MaxX(), r.Y},
		{r.MaxX(), r.MaxY()},
		{r.X, r.MaxY()},
	}
}
