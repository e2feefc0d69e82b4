package svg

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Dimensions is a width and height pair, in user units.
type Dimensions struct {
	Width, Height float64
}

func NewDimensions(width, height float64) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// NewUniformDimensions returns square dimensions.
func NewUniformDimensions(combined float64) Dimensions {
	return Dimensions{Width: combined, Height: combined}
}

// MinPoint returns the componentwise minimum of the points.
// It reports false when the slice is empty.
func MinPoint(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	min := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
	}
	return min, true
}

// MaxPoint returns the componentwise maximum of the points.
// It reports false when the slice is empty.
func MaxPoint(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	max := points[0]
	for _, p := range points[1:] {
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return max, true
}

// Rect accumulates the smallest axis-aligned box around included
// geometry. The zero Rect is empty: the first inclusion adopts the
// geometry, later inclusions only widen the bounds.
type Rect struct {
	min, max Point
	nonEmpty bool
}

// NewRect returns the rect spanning width and height away from p.
// Negative spans yield an inverted rect; Include never produces one.
func NewRect(p Point, width, height float64) Rect {
	return Rect{
		min:      p,
		max:      Point{X: p.X + width, Y: p.Y + height},
		nonEmpty: true,
	}
}

func (r Rect) IsEmpty() bool { return !r.nonEmpty }

func (r Rect) Min() Point { return r.min }

func (r Rect) Max() Point { return r.max }

func (r Rect) Width() float64 { return r.max.X - r.min.X }

func (r Rect) Height() float64 { return r.max.Y - r.min.Y }

// Include widens the bounds as needed to contain p. Each bound moves
// independently.
func (r *Rect) Include(p Point) {
	if !r.nonEmpty {
		r.min, r.max = p, p
		r.nonEmpty = true
		return
	}
	if p.X < r.min.X {
		r.min.X = p.X
	}
	if p.Y < r.min.Y {
		r.min.Y = p.Y
	}
	if p.X > r.max.X {
		r.max.X = p.X
	}
	if p.Y > r.max.Y {
		r.max.Y = p.Y
	}
}

// IncludeRect widens the bounds to contain other. Including an empty
// rect changes nothing.
func (r *Rect) IncludeRect(other Rect) {
	if !other.nonEmpty {
		return
	}
	r.Include(other.min)
	r.Include(other.max)
}
