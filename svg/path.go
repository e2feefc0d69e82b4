package svg

// Path is an ordered list of sub-paths, each an open point sequence.
// It serializes with the even-odd fill rule, so overlapping sub-paths
// cut holes out of each other.
type Path struct {
	Fill     Fill
	Stroke   Stroke
	subPaths [][]Point
}

// NewPath returns a path with a single empty sub-path ready for
// points.
func NewPath(fill Fill, stroke Stroke) *Path {
	p := &Path{Fill: fill, Stroke: stroke}
	p.StartNewSubPath()
	return p
}

// Add appends points to the current sub-path, opening the first one
// if needed.
func (p *Path) Add(points ...Point) {
	if len(p.subPaths) == 0 {
		p.subPaths = append(p.subPaths, nil)
	}
	last := len(p.subPaths) - 1
	p.subPaths[last] = append(p.subPaths[last], points...)
}

// StartNewSubPath opens a new sub-path. While the current sub-path is
// still empty it does nothing, so repeated calls never pile up empty
// sub-paths.
func (p *Path) StartNewSubPath() {
	if len(p.subPaths) == 0 || len(p.subPaths[len(p.subPaths)-1]) > 0 {
		p.subPaths = append(p.subPaths, nil)
	}
}

func (p *Path) ToSVG() string {
	d := ""
	for _, sub := range p.subPaths {
		if len(sub) == 0 {
			continue
		}
		d += "M"
		for _, pt := range sub {
			d += ftoa(pt.X) + "," + ftoa(pt.Y) + " "
		}
		d += "z "
	}
	return elemStart("path") +
		"d=\"" + d + "\" " +
		attribute("fill-rule", "evenodd") +
		p.Fill.ToSVG() + p.Stroke.ToSVG() + emptyElemEnd
}

func (p *Path) Offset(delta Point) {
	for _, sub := range p.subPaths {
		offsetPoints(sub, delta)
	}
}

// BoundingRect unions every point of every sub-path. A path with no
// points has empty bounds.
func (p *Path) BoundingRect() Rect {
	var r Rect
	for _, sub := range p.subPaths {
		for _, pt := range sub {
			r.Include(pt)
		}
	}
	return r
}

func (p *Path) DrawTo(d Driver, l Layout) {
	drawShape(d, l, p.Fill, p.Stroke, false, func(dw Drawer) {
		for _, sub := range p.subPaths {
			emitPoints(dw, l, sub, true)
		}
	})
}
