package bezier

// Reducer collapses control points to a single curve point by repeated
// pairwise division, one level per pass.
type Reducer struct {
	divisions *DivisionCache
}

func NewReducer(divisions *DivisionCache) *Reducer {
	if divisions == nil {
		divisions = NewDivisionCache(DefaultDivision)
	}

	return &Reducer{
		divisions: divisions,
	}
}

func (r *Reducer) Division() int {
	return r.divisions.Division()
}

// Reduce returns the curve point for subdivision count p. ok is false when
// fewer than two points are given or any point is not finite.
func (r *Reducer) Reduce(points []Point, p int) (pt Point, ok bool) {
	return r.reduce(points, p, 0, nil)
}

// ReduceEx works like Reduce and also returns the segments of every level
// with their division samples, in level order.
func (r *Reducer) ReduceEx(points []Point, p int) (pt Point, segments []Segment, ok bool) {
	segments = make([]Segment, 0, len(points)*len(points)/2)

	pt, ok = r.reduce(points, p, 0, func(segment Segment) {
		segments = append(segments, segment)
	})
	if !ok {
		segments = nil
	}

	return
}

func (r *Reducer) reduce(points []Point, p, level int, fnSegment func(Segment)) (Point, bool) {
	if len(points) < 2 {
		return Point{}, false
	}

	for _, pt := range points {
		if !pt.IsFinite() {
			return Point{}, false
		}
	}

	next := make([]Point, 0, len(points)-1)

	for idx := 1; idx < len(points); idx++ {
		start, end := points[idx-1], points[idx]

		division := r.divisions.Divide(start, end, p)

		if fnSegment != nil {
			fnSegment(Segment{
				Level:    level,
				Start:    start,
				End:      end,
				Division: division,
			})
		}

		if len(division) == 0 {
			next = append(next, start)
		} else {
			next = append(next, division[len(division)-1])
		}
	}

	if len(next) == 1 {
		return next[0], true
	}

	return r.reduce(next, p, level+1, fnSegment)
}
