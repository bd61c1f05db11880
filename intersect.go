package draft

// Segment intersection primitives for the section engine.
//
// All tolerances are fixed absolute epsilons. Coordinates are
// millimeter-scale document units, so the values below are far under
// anything drawable, and keeping them absolute makes intersection
// results reproducible across documents of any size.

const (
	// parallelEps bounds the determinant magnitude under which two
	// directions count as parallel and no intersection is reported.
	parallelEps = 1e-10

	// endpointSlack widens the segment parameter range when cutting a
	// segment with an infinite line, so hits exactly on a drawn
	// endpoint survive floating point noise.
	endpointSlack = 1e-3

	// paramEps is the parameter tolerance for finite/finite
	// segment intersection.
	paramEps = 1e-6
)

// IntersectSegmentLine intersects the segment a-b with the infinite
// line through l1 and l2. It returns the segment parameter t in [0,1]
// and the intersection point. ok is false if the segment and line are
// parallel or the intersection falls outside the segment (with a small
// slack beyond each endpoint, after which t is clamped into [0,1]).
func IntersectSegmentLine(a, b, l1, l2 Point) (t float64, at Point, ok bool) {
	d := b.Sub(a)
	e := l2.Sub(l1)

	det := d.Cross(e)
	if det > -parallelEps && det < parallelEps {
		return 0, Point{}, false
	}

	// Solve a + t*d = l1 + u*e for t by Cramer's rule.
	w := l1.Sub(a)
	t = w.Cross(e) / det
	if t < -endpointSlack || t > 1+endpointSlack {
		return 0, Point{}, false
	}
	t = clamp01(t)
	return t, a.Lerp(b, t), true
}

// IntersectSegments intersects the finite segments a-b and c-d.
// It returns both segment parameters (t along a-b, u along c-d) and the
// intersection point. ok is false if the segments are parallel or do
// not cross within both segments (each parameter is allowed a 1e-6
// tolerance beyond [0,1], then clamped).
func IntersectSegments(a, b, c, d Point) (t, u float64, at Point, ok bool) {
	d1 := b.Sub(a)
	d2 := d.Sub(c)

	det := d1.Cross(d2)
	if det > -parallelEps && det < parallelEps {
		return 0, 0, Point{}, false
	}

	w := c.Sub(a)
	t = w.Cross(d2) / det
	u = w.Cross(d1) / det
	if t < -paramEps || t > 1+paramEps || u < -paramEps || u > 1+paramEps {
		return 0, 0, Point{}, false
	}
	t = clamp01(t)
	u = clamp01(u)
	return t, u, a.Lerp(b, t), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
