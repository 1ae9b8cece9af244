package nanobots

// Oracle decides whether a sensor may reach any point of a box. A false
// positive only costs pruning efficiency. A false negative drops real reach
// from the search.
type Oracle interface {
	Intersects(s Sensor, b Bounds) bool
}

// HeuristicOracle probes the box corners, the box center and the sensor
// reach endpoints. It is not an exact box/ball test: a reach that only
// clips an edge of the box without covering a probe can be missed.
type HeuristicOracle struct{}

func (HeuristicOracle) Intersects(s Sensor, b Bounds) bool {
	for _, c := range b.Corners() {
		if s.Reaches(c) {
			return true
		}
	}

	if s.Reaches(b.Center()) {
		return true
	}

	for _, e := range s.Endpoints() {
		if b.Contains(e) {
			return true
		}
	}
	return false
}

// ExactOracle computes the minimal L1 distance between the box and the
// sensor center.
type ExactOracle struct{}

func (ExactOracle) Intersects(s Sensor, b Bounds) bool {
	return Distance(b, s.Center) <= s.Radius
}

// Distance returns the L1 distance from p to the closest point of b.
func Distance(b Bounds, p Point) int64 {
	last := b.Last()
	return axisGap(p.X, b.Origin.X, last.X) +
		axisGap(p.Y, b.Origin.Y, last.Y) +
		axisGap(p.Z, b.Origin.Z, last.Z)
}

func axisGap(v, lo, hi int64) int64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}
