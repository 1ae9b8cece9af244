package nanobots

// Region is a box paired with the sensors that may reach it.
type Region struct {
	Bounds   Bounds
	Covering []*Sensor
}

// NewRootRegion returns the region spanning the reach of every sensor.
func NewRootRegion(sensors []Sensor) Region {
	covering := make([]*Sensor, len(sensors))
	for i := range sensors {
		covering[i] = &sensors[i]
	}

	return Region{
		Bounds:   ReachBounds(sensors),
		Covering: covering,
	}
}

func (r Region) Count() int {
	return len(r.Covering)
}

// Subdivide splits the region into its non-empty children. A child only
// keeps the parent sensors the oracle affirms for the child bounds.
func (r Region) Subdivide(oracle Oracle) []Region {
	children := make([]Region, 0, 8)
	for _, b := range r.Bounds.Divide() {
		if b.IsEmpty() {
			continue
		}

		covering := make([]*Sensor, 0, len(r.Covering))
		for _, s := range r.Covering {
			if oracle.Intersects(*s, b) {
				covering = append(covering, s)
			}
		}

		children = append(children, Region{
			Bounds:   b,
			Covering: covering,
		})
	}
	return children
}
