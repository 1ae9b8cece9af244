package nanobots

// Bounds is an axis-aligned integer box. It covers the points from Origin
// (inclusive) to Origin+Extents (exclusive) on each axis.
type Bounds struct {
	Origin  Point `json:"origin"`
	Extents Point `json:"extents"`
}

// ReachBounds returns the smallest box holding every point reached by the
// given sensors.
func ReachBounds(sensors []Sensor) Bounds {
	if len(sensors) == 0 {
		return Bounds{}
	}

	first := sensors[0]
	min := Sub(first.Center, Point{first.Radius, first.Radius, first.Radius})
	max := Add(first.Center, Point{first.Radius, first.Radius, first.Radius})
	for _, s := range sensors[1:] {
		min.X = Min(min.X, s.Center.X-s.Radius)
		min.Y = Min(min.Y, s.Center.Y-s.Radius)
		min.Z = Min(min.Z, s.Center.Z-s.Radius)
		max.X = Max(max.X, s.Center.X+s.Radius)
		max.Y = Max(max.Y, s.Center.Y+s.Radius)
		max.Z = Max(max.Z, s.Center.Z+s.Radius)
	}

	return Bounds{
		Origin:  min,
		Extents: Add(Sub(max, min), Point{1, 1, 1}),
	}
}

func (b Bounds) IsEmpty() bool {
	return b.Extents.X <= 0 || b.Extents.Y <= 0 || b.Extents.Z <= 0
}

func (b Bounds) IsUnit() bool {
	return b.Extents.Equal(Point{1, 1, 1})
}

// Last returns the inclusive far corner.
func (b Bounds) Last() Point {
	return Sub(Add(b.Origin, b.Extents), Point{1, 1, 1})
}

func (b Bounds) Corners() [8]Point {
	lo, hi := b.Origin, b.Last()
	return [8]Point{
		{lo.X, lo.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{lo.X, hi.Y, lo.Z},
		{lo.X, hi.Y, hi.Z},
		{hi.X, lo.Y, lo.Z},
		{hi.X, lo.Y, hi.Z},
		{hi.X, hi.Y, lo.Z},
		{hi.X, hi.Y, hi.Z},
	}
}

func (b Bounds) Center() Point {
	return Point{
		b.Origin.X + b.Extents.X/2,
		b.Origin.Y + b.Extents.Y/2,
		b.Origin.Z + b.Extents.Z/2,
	}
}

func (b Bounds) Contains(p Point) bool {
	end := Add(b.Origin, b.Extents)
	return p.X >= b.Origin.X && p.X < end.X &&
		p.Y >= b.Origin.Y && p.Y < end.Y &&
		p.Z >= b.Origin.Z && p.Z < end.Z
}

// Volume returns the number of integer points in the box.
func (b Bounds) Volume() int64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Extents.X * b.Extents.Y * b.Extents.Z
}

// Divide bisects every axis and returns the 8 (low, high) combinations. An
// odd extent gives its extra unit to the high half, so on an axis of extent
// 1 the low children are empty. Callers drop empty children.
func (b Bounds) Divide() [8]Bounds {
	lx, hx := halves(b.Extents.X)
	ly, hy := halves(b.Extents.Y)
	lz, hz := halves(b.Extents.Z)
	o := b.Origin

	return [8]Bounds{
		{Point{o.X, o.Y, o.Z}, Point{lx, ly, lz}},
		{Point{o.X, o.Y, o.Z + lz}, Point{lx, ly, hz}},
		{Point{o.X, o.Y + ly, o.Z}, Point{lx, hy, lz}},
		{Point{o.X, o.Y + ly, o.Z + lz}, Point{lx, hy, hz}},
		{Point{o.X + lx, o.Y, o.Z}, Point{hx, ly, lz}},
		{Point{o.X + lx, o.Y, o.Z + lz}, Point{hx, ly, hz}},
		{Point{o.X + lx, o.Y + ly, o.Z}, Point{hx, hy, lz}},
		{Point{o.X + lx, o.Y + ly, o.Z + lz}, Point{hx, hy, hz}},
	}
}

// Depth returns how many subdivisions it takes to reduce the box to unit
// extents.
func (b Bounds) Depth() int {
	return ceilLog2(Max(b.Extents.X, Max(b.Extents.Y, b.Extents.Z)))
}
