package nanobots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	b := Bounds{Origin: Point{0, 0, 0}, Extents: Point{2, 3, 4}}

	require.Equal(t, int64(0), Distance(b, Point{1, 2, 3}))
	require.Equal(t, int64(1), Distance(b, Point{-1, 0, 0}))
	require.Equal(t, int64(1), Distance(b, Point{2, 0, 0}))
	require.Equal(t, int64(7), Distance(b, Point{-1, 5, 6}))
}

func TestExactOracleMatchesBruteForce(t *testing.T) {
	sensors := []Sensor{
		NewSensor(0, 0, 0, 2),
		NewSensor(5, -3, 1, 4),
		NewSensor(-6, 6, -6, 1),
		NewSensor(2, 2, 2, 0),
	}
	boxes := []Bounds{
		{Origin: Point{1, 1, -5}, Extents: Point{3, 3, 10}},
		{Origin: Point{-4, -4, -4}, Extents: Point{3, 2, 5}},
		{Origin: Point{2, 2, 2}, Extents: Point{1, 1, 1}},
		{Origin: Point{6, -8, -2}, Extents: Point{4, 4, 4}},
		{Origin: Point{-9, 3, -9}, Extents: Point{2, 2, 2}},
	}

	var oracle ExactOracle
	for _, s := range sensors {
		for _, b := range boxes {
			require.Equal(t, bruteIntersects(s, b), oracle.Intersects(s, b), "%v %+v", s, b)
		}
	}
}

func TestHeuristicOracle(t *testing.T) {
	var oracle HeuristicOracle

	t.Run("box inside the reach", func(t *testing.T) {
		s := NewSensor(0, 0, 0, 10)
		require.True(t, oracle.Intersects(s, Bounds{Origin: Point{-1, -1, -1}, Extents: Point{2, 2, 2}}))
	})

	t.Run("reach inside the box", func(t *testing.T) {
		s := NewSensor(0, 0, 0, 1)
		require.True(t, oracle.Intersects(s, Bounds{Origin: Point{-5, -5, -5}, Extents: Point{11, 11, 11}}))
	})

	t.Run("reach crossing a face", func(t *testing.T) {
		s := NewSensor(-2, 5, 5, 3)
		require.True(t, oracle.Intersects(s, Bounds{Origin: Point{0, 0, 0}, Extents: Point{10, 10, 10}}))
	})

	t.Run("positive x endpoint", func(t *testing.T) {
		s := NewSensor(-3, 1, 1, 4)
		require.True(t, oracle.Intersects(s, Bounds{Origin: Point{1, 0, 0}, Extents: Point{1, 4, 4}}))
	})

	t.Run("disjoint", func(t *testing.T) {
		s := NewSensor(20, 20, 20, 3)
		require.False(t, oracle.Intersects(s, Bounds{Origin: Point{0, 0, 0}, Extents: Point{10, 10, 10}}))
	})

	t.Run("reach clipping an edge is missed", func(t *testing.T) {
		s := NewSensor(0, 0, 0, 2)
		b := Bounds{Origin: Point{1, 1, -5}, Extents: Point{3, 3, 10}}
		require.True(t, b.Contains(Point{1, 1, 0}))
		require.True(t, s.Reaches(Point{1, 1, 0}))
		require.False(t, oracle.Intersects(s, b))
		require.True(t, ExactOracle{}.Intersects(s, b))
	})
}

func TestOracleNeverMissesReachedCorner(t *testing.T) {
	sensors := []Sensor{
		NewSensor(0, 0, 0, 3),
		NewSensor(4, -2, 7, 5),
	}
	root := Bounds{Origin: Point{-8, -8, -8}, Extents: Point{16, 16, 16}}

	for _, s := range sensors {
		for _, b := range root.Divide() {
			reached := false
			for _, c := range b.Corners() {
				reached = reached || s.Reaches(c)
			}
			if reached {
				require.True(t, HeuristicOracle{}.Intersects(s, b))
				require.True(t, ExactOracle{}.Intersects(s, b))
			}
		}
	}
}

func TestOracleDeterminism(t *testing.T) {
	s := NewSensor(3, -1, 2, 4)
	target := Bounds{Origin: Point{2, 0, 0}, Extents: Point{2, 2, 2}}

	// The same box reached through two different subdivision paths.
	fromA := findChild(t, Bounds{Origin: Point{0, 0, 0}, Extents: Point{8, 8, 8}}, target)
	fromB := findChild(t, Bounds{Origin: Point{-4, -6, -4}, Extents: Point{8, 8, 8}}, target)
	require.Equal(t, target, fromA)
	require.Equal(t, target, fromB)

	for _, oracle := range []Oracle{HeuristicOracle{}, ExactOracle{}} {
		require.Equal(t, oracle.Intersects(s, target), oracle.Intersects(s, fromA))
		require.Equal(t, oracle.Intersects(s, target), oracle.Intersects(s, fromB))
	}
}

func findChild(t *testing.T, root Bounds, target Bounds) Bounds {
	b := root
	for !b.Extents.Equal(target.Extents) || !b.Origin.Equal(target.Origin) {
		next, ok := Bounds{}, false
		for _, c := range b.Divide() {
			if !c.IsEmpty() && c.Contains(target.Origin) && c.Contains(target.Last()) {
				next, ok = c, true
				break
			}
		}
		require.True(t, ok, "%+v is not reachable from %+v", target, root)
		b = next
	}
	return b
}

func bruteIntersects(s Sensor, b Bounds) bool {
	last := b.Last()
	for x := b.Origin.X; x <= last.X; x++ {
		for y := b.Origin.Y; y <= last.Y; y++ {
			for z := b.Origin.Z; z <= last.Z; z++ {
				if s.Reaches(Point{x, y, z}) {
					return true
				}
			}
		}
	}
	return false
}
