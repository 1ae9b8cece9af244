package nanobots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootRegion(t *testing.T) {
	sensors := []Sensor{
		NewSensor(0, 0, 0, 1),
		NewSensor(4, 4, 4, 2),
	}
	root := NewRootRegion(sensors)

	require.Equal(t, 2, root.Count())
	require.Same(t, &sensors[0], root.Covering[0])
	require.Same(t, &sensors[1], root.Covering[1])
	require.Equal(t, ReachBounds(sensors), root.Bounds)
}

func TestRegionSubdivide(t *testing.T) {
	sensors := []Sensor{
		NewSensor(0, 0, 0, 1),
		NewSensor(7, 7, 7, 1),
		NewSensor(3, 3, 3, 4),
		NewSensor(-2, 6, 1, 3),
	}

	for _, oracle := range []Oracle{HeuristicOracle{}, ExactOracle{}} {
		root := NewRootRegion(sensors)
		level := []Region{root}

		for depth := 0; depth < root.Bounds.Depth(); depth++ {
			var next []Region
			for _, parent := range level {
				children := parent.Subdivide(oracle)

				var volume int64
				for _, child := range children {
					require.False(t, child.Bounds.IsEmpty())
					volume += child.Bounds.Volume()

					// Monotonicity: a child only keeps parent sensors.
					require.LessOrEqual(t, child.Count(), parent.Count())
					for _, s := range child.Covering {
						require.Contains(t, parent.Covering, s)
						require.True(t, oracle.Intersects(*s, child.Bounds))
					}
				}
				require.Equal(t, parent.Bounds.Volume(), volume)

				for _, child := range children {
					if child.Count() > 0 {
						next = append(next, child)
					}
				}
			}
			level = next
		}

		for _, r := range level {
			require.True(t, r.Bounds.IsUnit())
		}
	}
}

func TestRegionSubdivideSkipsExcludedSensors(t *testing.T) {
	near := NewSensor(0, 0, 0, 1)
	far := NewSensor(0, 0, 0, 100)
	parent := Region{
		Bounds:   Bounds{Origin: Point{-1, -1, -1}, Extents: Point{2, 2, 2}},
		Covering: []*Sensor{&near},
	}

	for _, child := range parent.Subdivide(ExactOracle{}) {
		require.NotContains(t, child.Covering, &far)
	}
}
