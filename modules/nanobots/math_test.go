package nanobots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManhattan(t *testing.T) {
	require.Equal(t, int64(0), Manhattan(Point{}, Point{}))
	require.Equal(t, int64(9), Manhattan(Point{1, -2, 3}, Point{-1, 1, 1}))
	require.Equal(t, int64(36), NewPoint(12, -12, 12).Norm())
}

func TestPointClass(t *testing.T) {
	zero := Point{}
	one := Point{1, 1, 1}

	require.True(t, one.Equal(Add(zero, one)))
	require.True(t, zero.Equal(Sub(one, one)))
	require.True(t, zero.Less(one))
	require.False(t, one.Less(one))
	require.True(t, Point{0, 5, 0}.Less(Point{1, 0, 0}))
	require.True(t, Point{1, 0, 9}.Less(Point{1, 1, 0}))
	require.Equal(t, "<1,-2,3>", NewPoint(1, -2, 3).String())
}

func TestHalves(t *testing.T) {
	tests := []struct {
		n    int64
		low  int64
		high int64
	}{
		{n: 1, low: 0, high: 1},
		{n: 2, low: 1, high: 1},
		{n: 7, low: 3, high: 4},
		{n: 441, low: 220, high: 221},
	}

	for _, test := range tests {
		low, high := halves(test.n)
		require.Equal(t, test.low, low)
		require.Equal(t, test.high, high)
	}
}

func TestCeilLog2(t *testing.T) {
	require.Equal(t, 0, ceilLog2(1))
	require.Equal(t, 1, ceilLog2(2))
	require.Equal(t, 2, ceilLog2(3))
	require.Equal(t, 2, ceilLog2(4))
	require.Equal(t, 9, ceilLog2(441))
}
