package nanobots

import (
	"fmt"
)

func Abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Point is an integer position (or extent) in 3D space.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
	Z int64 `json:"z"`
}

func NewPoint(x, y, z int64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z
}

// Norm returns the Manhattan distance from the origin.
func (p Point) Norm() int64 {
	return Abs(p.X) + Abs(p.Y) + Abs(p.Z)
}

// Less orders points lexicographically on (x, y, z).
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.Z < o.Z
}

func (p Point) String() string {
	return fmt.Sprintf("<%d,%d,%d>", p.X, p.Y, p.Z)
}

func Add(a Point, b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a Point, b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a Point, b Point) int64 {
	return Sub(a, b).Norm()
}

// halves splits an extent into a floor half and a ceiling half. The ceiling
// half absorbs the remainder of an odd extent.
func halves(n int64) (int64, int64) {
	low := n / 2
	return low, n - low
}

// ceilLog2 returns the number of halvings needed to bring n down to 1.
func ceilLog2(n int64) int {
	depth := 0
	for v := int64(1); v < n; v <<= 1 {
		depth++
	}
	return depth
}
