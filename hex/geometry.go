package hex

import (
	"math"
)

// Sqrt3 is the square root of three. It shows up a lot.
var Sqrt3 = math.Sqrt(3)

// Area returns the area of a hexagon with the given flat-to-flat pitch.
func Area(pitch float64) float64 {
	return Sqrt3 / 2 * pitch * pitch
}

// Side returns the side length of a hexagon with the given flat-to-flat
// pitch.
func Side(pitch float64) float64 {
	return pitch / Sqrt3
}

// Pitch returns the flat-to-flat pitch of a hexagon with the given side
// length.
func Pitch(side float64) float64 {
	return side * Sqrt3
}

// Corners returns the corners of a hexagon with unit pitch centered on the
// origin, rotated counter-clockwise by rotation degrees. At zero rotation
// the flats are parallel to the x axis and the first corner is the upper
// right one.
func Corners(rotation float64) [Sides][2]float64 {
	h := 1 / (2 * Sqrt3)
	pts := [Sides][2]float64{
		{h, 0.5}, {2 * h, 0}, {h, -0.5}, {-h, -0.5}, {-2 * h, 0}, {-h, 0.5},
	}
	for i := range pts {
		pts[i] = rotatePoint(pts[i], rotation)
	}
	return pts
}

// CellCenter returns the position of a cell's center in a lattice with the
// given pitch. The center cell is at the origin. Rotating the returned point
// by 60*k degrees gives the center of RotatedCellIndex(cell, k).
func CellCenter(cell int, pitch float64) ([2]float64, error) {
	ring, pos, err := RingPosition(cell)
	if err != nil {
		return [2]float64{}, err
	}
	if ring == 1 {
		return [2]float64{}, nil
	}

	edge := ring - 1
	side, step := (pos-1)/edge, (pos-1)%edge
	c0, c1 := ringCorner(side, edge, pitch), ringCorner(side+1, edge, pitch)
	f := float64(step) / float64(edge)
	return [2]float64{
		c0[0] + f*(c1[0]-c0[0]),
		c0[1] + f*(c1[1]-c0[1]),
	}, nil
}

// ringCorner returns the k-th corner cell of the ring with the given edge
// length. Corner 0 sits at 60 degrees.
func ringCorner(k, edge int, pitch float64) [2]float64 {
	theta := float64(k+1) * math.Pi / 3
	r := float64(edge) * pitch
	return [2]float64{r * math.Cos(theta), r * math.Sin(theta)}
}

// rotatePoint rotates p counter-clockwise about the origin.
func rotatePoint(p [2]float64, degrees float64) [2]float64 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return [2]float64{cos*p[0] - sin*p[1], sin*p[0] + cos*p[1]}
}
