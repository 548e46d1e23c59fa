/*package hex contains routines for indexing and rotating data stored on a
hexagonal lattice.

Cells are numbered in a spiral. Cell 1 is the center, ring 2 holds cells 2
through 7, ring 3 holds cells 8 through 19, and so on. Each ring starts at
its upper right corner, 60 degrees from the x axis, and proceeds
counter-clockwise, so the lattice as a whole has its flats up. Arrays of
per-cell data are zero-indexed, so data[i] belongs to cell i + 1.
*/
package hex

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is wrapped by every error caused by an out of range
	// or mis-sized argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrType is wrapped by errors caused by data held in a container type
	// that can't be rotated.
	ErrType = errors.New("unsupported data type")
)

// maxRing is the largest ring whose hexagon's cell count fits in an int,
// and maxCells is that count.
var maxRing, maxCells = largestRing()

func largestRing() (ring, cells int) {
	// 1 + 3r(r - 1) <= MaxInt exactly when r(r - 1) <= limit.
	limit := (math.MaxInt - 1) / 3
	r := int(0.5 * (1 + math.Sqrt(1+4*float64(limit))))
	for r*(r-1) > limit {
		r--
	}
	for (r+1)*r <= limit {
		r++
	}
	return r, totalPositions(r)
}

// PositionsInRing returns the number of cells in the given ring. Rings are
// indexed from 1, so ring 1 is the center cell.
func PositionsInRing(ring int) (int, error) {
	if err := checkRing(ring, 1); err != nil {
		return 0, err
	}
	return positionsInRing(ring), nil
}

// TotalPositionsUpToRing returns the number of cells in a hexagon with the
// given number of rings. Zero rings hold zero cells.
func TotalPositionsUpToRing(ring int) (int, error) {
	if err := checkRing(ring, 0); err != nil {
		return 0, err
	}
	return totalPositions(ring), nil
}

// RingsToHoldCells returns the smallest number of rings which can hold the
// given number of cells. If the cells don't fill a hexagon exactly, the
// ring just large enough to fit them is returned. Counts which need a ring
// whose total doesn't fit in an int are rejected.
func RingsToHoldCells(cells int) (int, error) {
	if err := checkCells(cells, 0); err != nil {
		return 0, err
	}
	return ringsToHold(cells), nil
}

// IsFullHexagon returns true if the given number of cells exactly fills
// some number of rings.
func IsFullHexagon(cells int) bool {
	if cells < 0 || cells > maxCells {
		return false
	}
	return totalPositions(ringsToHold(cells)) == cells
}

func positionsInRing(ring int) int {
	if ring == 1 {
		return 1
	}
	return 6 * (ring - 1)
}

func totalPositions(ring int) int {
	if ring == 0 {
		return 0
	}
	return 1 + 3*ring*(ring-1)
}

// checkRing returns an error unless ring is in [lo, maxRing].
func checkRing(ring, lo int) error {
	if ring < lo || ring > maxRing {
		return fmt.Errorf(
			"%w: ring must be in [%d, %d], got %d",
			ErrInvalidArgument, lo, maxRing, ring,
		)
	}
	return nil
}

// checkCells returns an error unless cells is in [lo, maxCells].
func checkCells(cells, lo int) error {
	if cells < lo || cells > maxCells {
		return fmt.Errorf(
			"%w: cell count must be in [%d, %d], got %d",
			ErrInvalidArgument, lo, maxCells, cells,
		)
	}
	return nil
}

// ringsToHold solves 1 + 3r(r - 1) >= cells for the smallest r. That's
// r(r - 1) >= m with m = ceil((cells - 1)/3). Rounding m down instead gives
// one ring too few for counts just past a full hexagon (8, 9, 20, 21, ...).
// cells must be in [0, maxCells].
func ringsToHold(cells int) int {
	if cells == 0 {
		return 0
	}
	m := (cells - 1) / 3
	if (cells-1)%3 != 0 {
		m++
	}
	r := int(math.Ceil(0.5 * (1 + math.Sqrt(1+4*float64(m)))))

	// The square root is only good to a few ulps.
	for r > 1 && (r-1)*(r-2) >= m {
		r--
	}
	for r*(r-1) < m {
		r++
	}
	return r
}

// pMod computes the positive modulo x % y.
func pMod(x, y int) int {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}
