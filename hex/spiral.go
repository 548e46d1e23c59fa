package hex

import (
	"fmt"
)

// RotatedCellIndex returns the cell number that the given cell moves to when
// the lattice is rotated counter-clockwise by orientation 60 degree steps.
// Cells are numbered from 1, and orientation must be in [0, 5].
//
// A single step moves every cell one edge's worth of positions along its
// ring. The center cell never moves.
func RotatedCellIndex(cell, orientation int) (int, error) {
	if orientation < 0 || orientation > 5 {
		return 0, fmt.Errorf(
			"%w: orientation number must be in [0, 5], got %d",
			ErrInvalidArgument, orientation,
		)
	}
	if err := checkCell(cell); err != nil {
		return 0, err
	}
	if cell == 1 || orientation == 0 {
		return cell, nil
	}

	ring := ringsToHold(cell)
	edge := ring - 1
	// Work with the offset into the ring so the last ring that fits in an
	// int can't overflow. orientation <= 5, so one wrap is enough.
	first := totalPositions(ring-1) + 1
	offset := cell - first + edge*orientation
	if offset >= 6*edge {
		offset -= 6 * edge
	}
	return first + offset, nil
}

// checkCell returns an error unless cell is a valid cell number.
func checkCell(cell int) error {
	if cell < 1 {
		return fmt.Errorf(
			"%w: cell number must be positive, got %d",
			ErrInvalidArgument, cell,
		)
	}
	return checkCells(cell, 1)
}

// RingPosition returns the ring containing the given cell and the cell's
// 1-indexed position within that ring.
func RingPosition(cell int) (ring, pos int, err error) {
	if err := checkCell(cell); err != nil {
		return 0, 0, err
	}
	ring = ringsToHold(cell)
	return ring, cell - totalPositions(ring-1), nil
}

// CellNumber is the inverse of RingPosition.
func CellNumber(ring, pos int) (int, error) {
	if err := checkRing(ring, 1); err != nil {
		return 0, err
	}
	if n := positionsInRing(ring); pos < 1 || pos > n {
		return 0, fmt.Errorf(
			"%w: ring %d has positions [1, %d], got %d",
			ErrInvalidArgument, ring, n, pos,
		)
	}
	return totalPositions(ring-1) + pos, nil
}
