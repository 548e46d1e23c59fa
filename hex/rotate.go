package hex

import (
	"fmt"
)

// RotateCellData rotates per-cell data by the given number of 60 degree
// counter-clockwise steps and returns the result in a new container of the
// same type. data[0] is the center cell and data[i] is cell i + 1 in the
// spiral numbering. data.Len() must equal cells. rotations can be any
// integer, including negative ones.
//
// For three rings, a single rotation moves data like this:
//
//	        9   8   7             7   18  17
//	      10  2   1   18        8   1   6   16
//	    11  3   0   6   17 -> 9   2   0   5   15
//	      12  4   5   16        10  3   4   14
//	        13  14  15            11  12  13
//
// Each ring is cyclically shifted as a block, which is equivalent to calling
// RotatedCellIndex on every cell.
func RotateCellData(data Sequence, cells, rotations int) (Sequence, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil data", ErrType)
	}
	if v, ok := data.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	if data.Len() != cells {
		return nil, fmt.Errorf(
			"%w: data holds %d cells, but %d were expected",
			ErrInvalidArgument, data.Len(), cells,
		)
	}
	if err := checkCells(cells, 0); err != nil {
		return nil, err
	}
	// Six steps are a full turn.
	rotations = pMod(rotations, Sides)

	out := data.Make()
	if cells == 0 {
		return out, nil
	}
	data.CopyRange(out, 0, 0, 1)

	rings := ringsToHold(cells)
	start := 1
	for ring := 2; ring <= rings; ring++ {
		n := positionsInRing(ring)
		if start+n > cells {
			// A partially filled outer ring is shifted as if its missing
			// cells didn't exist.
			n = cells - start
		}
		pivot(data, out, start, n, rotations*(ring-1))
		start += n
	}
	return out, nil
}

// RotateFullHexData is RotateCellData for data which must fill every ring
// of a hexagon. The cell count is taken from data.Len().
func RotateFullHexData(data Sequence, rotations int) (Sequence, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil data", ErrType)
	}
	cells := data.Len()
	if !IsFullHexagon(cells) {
		return nil, fmt.Errorf(
			"%w: %d cells do not fill a hexagon, data has missing cells",
			ErrInvalidArgument, cells,
		)
	}
	return RotateCellData(data, cells, rotations)
}

// RotateSlice is RotateCellData for a plain slice.
func RotateSlice[T any](data []T, cells, rotations int) ([]T, error) {
	out, err := RotateCellData(Slice[T](data), cells, rotations)
	if err != nil {
		return nil, err
	}
	return []T(out.(Slice[T])), nil
}

// Rotate is RotateCellData for data whose type is only known at run time.
// data may be a Sequence or one of []float64, []float32, []int, []int64,
// []bool, []string, [][]float64 and [][]int. The returned value has the
// same type as data. Any other type results in an error wrapping ErrType.
func Rotate(data interface{}, cells, rotations int) (interface{}, error) {
	seq, isNative, err := sequence(data)
	if err != nil {
		return nil, err
	}
	out, err := RotateCellData(seq, cells, rotations)
	if err != nil {
		return nil, err
	}
	if isNative {
		return native(out), nil
	}
	return out, nil
}

// pivot copies the window [start, start + n) of src into the same window of
// dst, moving every item shift places forward and wrapping around the end
// of the window. In list notation the window becomes
// w[n-shift:] + w[:n-shift].
func pivot(src, dst Sequence, start, n, shift int) {
	if n == 0 {
		return
	}
	s := pMod(shift, n)
	src.CopyRange(dst, start+s, start, n-s)
	src.CopyRange(dst, start, start+n-s, s)
}
