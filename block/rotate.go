package block

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/hexrot/hex"
)

// Rotate rotates the block counter-clockwise by the given number of
// degrees, which must be a multiple of 60. Every cell parameter is rotated
// over the lattice, every edge and corner parameter is rotated around the
// hexagon, and the orientation is updated. Nil and empty parameters are
// skipped.
//
// If any parameter can't be rotated an error is returned and the block is
// left exactly as it was.
func (b *Block) Rotate(degrees float64) error {
	rot, err := hex.DegreesToRotations(degrees)
	if err != nil {
		return err
	}
	return b.rotate(rot, degrees)
}

// RotateRadians is Rotate for an angle given in radians.
func (b *Block) RotateRadians(radians float64) error {
	rot, err := hex.RadiansToRotations(radians)
	if err != nil {
		return err
	}
	return b.rotate(rot, float64(60*rot))
}

func (b *Block) rotate(rot int, degrees float64) error {
	if b.Cells < 0 {
		return fmt.Errorf(
			"%w: block '%s' has negative cell count %d",
			hex.ErrInvalidArgument, b.Name, b.Cells,
		)
	}

	// Everything is rotated into a side buffer first so that a bad
	// parameter can't leave the block half rotated.
	names := make([]string, 0, len(b.params))
	for name := range b.params {
		names = append(names, name)
	}
	sort.Strings(names)

	rotated := make(map[string]interface{}, len(names))
	for _, name := range names {
		p := b.params[name]
		if isEmpty(p.Data) {
			continue
		}

		var (
			out interface{}
			err error
		)
		switch p.Location {
		case OnCells:
			out, err = hex.Rotate(p.Data, b.Cells, rot)
		case OnEdges, OnCorners:
			out, err = hex.RotateBoundaryData(p.Data, rot)
		default:
			err = fmt.Errorf("%w: unknown location %v",
				hex.ErrInvalidArgument, p.Location)
		}
		if err != nil {
			return fmt.Errorf("parameter '%s' (%v): %w", name, p.Location, err)
		}
		rotated[name] = out
	}

	for name, out := range rotated {
		b.params[name].Data = out
	}
	b.Orientation = hex.NormalizeOrientation(b.Orientation, degrees)
	return nil
}

// isEmpty returns true for nil data and zero-length containers. Data with an
// unsupported type isn't empty, so rotating it will report the problem.
func isEmpty(data interface{}) bool {
	if data == nil {
		return true
	}
	n, err := hex.Len(data)
	return err == nil && n == 0
}
