package hex

import (
	"fmt"
	"math"
)

// Sides is the number of faces (and corners) of a hexagon.
const Sides = 6

// RotateBoundary rotates a value-per-face (or value-per-corner) collection by
// the given number of 60 degree counter-clockwise steps. values must hold
// exactly Sides items. Item i moves to (i + rotations) mod 6, the same
// direction used by RotateCellData, so {0, 10, 20, 30, 40, 50} rotated once
// becomes {50, 0, 10, 20, 30, 40}.
func RotateBoundary(values Sequence, rotations int) (Sequence, error) {
	if values == nil {
		return nil, fmt.Errorf("%w: nil boundary values", ErrType)
	}
	if v, ok := values.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	if values.Len() != Sides {
		return nil, fmt.Errorf(
			"%w: boundary data must have %d values, got %d",
			ErrInvalidArgument, Sides, values.Len(),
		)
	}
	out := values.Make()
	pivot(values, out, 0, Sides, rotations)
	return out, nil
}

// RotateBoundarySlice is RotateBoundary for a plain slice.
func RotateBoundarySlice[T any](values []T, rotations int) ([]T, error) {
	out, err := RotateBoundary(Slice[T](values), rotations)
	if err != nil {
		return nil, err
	}
	return []T(out.(Slice[T])), nil
}

// RotateBoundaryData is RotateBoundary for data whose type is only known at
// run time. It accepts the same types as Rotate.
func RotateBoundaryData(values interface{}, rotations int) (interface{}, error) {
	seq, isNative, err := sequence(values)
	if err != nil {
		return nil, err
	}
	out, err := RotateBoundary(seq, rotations)
	if err != nil {
		return nil, err
	}
	if isNative {
		return native(out), nil
	}
	return out, nil
}

// NormalizeOrientation returns the orientation, in degrees, after rotating
// something currently at current degrees by rotation degrees. The result is
// always in [0, 360).
func NormalizeOrientation(current, rotation float64) float64 {
	angle := math.Mod(current+rotation, 360)
	if angle < 0 {
		angle += 360
	}
	// Tiny negative angles round up to exactly 360 above.
	if angle >= 360 {
		angle -= 360
	}
	return angle
}

// DegreesToRotations converts an angle to a number of 60 degree steps. The
// angle must be a whole multiple of 60 degrees. Angles too large for every
// step to be counted exactly are first reduced modulo 360, which leaves an
// equivalent rotation.
func DegreesToRotations(degrees float64) (int, error) {
	// math.Mod is exact, so this also rejects huge angles like 2^70 which
	// divide by 60 to a whole float without being multiples of 60.
	if math.Mod(degrees, 60) != 0 {
		return 0, fmt.Errorf(
			"%w: rotation must be a multiple of 60 degrees, got %g",
			ErrInvalidArgument, degrees,
		)
	}
	steps := degrees / 60
	if math.Abs(steps) > maxExactSteps {
		steps = math.Mod(degrees, 360) / 60
	}
	return int(steps), nil
}

// maxExactSteps is the largest step count a float64 holds without gaps.
const maxExactSteps = 1 << 53

// RadiansToRotations converts an angle in radians to a number of 60 degree
// steps. The angle is rounded to the nearest degree if it's within
// radianTolerance degrees of it, since math.Pi/3 is never exactly 60 degrees
// once converted.
func RadiansToRotations(radians float64) (int, error) {
	degrees := radians * 180 / math.Pi
	if rounded := math.Round(degrees); math.Abs(degrees-rounded) < radianTolerance {
		degrees = rounded
	}
	return DegreesToRotations(degrees)
}

const radianTolerance = 1e-6
