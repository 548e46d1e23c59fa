package hex

import (
	"fmt"
)

// Sequence is an ordered, fixed-length container of per-cell (or per-face)
// values. Rotation only ever needs to allocate a container like an existing
// one and copy contiguous runs of items between the two.
type Sequence interface {
	// Len returns the number of items. For multi-dimensional data this is
	// the length of the first axis.
	Len() int
	// Make returns a new container with the same concrete type and shape
	// as the receiver.
	Make() Sequence
	// CopyRange copies n items starting at from in the receiver to the
	// items starting at to in dst. dst must have been returned by Make.
	CopyRange(dst Sequence, to, from, n int)
}

// Slice adapts an arbitrary slice to Sequence. Items are copied by value,
// so slices of slices or pointers share their contents with the input. Use
// Rows for slices of slices.
type Slice[T any] []T

func (s Slice[T]) Len() int       { return len(s) }
func (s Slice[T]) Make() Sequence { return make(Slice[T], len(s)) }

func (s Slice[T]) CopyRange(dst Sequence, to, from, n int) {
	copy(dst.(Slice[T])[to:to+n], s[from:from+n])
}

// Rows is a Sequence of per-cell vectors. Unlike Slice, CopyRange copies the
// contents of each row.
type Rows[T any] [][]T

func (r Rows[T]) Len() int       { return len(r) }
func (r Rows[T]) Make() Sequence { return make(Rows[T], len(r)) }

func (r Rows[T]) CopyRange(dst Sequence, to, from, n int) {
	d := dst.(Rows[T])
	for i := 0; i < n; i++ {
		row := r[from+i]
		if row == nil {
			d[to+i] = nil
			continue
		}
		d[to+i] = append(make([]T, 0, len(row)), row...)
	}
}

// Array is a dense, row-major array of float64 values. The first axis is
// the cell axis, so Shape = {cells, 3, 20} might hold three 20-group fluxes
// for every cell.
type Array struct {
	Shape []int
	Vals  []float64
}

// NewArray returns a zeroed Array with the given shape.
func NewArray(shape ...int) *Array {
	a := &Array{Shape: append([]int{}, shape...)}
	a.Vals = make([]float64, a.size())
	return a
}

// NewArrayFrom wraps vals in an Array with the given shape. vals is not
// copied.
func NewArrayFrom(vals []float64, shape ...int) (*Array, error) {
	a := &Array{Shape: append([]int{}, shape...), Vals: vals}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate returns an error if Vals doesn't match Shape.
func (a *Array) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil array", ErrInvalidArgument)
	}
	if len(a.Shape) == 0 {
		return fmt.Errorf("%w: array has no shape", ErrInvalidArgument)
	}
	for i, n := range a.Shape {
		if n < 0 {
			return fmt.Errorf(
				"%w: axis %d of array has negative length %d",
				ErrInvalidArgument, i, n,
			)
		}
	}
	if size := a.size(); size != len(a.Vals) {
		return fmt.Errorf(
			"%w: array of shape %v needs %d values, has %d",
			ErrInvalidArgument, a.Shape, size, len(a.Vals),
		)
	}
	return nil
}

// Len returns the length of the cell axis.
func (a *Array) Len() int {
	if len(a.Shape) == 0 {
		return 0
	}
	return a.Shape[0]
}

func (a *Array) Make() Sequence { return NewArray(a.Shape...) }

func (a *Array) CopyRange(dst Sequence, to, from, n int) {
	s := a.stride()
	copy(dst.(*Array).Vals[to*s:(to+n)*s], a.Vals[from*s:(from+n)*s])
}

// Row returns the values belonging to the i-th cell. The returned slice
// aliases Vals.
func (a *Array) Row(i int) []float64 {
	s := a.stride()
	return a.Vals[i*s : (i+1)*s]
}

// At returns the value at the given multi-dimensional index.
func (a *Array) At(idx ...int) float64 {
	flat := 0
	for i, n := range a.Shape {
		flat *= n
		if i < len(idx) {
			flat += idx[i]
		}
	}
	return a.Vals[flat]
}

// stride is the number of values belonging to a single cell.
func (a *Array) stride() int {
	s := 1
	for _, n := range a.Shape[1:] {
		s *= n
	}
	return s
}

func (a *Array) size() int {
	if len(a.Shape) == 0 {
		return 0
	}
	return a.Shape[0] * a.stride()
}

// validator is implemented by Sequences which can be internally
// inconsistent, like an Array whose values don't match its shape.
type validator interface {
	Validate() error
}

// sequence converts a supported container into a Sequence. native is true
// if data was a plain Go slice rather than a Sequence, in which case results
// should be passed through native() before being handed back.
func sequence(data interface{}) (seq Sequence, isNative bool, err error) {
	switch d := data.(type) {
	case []float64:
		return Slice[float64](d), true, nil
	case []float32:
		return Slice[float32](d), true, nil
	case []int:
		return Slice[int](d), true, nil
	case []int64:
		return Slice[int64](d), true, nil
	case []bool:
		return Slice[bool](d), true, nil
	case []string:
		return Slice[string](d), true, nil
	case [][]float64:
		return Rows[float64](d), true, nil
	case [][]int:
		return Rows[int](d), true, nil
	case Sequence:
		if v, ok := d.(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, false, err
			}
		}
		return d, false, nil
	}
	return nil, false, fmt.Errorf("%w: %T", ErrType, data)
}

// native reverses the conversion done by sequence for plain Go slices.
func native(seq Sequence) interface{} {
	switch s := seq.(type) {
	case Slice[float64]:
		return []float64(s)
	case Slice[float32]:
		return []float32(s)
	case Slice[int]:
		return []int(s)
	case Slice[int64]:
		return []int64(s)
	case Slice[bool]:
		return []bool(s)
	case Slice[string]:
		return []string(s)
	case Rows[float64]:
		return [][]float64(s)
	case Rows[int]:
		return [][]int(s)
	}
	return seq
}

// Len returns the number of items in a supported container.
func Len(data interface{}) (int, error) {
	seq, _, err := sequence(data)
	if err != nil {
		return 0, err
	}
	return seq.Len(), nil
}

// Clone returns a copy of a supported container with the same type.
func Clone(data interface{}) (interface{}, error) {
	seq, isNative, err := sequence(data)
	if err != nil {
		return nil, err
	}
	out := seq.Make()
	seq.CopyRange(out, 0, 0, seq.Len())
	if isNative {
		return native(out), nil
	}
	return out, nil
}
