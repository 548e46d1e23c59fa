package hex

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// For a single 60 degree rotation, the pre- and post-rotation layouts are
//
//	  2  1      1  6
//	3  0  6 -> 2  0  5
//	  4  5      3  4
//
// so data {0, 1, 2, 3, 4, 5, 6} becomes {0, 6, 1, 2, 3, 4, 5}.

func arange(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func randomArray(gen *rand.Rand, shape ...int) *Array {
	a := NewArray(shape...)
	for i := range a.Vals {
		a.Vals[i] = gen.Float64()
	}
	return a
}

// row returns the i-th cell's data of any test container as a flat slice.
func row(t *testing.T, data Sequence, i int) []float64 {
	switch d := data.(type) {
	case Slice[float64]:
		return []float64{d[i]}
	case Rows[float64]:
		return d[i]
	case *Array:
		return d.Row(i)
	}
	t.Fatalf("Unexpected test container %T", data)
	return nil
}

// checkTwoRotatedRings checks the center and the second ring of data rotated
// by shift steps.
func checkTwoRotatedRings(t *testing.T, actual, expected Sequence, shift int) {
	assert.Equal(t, row(t, expected, 0), row(t, actual, 0),
		"center cell moved with shift %d", shift)
	for j := 1; j < 7; j++ {
		i := j + pMod(shift, 6)
		if i > 6 {
			i -= 6
		}
		assert.Equal(t, row(t, expected, j), row(t, actual, i),
			"post rotate [%d] != pre rotate [%d] with shift %d", i, j, shift)
	}
}

func checkTwoRingsAllRotations(t *testing.T, data Sequence) {
	for rot := 0; rot < 7; rot++ {
		out, err := RotateCellData(data, 7, rot)
		require.NoError(t, err)
		require.IsType(t, data, out)
		checkTwoRotatedRings(t, out, data, rot)
	}
}

func TestRotateTwoRingsOfScalars(t *testing.T) {
	checkTwoRingsAllRotations(t, Slice[float64](arange(7)))

	out, err := RotateSlice(arange(7), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 6, 1, 2, 3, 4, 5}, out)
}

func TestRotateTwoRingsOfVectors(t *testing.T) {
	vals := arange(14)
	a, err := NewArrayFrom(vals, 7, 2)
	require.NoError(t, err)
	checkTwoRingsAllRotations(t, a)

	rows := make(Rows[float64], 7)
	for i := range rows {
		rows[i] = vals[2*i : 2*i+2]
	}
	checkTwoRingsAllRotations(t, rows)
}

func TestRotateTwoRingsOfHighDimensionalData(t *testing.T) {
	// e.g. neutron, gamma and total 20-group flux per cell.
	gen := rand.New(rand.NewSource(2))
	checkTwoRingsAllRotations(t, randomArray(gen, 7, 3, 20))
}

func TestThreeRings(t *testing.T) {
	data := arange(19)
	out, err := RotateSlice(data, 19, 1)
	require.NoError(t, err)
	checkTwoRotatedRings(t, Slice[float64](out), Slice[float64](data), 1)

	expectedRing3 := []float64{17, 18, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	assert.Equal(t, expectedRing3, out[7:])
}

func TestMultiRingRotation(t *testing.T) {
	cells := totalPositions(9)
	data := Slice[float64](arange(cells))

	for first := 0; first < 7; first++ {
		rotated, err := RotateCellData(data, cells, first)
		require.NoError(t, err)
		checkTwoRotatedRings(t, rotated, data, first)

		r := rotated.(Slice[float64])
		if first%6 != 0 {
			for i := 1; i < cells; i++ {
				assert.NotEqual(t, data[i], r[i],
					"cell %d unchanged after %d rotations", i, first)
			}
		} else {
			assert.Equal(t, data, r)
		}

		second := 6 - first
		restored, err := RotateCellData(rotated, cells, second)
		require.NoError(t, err)
		assert.Equal(t, data, restored, "first %d, second %d", first, second)
	}
}

func TestRotateListsMatchArrays(t *testing.T) {
	gen := rand.New(rand.NewSource(3))
	shapes := [][]int{
		{7}, {7, 2}, {totalPositions(3), 2, 3}, {totalPositions(9)},
	}

	for _, shape := range shapes {
		a := randomArray(gen, shape...)
		rows := make(Rows[float64], a.Len())
		for i := range rows {
			rows[i] = append([]float64{}, a.Row(i)...)
		}

		rotatedArray, err := RotateCellData(a, a.Len(), 2)
		require.NoError(t, err)
		rotatedRows, err := RotateCellData(rows, a.Len(), 2)
		require.NoError(t, err)
		require.IsType(t, Rows[float64]{}, rotatedRows)

		ra := rotatedArray.(*Array)
		assert.Equal(t, a.Shape, ra.Shape)
		for i, r := range rotatedRows.(Rows[float64]) {
			assert.Equal(t, ra.Row(i), r, "shape %v, cell %d", shape, i)
		}
	}
}

func TestIndexBulkConsistency(t *testing.T) {
	cells := totalPositions(8)
	data := arange(cells)
	for steps := -13; steps <= 13; steps++ {
		out, err := RotateSlice(data, cells, steps)
		require.NoError(t, err)
		assert.Equal(t, data[0], out[0])

		for j := range data {
			cell, err := RotatedCellIndex(j+1, pMod(steps, 6))
			require.NoError(t, err)
			assert.Equal(t, data[j], out[cell-1], "steps %d, index %d", steps, j)
		}
	}
}

func TestFullCircleIdentity(t *testing.T) {
	gen := rand.New(rand.NewSource(4))
	a := randomArray(gen, totalPositions(5), 4)
	for _, steps := range []int{-12, -6, 0, 6, 12, 60} {
		out, err := RotateCellData(a, a.Len(), steps)
		require.NoError(t, err)
		assert.Equal(t, a, out, "steps %d", steps)
	}
}

func TestRotateHugeStepCounts(t *testing.T) {
	data := arange(19)
	// 2^62 is 4 mod 6, and -2^62 is 2 mod 6.
	table := []struct {
		steps, equivalent int
	}{
		{1 << 62, 4}, {-(1 << 62), 2}, {math.MaxInt, 1}, {math.MinInt, 4},
	}
	for _, test := range table {
		expected, err := RotateSlice(data, 19, test.equivalent)
		require.NoError(t, err)
		actual, err := RotateSlice(data, 19, test.steps)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "steps %d", test.steps)
	}

	out, err := RotateSlice(data, 19, 1<<62)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13, 14, 15, 16, 17, 18, 7, 8, 9, 10}, out[7:])
}

func TestSixStepComposition(t *testing.T) {
	gen := rand.New(rand.NewSource(5))
	cells := totalPositions(6)
	data := make([]int, cells)
	for i := range data {
		data[i] = gen.Int()
	}

	out := data
	for i := 0; i < 6; i++ {
		var err error
		out, err = RotateSlice(out, cells, 1)
		require.NoError(t, err)
	}
	once, err := RotateSlice(data, cells, 6)
	require.NoError(t, err)

	assert.Equal(t, data, out)
	assert.Equal(t, once, out)
}

func TestRotateDoesNotModifyInput(t *testing.T) {
	data := arange(19)
	rows := Rows[float64]{}
	for i := 0; i < 7; i++ {
		rows = append(rows, []float64{float64(i), -float64(i)})
	}

	_, err := RotateSlice(data, 19, 2)
	require.NoError(t, err)
	assert.Equal(t, arange(19), data)

	out, err := RotateCellData(rows, 7, 1)
	require.NoError(t, err)
	out.(Rows[float64])[0][0] = 100
	assert.Equal(t, 0.0, rows[0][0], "output rows alias input rows")
}

func TestRotatePartialRing(t *testing.T) {
	// Cell 8 is alone in the third ring, so it has nowhere to go.
	out, err := RotateSlice(arange(8), 8, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 6, 1, 2, 3, 4, 5, 7}, out)
}

func TestRotateInvalidData(t *testing.T) {
	_, err := RotateSlice([]int{1, 2, 3}, 4, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = RotateCellData(nil, 0, 1)
	assert.ErrorIs(t, err, ErrType)

	bad := &Array{Shape: []int{7, 2}, Vals: arange(13)}
	_, err = RotateCellData(bad, 7, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewArrayFrom(arange(13), 7, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = RotateFullHexData(Slice[float64](arange(7)[1:]), 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "missing cells")

	out, err := RotateFullHexData(Slice[float64](arange(7)), 1)
	require.NoError(t, err)
	assert.Equal(t, Slice[float64]{0, 6, 1, 2, 3, 4, 5}, out)
}

func TestRotateDynamic(t *testing.T) {
	table := []struct {
		in, out interface{}
	}{
		{[]float64{0, 1, 2, 3, 4, 5, 6}, []float64{0, 6, 1, 2, 3, 4, 5}},
		{[]float32{0, 1, 2, 3, 4, 5, 6}, []float32{0, 6, 1, 2, 3, 4, 5}},
		{[]int{0, 1, 2, 3, 4, 5, 6}, []int{0, 6, 1, 2, 3, 4, 5}},
		{[]int64{0, 1, 2, 3, 4, 5, 6}, []int64{0, 6, 1, 2, 3, 4, 5}},
		{
			[]string{"a", "b", "c", "d", "e", "f", "g"},
			[]string{"a", "g", "b", "c", "d", "e", "f"},
		},
		{
			[]bool{false, true, false, false, false, false, false},
			[]bool{false, false, true, false, false, false, false},
		},
		{
			[][]int{{0}, {1}, {2}, {3}, {4}, {5}, {6}},
			[][]int{{0}, {6}, {1}, {2}, {3}, {4}, {5}},
		},
		{
			Slice[float64]{0, 1, 2, 3, 4, 5, 6},
			Slice[float64]{0, 6, 1, 2, 3, 4, 5},
		},
	}

	for i, test := range table {
		out, err := Rotate(test.in, 7, 1)
		require.NoError(t, err, "%d) %T", i+1, test.in)
		assert.Equal(t, test.out, out, "%d) %T", i+1, test.in)
	}

	for _, bad := range []interface{}{
		nil, map[int]float64{}, "abcdefg", [7]float64{}, []uint8{1},
	} {
		_, err := Rotate(bad, 7, 1)
		assert.ErrorIs(t, err, ErrType, "%T", bad)
	}
}

func TestClone(t *testing.T) {
	in := [][]float64{{1, 2}, {3, 4}}
	out, err := Clone(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	out.([][]float64)[0][0] = 10
	assert.Equal(t, 1.0, in[0][0])

	a := NewArray(3, 2)
	a.Vals[5] = 7
	c, err := Clone(a)
	require.NoError(t, err)
	assert.Equal(t, 7.0, c.(*Array).At(2, 1))

	n, err := Len([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = Clone(struct{}{})
	assert.ErrorIs(t, err, ErrType)
}

func BenchmarkRotateCellData(b *testing.B) {
	cells := totalPositions(20)
	data := Slice[float64](arange(cells))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RotateCellData(data, cells, 1+i%5)
	}
}

func BenchmarkRotatedCellIndexPerCell(b *testing.B) {
	cells := totalPositions(20)
	data := arange(cells)
	out := make([]float64, cells)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rot := 1 + i%5
		for j := range data {
			k, _ := RotatedCellIndex(j+1, rot)
			out[k-1] = data[j]
		}
	}
}
