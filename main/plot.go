package main

import (
	"fmt"
	"log"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/hexrot/hex"
	"github.com/phil-mansfield/hexrot/io"
)

func plotMain(con *io.PlotConfig) {
	fg := setupIO(&con.SharedConfig)
	defer fg.Close()

	b, err := io.ReadBlock(con.Input)
	if err != nil {
		log.Fatal(err.Error())
	}
	if con.Tracer > b.Cells {
		log.Fatalf(
			"'Tracer' is cell %d, but block '%s' only has %d cells.",
			con.Tracer, b.Name, b.Cells,
		)
	}

	rot, err := hex.DegreesToRotations(con.Degrees)
	if err != nil {
		log.Fatal(err.Error())
	}
	after, err := tracerDestination(b.Cells, con.Tracer, rot)
	if err != nil {
		log.Fatal(err.Error())
	}

	xs, ys, err := cellCenters(b.Cells, con.Pitch)
	if err != nil {
		log.Fatal(err.Error())
	}
	rings, err := hex.RingsToHoldCells(b.Cells)
	if err != nil {
		log.Fatal(err.Error())
	}
	ox, oy := outline(rings, con.Pitch)
	width := float64(rings) * con.Pitch * 1.1

	plt.Figure(plt.FigSize(8, 8))
	plt.Plot(ox, oy, "k", plt.LW(2))
	plt.Plot(xs, ys, "ok")
	plt.Plot(
		[]float64{xs[con.Tracer-1]}, []float64{ys[con.Tracer-1]},
		"o", plt.C("DarkSlateBlue"),
	)
	plt.Plot(
		[]float64{xs[after-1]}, []float64{ys[after-1]},
		"o", plt.C("DeepPink"),
	)
	plt.Title(fmt.Sprintf(
		`%s: cell %d $\rightarrow$ %d, orientation %g$^\circ$ $\rightarrow$ %g$^\circ$`,
		b.Name, con.Tracer, after, b.Orientation,
		hex.NormalizeOrientation(b.Orientation, con.Degrees),
	))
	plt.XLabel(`$X$`, plt.FontSize(16))
	plt.YLabel(`$Y$`, plt.FontSize(16))
	plt.XLim(-width, +width)
	plt.YLim(-width, +width)
	plt.SaveFig(con.Output)
	plt.Execute()

	log.Printf("Plotted '%s' to %s.", b.Name, con.Output)
}

// tracerDestination returns the cell that the contents of tracer end up in
// after rot rotations of a block with the given number of cells. This is
// the bulk rotation used on block data, so cells in a partially filled
// outer ring stay inside the block.
func tracerDestination(cells, tracer, rot int) (int, error) {
	if tracer < 1 || tracer > cells {
		return 0, fmt.Errorf(
			"Tracer cell %d isn't in a block with %d cells.", tracer, cells,
		)
	}
	idx := make([]int, cells)
	for i := range idx {
		idx[i] = i
	}
	out, err := hex.RotateSlice(idx, cells, rot)
	if err != nil {
		return 0, err
	}
	for i := range out {
		if out[i] == tracer-1 {
			return i + 1, nil
		}
	}
	panic("Impossible")
}

// cellCenters returns the x and y coordinates of every cell in spiral order.
func cellCenters(cells int, pitch float64) (xs, ys []float64, err error) {
	xs, ys = make([]float64, cells), make([]float64, cells)
	for i := range xs {
		p, err := hex.CellCenter(i+1, pitch)
		if err != nil {
			return nil, nil, err
		}
		xs[i], ys[i] = p[0], p[1]
	}
	return xs, ys, nil
}

// outline returns a closed hexagon which encloses a lattice with the given
// number of rings, leaving a margin of one pitch.
func outline(rings int, pitch float64) (xs, ys []float64) {
	scale := float64(rings) * pitch * hex.Sqrt3
	cs := hex.Corners(0)
	xs, ys = make([]float64, len(cs)+1), make([]float64, len(cs)+1)
	for i := range xs {
		c := cs[i%len(cs)]
		xs[i], ys[i] = c[0]*scale, c[1]*scale
	}
	return xs, ys
}
