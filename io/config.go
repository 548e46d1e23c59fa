package io

import (
	"fmt"
	"math"
	"sort"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleRotateFile = `[Rotate]

#######################
# Required Parameters #
#######################

# Block file which will be rotated. Block files are YAML documents. If the
# name ends in .zst, the file is zstd compressed.
Input = path/to/block.yaml
# File that the rotated block will be written to. Same rules as Input.
Output = path/to/rotated_block.yaml

# Counter-clockwise rotation in degrees. Must be a multiple of 60. Negative
# rotations and rotations larger than 360 are fine.
Degrees = 60

#######################
# Optional Parameters #
#######################

# Whitespace-separated text table with one row per lattice cell, in spiral
# order. Every [Column] section below turns one column of this table into a
# cell parameter on the block before it is rotated, replacing any parameter
# with the same name.
# CellTable = path/to/cell_table.txt

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out

# [Column "linPowByPin"]
# Index = 0
#
# [Column "percentBuByPin"]
# Index = 3`

	ExamplePlotFile = `[Plot]

#######################
# Required Parameters #
#######################

# Block file containing the lattice to plot.
Input = path/to/block.yaml
# Image file the plot is saved to.
Output = path/to/lattice.png

# Counter-clockwise rotation in degrees to show. Must be a multiple of 60.
Degrees = 60

#######################
# Optional Parameters #
#######################

# Center-to-center distance between cells. Default is 1.
# Pitch = 1.0

# Cell number (1 is the center cell) which is highlighted before and after the
# rotation. Default is 2, the first cell of the second ring.
# Tracer = 2

# ProfileFile = prof.out
# LogFile = log.out`
)

// SharedConfig holds the options every mode has.
type SharedConfig struct {
	// Required
	Input, Output string
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// validDegrees returns true if x is a finite multiple of 60.
func validDegrees(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x/60 == math.Trunc(x/60)
}

type RotateConfig struct {
	SharedConfig

	// Required
	Degrees float64

	// Optional
	CellTable string
}

func (con *RotateConfig) ValidDegrees() bool {
	return validDegrees(con.Degrees)
}
func (con *RotateConfig) ValidCellTable() bool {
	return con.CellTable != ""
}

// ColumnConfig maps a column of a cell table to a cell parameter.
type ColumnConfig struct {
	// Required
	Index int

	// Optional, "undocumented"
	Name string
}

func (col *ColumnConfig) CheckInit(name string) error {
	if col.Index < 0 {
		return fmt.Errorf(
			"Index of Column '%s' must be non-negative, but is %d",
			name, col.Index,
		)
	}
	col.Name = name
	return nil
}

type RotateWrapper struct {
	Rotate RotateConfig
	Column map[string]*ColumnConfig
}

func DefaultRotateWrapper() *RotateWrapper {
	return &RotateWrapper{Column: map[string]*ColumnConfig{}}
}

// Columns returns the checked column sections sorted by name.
func (wrap *RotateWrapper) Columns() ([]ColumnConfig, error) {
	names := make([]string, 0, len(wrap.Column))
	for name := range wrap.Column {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make([]ColumnConfig, len(names))
	for i, name := range names {
		if err := wrap.Column[name].CheckInit(name); err != nil {
			return nil, err
		}
		cols[i] = *wrap.Column[name]
	}
	return cols, nil
}

// CheckInit returns a descriptive error for the first invalid or missing
// value in the [Rotate] section.
func (con *RotateConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidDegrees() {
		return fmt.Errorf(
			"'Degrees' must be a multiple of 60, but is %g.", con.Degrees,
		)
	}
	return nil
}

type PlotConfig struct {
	SharedConfig

	// Required
	Degrees float64

	// Optional
	Pitch  float64
	Tracer int
}

type PlotWrapper struct {
	Plot PlotConfig
}

func DefaultPlotWrapper() *PlotWrapper {
	con := PlotConfig{}
	con.Pitch = 1
	con.Tracer = 2
	return &PlotWrapper{con}
}

func (con *PlotConfig) ValidDegrees() bool {
	return validDegrees(con.Degrees)
}
func (con *PlotConfig) ValidPitch() bool {
	return con.Pitch > 0
}
func (con *PlotConfig) ValidTracer() bool {
	return con.Tracer > 0
}

func (con *PlotConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidDegrees() {
		return fmt.Errorf(
			"'Degrees' must be a multiple of 60, but is %g.", con.Degrees,
		)
	} else if !con.ValidPitch() {
		return fmt.Errorf("'Pitch' must be positive, but is %g.", con.Pitch)
	} else if !con.ValidTracer() {
		return fmt.Errorf("'Tracer' must be positive, but is %d.", con.Tracer)
	}
	return nil
}

// ReadRotateConfig reads and checks a [Rotate] configuration file.
func ReadRotateConfig(fname string) (*RotateWrapper, error) {
	wrap := DefaultRotateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return wrap, checkRotateWrapper(wrap)
}

// ReadPlotConfig reads and checks a [Plot] configuration file.
func ReadPlotConfig(fname string) (*PlotWrapper, error) {
	wrap := DefaultPlotWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return wrap, wrap.Plot.CheckInit()
}

func checkRotateWrapper(wrap *RotateWrapper) error {
	if err := wrap.Rotate.CheckInit(); err != nil {
		return err
	}
	cols, err := wrap.Columns()
	if err != nil {
		return err
	}
	if len(cols) > 0 && !wrap.Rotate.ValidCellTable() {
		return fmt.Errorf("[Column] sections given without a 'CellTable'.")
	}
	return nil
}
