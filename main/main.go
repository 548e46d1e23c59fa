package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/hexrot/block"
	"github.com/phil-mansfield/hexrot/io"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	// main picks the mode, reads and checks its config file, and hands off
	// to the secondary main function for that mode.

	var (
		rotate, plot  string
		exampleConfig string
	)
	vars := map[string]*string{
		"Rotate":        &rotate,
		"Plot":          &plot,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&rotate, "Rotate", "",
		"Configuration file for [Rotate] mode.",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Configuration file for [Plot] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Rotate' "+
			"and 'Plot'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Rotate":
		wrap, err := io.ReadRotateConfig(rotate)
		if err != nil {
			log.Fatal(err.Error())
		}
		rotateMain(wrap)

	case "Plot":
		wrap, err := io.ReadPlotConfig(plot)
		if err != nil {
			log.Fatal(err.Error())
		}
		plotMain(&wrap.Plot)

	case "ExampleConfig":
		switch exampleConfig {
		case "Rotate":
			fmt.Println(io.ExampleRotateFile)
		case "Plot":
			fmt.Println(io.ExamplePlotFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Rotate' and 'Plot'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but hexrot "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupIO opens the log and profile files requested by con.
func setupIO(con *io.SharedConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

func rotateMain(wrap *io.RotateWrapper) {
	con := &wrap.Rotate
	fg := setupIO(&con.SharedConfig)
	defer fg.Close()

	b, err := io.ReadBlock(con.Input)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Read block '%s': %d cells, %d cell parameters, orientation %g.",
		b.Name, b.Cells, len(b.Names(block.OnCells)), b.Orientation,
	)

	if con.ValidCellTable() {
		cols, err := wrap.Columns()
		if err != nil {
			log.Fatal(err.Error())
		}
		err = io.SetCellTable(b, con.CellTable, cols)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Read %d columns from %s.", len(cols), con.CellTable)
	}

	if err := b.Rotate(con.Degrees); err != nil {
		log.Fatal(err.Error())
	}
	if err := io.WriteBlock(con.Output, b); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Rotated '%s' by %g degrees to orientation %g, wrote %s.",
		b.Name, con.Degrees, b.Orientation, con.Output,
	)
}
