package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/hexrot/block"
)

// ReadCellTable reads cell parameters out of the given columns of a
// whitespace-separated text table. Row i of the table belongs to cell i + 1.
func ReadCellTable(fname string, cols []ColumnConfig) (map[string][]float64, error) {
	if len(cols) == 0 {
		return map[string][]float64{}, nil
	}

	idxs := make([]int, len(cols))
	for i := range cols {
		idxs[i] = cols[i].Index
	}
	data, err := table.ReadTable(fname, idxs, nil)
	if err != nil {
		return nil, err
	}

	params := make(map[string][]float64, len(cols))
	for i := range cols {
		if _, ok := params[cols[i].Name]; ok {
			return nil, fmt.Errorf(
				"Column '%s' of %s given twice.", cols[i].Name, fname,
			)
		}
		params[cols[i].Name] = data[i]
	}
	return params, nil
}

// SetCellTable reads a cell table and sets every column on b as a cell
// parameter. The number of rows must match the block's cell count.
func SetCellTable(b *block.Block, fname string, cols []ColumnConfig) error {
	params, err := ReadCellTable(fname, cols)
	if err != nil {
		return err
	}
	for _, col := range cols {
		vals := params[col.Name]
		if len(vals) != b.Cells {
			return fmt.Errorf(
				"Column '%s' of %s has %d rows, but block '%s' has %d cells.",
				col.Name, fname, len(vals), b.Name, b.Cells,
			)
		}
		if err := b.Set(col.Name, block.OnCells, vals); err != nil {
			return err
		}
	}
	return nil
}
