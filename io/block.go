package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/hexrot/block"
	"github.com/phil-mansfield/hexrot/hex"
)

// CompressedSuffix marks block files which are zstd compressed.
const CompressedSuffix = ".zst"

// BlockDocument is the on-disk form of a block.Block. Cell parameters can
// be scalars (CellData) or vectors (CellVectors).
type BlockDocument struct {
	Name        string                 `yaml:"name"`
	Cells       int                    `yaml:"cells"`
	Orientation float64                `yaml:"orientation"`
	Edges       map[string][]float64   `yaml:"edges,omitempty"`
	Corners     map[string][]float64   `yaml:"corners,omitempty"`
	CellData    map[string][]float64   `yaml:"cell_data,omitempty"`
	CellVectors map[string][][]float64 `yaml:"cell_vectors,omitempty"`
}

// Block converts the document to a block. If Cells isn't set, it's taken
// from the longest cell parameter.
func (doc *BlockDocument) Block() (*block.Block, error) {
	cells := doc.Cells
	if cells == 0 {
		for _, vals := range doc.CellData {
			if len(vals) > cells {
				cells = len(vals)
			}
		}
		for _, vals := range doc.CellVectors {
			if len(vals) > cells {
				cells = len(vals)
			}
		}
	}

	b, err := block.New(doc.Name, cells)
	if err != nil {
		return nil, err
	}
	b.Orientation = hex.NormalizeOrientation(doc.Orientation, 0)

	set := func(name string, loc block.Location, data interface{}) error {
		if _, ok := b.Get(name); ok {
			return fmt.Errorf(
				"%w: parameter '%s' of block '%s' is defined twice",
				hex.ErrInvalidArgument, name, doc.Name,
			)
		}
		return b.Set(name, loc, data)
	}

	for name, vals := range doc.Edges {
		if err := set(name, block.OnEdges, vals); err != nil {
			return nil, err
		}
	}
	for name, vals := range doc.Corners {
		if err := set(name, block.OnCorners, vals); err != nil {
			return nil, err
		}
	}
	for name, vals := range doc.CellData {
		if err := set(name, block.OnCells, vals); err != nil {
			return nil, err
		}
	}
	for name, vals := range doc.CellVectors {
		if err := set(name, block.OnCells, vals); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// NewBlockDocument converts a block to its on-disk form. Parameters must
// hold float64 or int slices, [][]float64 rows, or one- or two-dimensional
// hex.Arrays.
func NewBlockDocument(b *block.Block) (*BlockDocument, error) {
	doc := &BlockDocument{
		Name: b.Name, Cells: b.Cells, Orientation: b.Orientation,
		Edges:       map[string][]float64{},
		Corners:     map[string][]float64{},
		CellData:    map[string][]float64{},
		CellVectors: map[string][][]float64{},
	}

	for loc := block.OnCells; loc < block.EndLocation; loc++ {
		for _, name := range b.Names(loc) {
			data, _ := b.Get(name)
			vals, rows, err := documentData(data)
			if err != nil {
				return nil, fmt.Errorf("parameter '%s': %w", name, err)
			}

			switch {
			case rows != nil && loc != block.OnCells:
				return nil, fmt.Errorf(
					"%w: parameter '%s' on %v must be one-dimensional",
					hex.ErrType, name, loc,
				)
			case rows != nil:
				doc.CellVectors[name] = rows
			case loc == block.OnEdges:
				doc.Edges[name] = vals
			case loc == block.OnCorners:
				doc.Corners[name] = vals
			default:
				doc.CellData[name] = vals
			}
		}
	}
	return doc, nil
}

// documentData converts parameter data to either a flat slice or a slice of
// rows.
func documentData(data interface{}) (vals []float64, rows [][]float64, err error) {
	switch d := data.(type) {
	case nil:
		return []float64{}, nil, nil
	case []float64:
		return d, nil, nil
	case []int:
		vals = make([]float64, len(d))
		for i := range d {
			vals[i] = float64(d[i])
		}
		return vals, nil, nil
	case [][]float64:
		return nil, d, nil
	case *hex.Array:
		if err := d.Validate(); err != nil {
			return nil, nil, err
		}
		switch len(d.Shape) {
		case 1:
			return d.Vals, nil, nil
		case 2:
			rows = make([][]float64, d.Len())
			for i := range rows {
				rows[i] = d.Row(i)
			}
			return nil, rows, nil
		}
		return nil, nil, fmt.Errorf(
			"%w: can't write array of shape %v", hex.ErrType, d.Shape,
		)
	}
	return nil, nil, fmt.Errorf("%w: can't write %T", hex.ErrType, data)
}

// DecodeBlock reads a YAML block document from r.
func DecodeBlock(r io.Reader) (*block.Block, error) {
	doc := &BlockDocument{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("block document: %w", err)
	}
	return doc.Block()
}

// EncodeBlock writes b to w as a YAML block document.
func EncodeBlock(w io.Writer, b *block.Block) error {
	doc, err := NewBlockDocument(b)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// ReadBlock reads a block file. Files ending in CompressedSuffix are
// decompressed.
func ReadBlock(fname string) (*block.Block, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(fname, CompressedSuffix) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	}

	b, err := DecodeBlock(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return b, nil
}

// WriteBlock writes a block file. Files ending in CompressedSuffix are
// compressed.
func WriteBlock(fname string, b *block.Block) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	var enc *zstd.Encoder
	bw := bufio.NewWriter(f)
	w := io.Writer(bw)
	if strings.HasSuffix(fname, CompressedSuffix) {
		enc, err = zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return err
		}
		w = enc
	}

	if err := EncodeBlock(w, b); err != nil {
		if enc != nil {
			enc.Close()
		}
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			f.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
