/*package block rotates hexagonal blocks: a lattice of cells plus a set of
named parameters defined on those cells or on the hexagon's faces and
corners, and the block's orientation.
*/
package block

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/hexrot/hex"
)

// Location describes what a parameter's values are attached to.
type Location int

const (
	// OnCells parameters hold one item per lattice cell in spiral order.
	OnCells Location = iota
	// OnEdges parameters hold one item per hexagon face.
	OnEdges
	// OnCorners parameters hold one item per hexagon corner.
	OnCorners
	EndLocation
)

func (loc Location) String() string {
	switch loc {
	case OnCells:
		return "Cells"
	case OnEdges:
		return "Edges"
	case OnCorners:
		return "Corners"
	}
	return fmt.Sprintf("Location(%d)", int(loc))
}

// Param is a named collection of values on a block.
type Param struct {
	Name     string
	Location Location
	// Data is any container accepted by hex.Rotate.
	Data interface{}
}

// Block is a hexagonal block. Orientation is the counter-clockwise rotation
// of the block in degrees and is kept in [0, 360).
type Block struct {
	Name        string
	Cells       int
	Orientation float64

	params map[string]*Param
}

// New returns an unrotated block with the given number of lattice cells.
// Blocks without any cells are fine.
func New(name string, cells int) (*Block, error) {
	if cells < 0 {
		return nil, fmt.Errorf(
			"%w: block '%s' given negative cell count %d",
			hex.ErrInvalidArgument, name, cells,
		)
	}
	return &Block{Name: name, Cells: cells, params: map[string]*Param{}}, nil
}

// Set assigns data to the named parameter, replacing whatever was there.
// The data's shape isn't checked until the block is rotated.
func (b *Block) Set(name string, loc Location, data interface{}) error {
	if name == "" {
		return fmt.Errorf("%w: empty parameter name", hex.ErrInvalidArgument)
	}
	if loc < 0 || loc >= EndLocation {
		return fmt.Errorf(
			"%w: parameter '%s' has unknown location %v",
			hex.ErrInvalidArgument, name, loc,
		)
	}
	if b.params == nil {
		b.params = map[string]*Param{}
	}
	b.params[name] = &Param{Name: name, Location: loc, Data: data}
	return nil
}

// Get returns the data of the named parameter.
func (b *Block) Get(name string) (data interface{}, ok bool) {
	p, ok := b.params[name]
	if !ok {
		return nil, false
	}
	return p.Data, true
}

// Param returns a copy of the named parameter's description.
func (b *Block) Param(name string) (Param, bool) {
	p, ok := b.params[name]
	if !ok {
		return Param{}, false
	}
	return *p, true
}

// Delete removes the named parameter, if it exists.
func (b *Block) Delete(name string) { delete(b.params, name) }

// Names returns the sorted names of all the parameters at the given
// location.
func (b *Block) Names(loc Location) []string {
	names := []string{}
	for name, p := range b.params {
		if p.Location == loc {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() (*Block, error) {
	c, err := New(b.Name, b.Cells)
	if err != nil {
		return nil, err
	}
	c.Orientation = b.Orientation

	for name, p := range b.params {
		data := p.Data
		if data != nil {
			if data, err = hex.Clone(p.Data); err != nil {
				return nil, fmt.Errorf("parameter '%s': %w", name, err)
			}
		}
		c.params[name] = &Param{Name: name, Location: p.Location, Data: data}
	}
	return c, nil
}
