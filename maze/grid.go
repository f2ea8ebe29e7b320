/*
Package maze models rectangular mazes whose cells are addressed by a row-major
index (index = row*width + col).

Walls are stored once per edge: a cell carries its own north and west walls and
the south and east walls are read from the neighbours below and to the right.
The outer boundary is always walled.

The package also translates between index deltas and cardinal directions,
renders mazes as ASCII art and generates perfect mazes with Wilson's algorithm.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrid is returned for non-positive dimensions or a cell count that does not match them.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is an immutable snapshot of a maze layout.
type Grid struct {
	width  int    // Width of the maze (number of columns)
	height int    // Height of the maze (number of rows)
	cells  []Cell // Row-major wall descriptors
}

// NewGrid builds a grid from row-major wall descriptors. The slice is copied.
func NewGrid(width, height int, cells []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidGrid, len(cells), width, height)
	}

	g := &Grid{width: width, height: height, cells: make([]Cell, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

// Open builds a grid with no internal walls.
func Open(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, width, height)
	}
	return NewGrid(width, height, make([]Cell, width*height))
}

// closed builds a grid where every edge is walled.
func closed(width, height int) (*Grid, error) {
	cells := make([]Cell, width*height)
	for k := range cells {
		cells[k] = Cell{NorthWall: true, WestWall: true}
	}
	return NewGrid(width, height, cells)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBound reports whether pos addresses a cell of the grid.
func (g *Grid) InBound(pos int) bool {
	return pos >= 0 && pos < len(g.cells)
}

// Coordinates splits a cell index into its row and column.
func (g *Grid) Coordinates(pos int) (row, col int) {
	return pos / g.width, pos % g.width
}

// Cell returns the wall descriptor stored for pos.
func (g *Grid) Cell(pos int) Cell {
	return g.cells[pos]
}

// Cells returns a copy of the row-major wall descriptors.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Walled reports whether moving from pos in direction d is blocked. Leaving the
// grid is always blocked, and so is any move from an out-of-bounds position.
func (g *Grid) Walled(pos int, d Direction) bool {
	next, err := Apply(pos, d, g.width, g.height)
	if err != nil {
		return true
	}

	switch d {
	case North:
		return g.cells[pos].NorthWall
	case West:
		return g.cells[pos].WestWall
	case South:
		return g.cells[next].NorthWall
	case East:
		return g.cells[next].WestWall
	}
	return true
}

// AvailableMoves lists the directions that can be taken from pos, in the order of Directions.
func (g *Grid) AvailableMoves(pos int) []Direction {
	moves := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if !g.Walled(pos, d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// Neighbour returns the cell reached by moving from pos in direction d, if that move is open.
func (g *Grid) Neighbour(pos int, d Direction) (int, bool) {
	if g.Walled(pos, d) {
		return 0, false
	}
	next, err := Apply(pos, d, g.width, g.height)
	if err != nil {
		return 0, false
	}
	return next, true
}

// openWall removes the wall between pos and its neighbour in direction d.
func (g *Grid) openWall(pos int, d Direction) error {
	next, err := Apply(pos, d, g.width, g.height)
	if err != nil {
		return err
	}

	switch d {
	case North:
		g.cells[pos].NorthWall = false
	case West:
		g.cells[pos].WestWall = false
	case South:
		g.cells[next].NorthWall = false
	case East:
		g.cells[next].WestWall = false
	}
	return nil
}

// Render draws the maze as ASCII art. marks places a single character inside a cell.
func (g *Grid) Render(marks map[int]byte) string {
	var output strings.Builder

	for row := 0; row < g.height; row++ {
		// North walls
		output.WriteString("+")
		for col := 0; col < g.width; col++ {
			if g.cells[row*g.width+col].NorthWall || row == 0 {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")

		// Cell row with west walls
		for col := 0; col < g.width; col++ {
			pos := row*g.width + col
			if g.cells[pos].WestWall || col == 0 {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}

			if mark, ok := marks[pos]; ok {
				output.WriteString(" " + string(mark) + " ")
			} else {
				output.WriteString("   ")
			}
		}
		output.WriteString("|\n")
	}

	// Bottom boundary
	output.WriteString("+" + strings.Repeat("---+", g.width) + "\n")
	return output.String()
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return g.Render(nil)
}
