package maze

// Cell represents a single cell in a maze grid.
// Each edge is stored once, on the cell lying north or west of it, so a cell
// only records its own north and west walls.
type Cell struct {
	NorthWall bool `json:"north"` // NorthWall indicates whether there is a wall on the north side of the cell.
	WestWall  bool `json:"west"`  // WestWall indicates whether there is a wall on the west side of the cell.
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c Cell) HasNorthWall() bool {
	return c.NorthWall
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c Cell) HasWestWall() bool {
	return c.WestWall
}
