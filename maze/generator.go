package maze

import (
	"math/rand"
)

// Generate creates a perfect maze (exactly one route between any two cells)
// with Wilson's algorithm: loop-erased random walks grafted onto a growing tree.
func Generate(width, height int, rnd *rand.Rand) (*Grid, error) {
	g, err := closed(width, height)
	if err != nil {
		return nil, err
	}

	inTree := make([]bool, g.Size())
	inTree[rnd.Intn(g.Size())] = true
	remaining := g.Size() - 1

	for remaining > 0 {
		start := g.randomCellOutside(inTree, rnd)
		exits := g.randomWalk(start, inTree, rnd)

		// Retrace the walk using only the last exit of each cell, which erases loops.
		for cell := start; !inTree[cell]; {
			d := exits[cell]
			if err := g.openWall(cell, d); err != nil {
				return nil, err
			}
			inTree[cell] = true
			remaining--
			cell, _ = Apply(cell, d, width, height)
		}
	}

	return g, nil
}

// randomCellOutside selects a random position that is not part of the tree yet.
func (g *Grid) randomCellOutside(inTree []bool, rnd *rand.Rand) int {
	for {
		pos := rnd.Intn(g.Size())
		if !inTree[pos] {
			return pos
		}
	}
}

// randomWalk wanders from start until it hits the tree, recording the last direction taken out of each cell.
func (g *Grid) randomWalk(start int, inTree []bool, rnd *rand.Rand) map[int]Direction {
	exits := make(map[int]Direction)
	cell := start

	for !inTree[cell] {
		neighbors := g.inBoundDirections(cell)
		d := neighbors[rnd.Intn(len(neighbors))]
		exits[cell] = d
		cell, _ = Apply(cell, d, g.width, g.height)
	}

	return exits
}

// inBoundDirections finds all directions from pos that stay inside the grid, ignoring walls.
func (g *Grid) inBoundDirections(pos int) []Direction {
	var result []Direction
	for _, d := range Directions {
		if _, err := Apply(pos, d, g.width, g.height); err == nil {
			result = append(result, d)
		}
	}
	return result
}
