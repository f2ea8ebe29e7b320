package navigator

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/maze"
	"github.com/beka-birhanu/pony-escape/threat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, width, height int, mutate func(cells []maze.Cell)) *maze.Grid {
	t.Helper()
	cells := make([]maze.Cell, width*height)
	if mutate != nil {
		mutate(cells)
	}
	g, err := maze.NewGrid(width, height, cells)
	require.NoError(t, err)
	return g
}

func TestDecide(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	t.Run("Follow the shortest path", func(t *testing.T) {
		g := newGrid(t, 3, 3, nil)
		d, err := Decide(&domain.Snapshot{Grid: g, Agent: 0, Exit: 8, Hunter: 6}, rnd)
		require.NoError(t, err)

		assert.False(t, d.Deviated)
		assert.Len(t, d.Path, 5)
		assert.Len(t, d.Route, 4)
		assert.Equal(t, d.Route[0], d.Direction)
	})

	t.Run("Deviate from an adjacent hunter", func(t *testing.T) {
		// From 4 the only short way to 0 is north through 1.
		g := newGrid(t, 3, 3, func(cells []maze.Cell) {
			cells[4].WestWall = true
			cells[3].NorthWall = true
		})
		snapshot := &domain.Snapshot{Grid: g, Agent: 4, Hunter: 1, Exit: 0}

		for k := 0; k < 20; k++ {
			d, err := Decide(snapshot, rnd)
			require.NoError(t, err)
			assert.Equal(t, maze.North, d.Planned)
			assert.True(t, d.Deviated)
			assert.Contains(t, []maze.Direction{maze.East, maze.South}, d.Direction)
		}
	})

	t.Run("Keep the planned move when it is the only one", func(t *testing.T) {
		g := newGrid(t, 3, 3, func(cells []maze.Cell) {
			cells[4].WestWall = true
			cells[5].WestWall = true
			cells[7].NorthWall = true
		})
		d, err := Decide(&domain.Snapshot{Grid: g, Agent: 4, Hunter: 1, Exit: 0}, rnd)
		require.NoError(t, err)
		assert.Equal(t, maze.North, d.Direction)
		assert.False(t, d.Deviated)
	})

	t.Run("Ignore a hunter beside the route", func(t *testing.T) {
		g := newGrid(t, 3, 1, nil)
		d, err := Decide(&domain.Snapshot{Grid: g, Agent: 1, Hunter: 0, Exit: 2}, rnd)
		require.NoError(t, err)
		assert.Equal(t, maze.East, d.Direction)
		assert.False(t, d.Deviated)
	})

	t.Run("Unreachable exit", func(t *testing.T) {
		g := newGrid(t, 2, 1, func(cells []maze.Cell) {
			cells[1].WestWall = true
		})
		_, err := Decide(&domain.Snapshot{Grid: g, Agent: 0, Hunter: 0, Exit: 1}, rnd)
		assert.ErrorIs(t, err, ErrUnreachable)
	})

	t.Run("Already on the exit", func(t *testing.T) {
		g := newGrid(t, 2, 1, nil)
		_, err := Decide(&domain.Snapshot{Grid: g, Agent: 1, Hunter: 0, Exit: 1}, rnd)
		assert.ErrorIs(t, err, ErrAtExit)
	})

	t.Run("Missing grid", func(t *testing.T) {
		_, err := Decide(&domain.Snapshot{}, rnd)
		assert.ErrorIs(t, err, ErrNoGrid)
	})
}

func TestDecideNeverWalksIntoTheHunter(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))

	for k := 0; k < 200; k++ {
		g, err := maze.Generate(5, 5, rnd)
		require.NoError(t, err)

		agent := rnd.Intn(g.Size())
		exit := rnd.Intn(g.Size())
		if agent == exit {
			continue
		}
		moves := g.AvailableMoves(agent)
		hunterDir := moves[rnd.Intn(len(moves))]
		hunter, _ := g.Neighbour(agent, hunterDir)

		d, err := Decide(&domain.Snapshot{Grid: g, Agent: agent, Hunter: hunter, Exit: exit}, rnd)
		require.NoError(t, err)

		threatened, ok := threat.Direction(hunter, agent, g.Width())
		require.True(t, ok)
		if d.Planned == threatened && len(moves) > 1 {
			assert.NotEqual(t, threatened, d.Direction)
			assert.True(t, d.Deviated)
		}
		if len(moves) == 1 {
			assert.Equal(t, d.Planned, d.Direction)
		}
	}
}
