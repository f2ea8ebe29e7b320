package threat

import (
	"testing"

	"github.com/beka-birhanu/pony-escape/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	t.Run("Orthogonal neighbours", func(t *testing.T) {
		tests := []struct {
			hunter   int
			expected maze.Direction
		}{
			{hunter: 1, expected: maze.North},
			{hunter: 7, expected: maze.South},
			{hunter: 5, expected: maze.East},
			{hunter: 3, expected: maze.West},
		}
		for _, tt := range tests {
			d, ok := Direction(tt.hunter, 4, 3)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, d)
		}
	})

	t.Run("Equal, diagonal and distant positions", func(t *testing.T) {
		for _, hunter := range []int{4, 0, 2, 6, 8} {
			_, ok := Direction(hunter, 4, 3)
			assert.False(t, ok, "hunter %d", hunter)
		}
		_, ok := Direction(8, 0, 3)
		assert.False(t, ok)
	})

	t.Run("No wrap across rows", func(t *testing.T) {
		_, ok := Direction(3, 2, 3)
		assert.False(t, ok)
	})

	t.Run("Negative hunter position", func(t *testing.T) {
		_, ok := Direction(-1, 0, 3)
		assert.False(t, ok)
		_, ok = Direction(0, -1, 3)
		assert.False(t, ok)
	})

	t.Run("Every pair on a grid", func(t *testing.T) {
		const width, height = 4, 4
		for agent := 0; agent < width*height; agent++ {
			for hunter := 0; hunter < width*height; hunter++ {
				ar, ac := agent/width, agent%width
				hr, hc := hunter/width, hunter%width
				dr, dc := hr-ar, hc-ac
				adjacent := (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))

				_, ok := Direction(hunter, agent, width)
				assert.Equal(t, adjacent, ok, "agent %d hunter %d", agent, hunter)
			}
		}
	})
}

func TestImminent(t *testing.T) {
	t.Run("Adjacent hunter through an open edge", func(t *testing.T) {
		g, err := maze.Open(3, 3)
		require.NoError(t, err)
		assert.True(t, Imminent(g, 4, 1))
		assert.False(t, Imminent(g, 4, 0))
	})

	t.Run("Wall between agent and hunter", func(t *testing.T) {
		cells := make([]maze.Cell, 9)
		cells[4].NorthWall = true
		g, err := maze.NewGrid(3, 3, cells)
		require.NoError(t, err)

		path, err := ShortHunterPath(g, 4, 1)
		require.NoError(t, err)
		assert.Len(t, path, 4)
		assert.False(t, Imminent(g, 4, 1))
	})
}
