// Package threat evaluates how close the hunter is to the agent.
package threat

import (
	"github.com/beka-birhanu/pony-escape/maze"
	"github.com/beka-birhanu/pony-escape/pathfinding"
)

// DangerPathLength is the longest hunter path, counted in positions including
// both ends, that is treated as an imminent threat.
const DangerPathLength = 2

// Direction returns the direction in which the hunter stands next to the agent.
// Diagonal, equal or farther positions report false.
func Direction(hunter, agent, width int) (maze.Direction, bool) {
	d, err := maze.DirectionOf(agent, hunter, width)
	if err != nil {
		return "", false
	}
	return d, true
}

// ShortHunterPath searches from the agent to the hunter. It is a proximity signal only.
func ShortHunterPath(g pathfinding.Graph, agent, hunter int) ([]int, error) {
	return pathfinding.ShortestPath(g, agent, hunter)
}

// Imminent reports whether the hunter can reach the agent within DangerPathLength positions.
func Imminent(g pathfinding.Graph, agent, hunter int) bool {
	path, err := ShortHunterPath(g, agent, hunter)
	if err != nil {
		return false
	}
	return len(path) <= DangerPathLength
}
