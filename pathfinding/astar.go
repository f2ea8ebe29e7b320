// Package pathfinding finds shortest routes through a maze with A* search.
//
// Every move costs one step and the heuristic is the straight-line distance
// between cell coordinates, which never overestimates on a four-connected grid.
package pathfinding

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/pony-escape/maze"
)

// ErrNoPath is returned when the goal cannot be reached from the start.
var ErrNoPath = errors.New("no path between positions")

// Graph is the maze view needed by the search.
type Graph interface {
	Width() int
	Height() int
	InBound(pos int) bool
	AvailableMoves(pos int) []maze.Direction
}

const noParent = -1

// node is a search node stored in a per-call arena; parent is an arena index.
type node struct {
	position int
	parent   int
	g        int
	h        float64
	seq      int // insertion order, breaks f ties
	heapIdx  int // index in the open set, -1 once expanded
}

func (n *node) f() float64 {
	return float64(n.g) + n.h
}

// search owns every node created by a single ShortestPath call.
type search struct {
	graph    Graph
	goal     int
	arena    []node
	explored map[int]int // position -> arena index of its node
	open     openSet
}

// ShortestPath returns the positions from start to goal inclusive.
// An unreachable goal yields ErrNoPath; positions outside the graph yield maze.ErrOutOfBounds.
func ShortestPath(g Graph, start, goal int) ([]int, error) {
	if !g.InBound(start) || !g.InBound(goal) {
		return nil, fmt.Errorf("%w: search %d -> %d", maze.ErrOutOfBounds, start, goal)
	}

	s := &search{
		graph:    g,
		goal:     goal,
		explored: make(map[int]int),
	}
	s.open.arena = &s.arena
	s.push(start, noParent, 0)

	for s.open.Len() > 0 {
		current := heap.Pop(&s.open).(int)
		if s.arena[current].position == goal {
			return s.reconstruct(current), nil
		}
		s.expand(current)
	}

	return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, start, goal)
}

// expand generates the children of an expanded node, relaxing those still in the open set.
func (s *search) expand(current int) {
	from := s.arena[current].position
	g := s.arena[current].g + 1

	for _, d := range s.graph.AvailableMoves(from) {
		child, err := maze.Apply(from, d, s.graph.Width(), s.graph.Height())
		if err != nil {
			continue
		}

		idx, seen := s.explored[child]
		if !seen {
			s.push(child, current, g)
			continue
		}

		// Closed nodes are never reopened.
		n := &s.arena[idx]
		if n.heapIdx >= 0 && g < n.g {
			n.g = g
			n.parent = current
			heap.Fix(&s.open, n.heapIdx)
		}
	}
}

func (s *search) push(position, parent, g int) {
	idx := len(s.arena)
	s.arena = append(s.arena, node{
		position: position,
		parent:   parent,
		g:        g,
		h:        s.heuristic(position),
		seq:      idx,
		heapIdx:  -1,
	})
	s.explored[position] = idx
	heap.Push(&s.open, idx)
}

// heuristic is the Euclidean distance between pos and the goal in cell coordinates.
func (s *search) heuristic(pos int) float64 {
	w := s.graph.Width()
	dr := float64(pos/w - s.goal/w)
	dc := float64(pos%w - s.goal%w)
	return math.Sqrt(dr*dr + dc*dc)
}

// reconstruct walks parent links back to the root and reverses them.
func (s *search) reconstruct(idx int) []int {
	var path []int
	for ; idx != noParent; idx = s.arena[idx].parent {
		path = append(path, s.arena[idx].position)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// openSet is a min-heap of arena indices ordered by f, then insertion order.
type openSet struct {
	arena *[]node
	items []int
}

func (o openSet) Len() int { return len(o.items) }

func (o openSet) Less(i, j int) bool {
	a, b := &(*o.arena)[o.items[i]], &(*o.arena)[o.items[j]]
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	return a.seq < b.seq
}

func (o openSet) Swap(i, j int) {
	o.items[i], o.items[j] = o.items[j], o.items[i]
	(*o.arena)[o.items[i]].heapIdx = i
	(*o.arena)[o.items[j]].heapIdx = j
}

func (o *openSet) Push(x any) {
	idx := x.(int)
	(*o.arena)[idx].heapIdx = len(o.items)
	o.items = append(o.items, idx)
}

func (o *openSet) Pop() any {
	n := len(o.items)
	idx := o.items[n-1]
	o.items = o.items[:n-1]
	(*o.arena)[idx].heapIdx = -1
	return idx
}
