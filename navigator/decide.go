package navigator

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/maze"
	"github.com/beka-birhanu/pony-escape/pathfinding"
	"github.com/beka-birhanu/pony-escape/threat"
)

// Planning errors.
var (
	ErrUnreachable = errors.New("exit is unreachable")
	ErrAtExit      = errors.New("agent already stands on the exit")
	ErrNoGrid      = errors.New("snapshot has no grid")
)

// Decision is the move chosen for one step of a run.
type Decision struct {
	Direction maze.Direction   // Direction to submit
	Planned   maze.Direction   // First step of the shortest path to the exit
	Deviated  bool             // Deviated is set when the planned step was replaced to avoid the hunter
	Path      []int            // Planned path from the agent to the exit
	Route     []maze.Direction // Planned path decoded into moves
}

// Decide plans a shortest path to the exit and picks the next move. When the hunter
// is imminent and stands in the planned direction, a random other open move is
// chosen instead; if there is none the planned move is kept.
func Decide(s *domain.Snapshot, rnd *rand.Rand) (Decision, error) {
	if s.Grid == nil {
		return Decision{}, ErrNoGrid
	}
	g := s.Grid

	path, err := pathfinding.ShortestPath(g, s.Agent, s.Exit)
	if err != nil {
		if errors.Is(err, pathfinding.ErrNoPath) {
			return Decision{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		return Decision{}, err
	}
	if len(path) < 2 {
		return Decision{}, ErrAtExit
	}

	route, err := maze.PathDirections(path, g.Width())
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{
		Direction: route[0],
		Planned:   route[0],
		Path:      path,
		Route:     route,
	}

	threatened, ok := threat.Direction(s.Hunter, s.Agent, g.Width())
	if !ok || threatened != decision.Planned || !threat.Imminent(g, s.Agent, s.Hunter) {
		return decision, nil
	}

	alternatives := slices.DeleteFunc(g.AvailableMoves(s.Agent), func(d maze.Direction) bool {
		return d == threatened
	})
	if len(alternatives) > 0 {
		decision.Direction = alternatives[rnd.Intn(len(alternatives))]
		decision.Deviated = true
	}
	return decision, nil
}
