package domain

import "fmt"

// OutcomeKind classifies how a run ended.
type OutcomeKind int

const (
	OutcomeAborted OutcomeKind = iota
	OutcomeSolved
	OutcomeCaught
	OutcomeEnded
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSolved:
		return "solved"
	case OutcomeCaught:
		return "caught"
	case OutcomeEnded:
		return "ended"
	}
	return "aborted"
}

// Outcome is the terminal result of a run.
type Outcome struct {
	Kind        OutcomeKind
	MazeID      string
	Moves       int
	StateResult string
	HiddenURL   string
}

// OutcomeFromState maps a terminal service state onto an outcome kind.
func OutcomeFromState(s State) OutcomeKind {
	switch s {
	case StateWon:
		return OutcomeSolved
	case StateOver:
		return OutcomeCaught
	case StateActive:
		return OutcomeAborted
	}
	return OutcomeEnded
}

func (o Outcome) String() string {
	s := fmt.Sprintf("%s after %d moves: %s", o.Kind, o.Moves, o.StateResult)
	if o.HiddenURL != "" {
		s += " (" + o.HiddenURL + ")"
	}
	return s
}
