package ohheck

import "fmt"

// Phase is a state of the round engine.
// The engine moves through the phases in declaration order, looping back to
// PhaseTrickPlay after each trick and to PhaseDealing after each hand.
type Phase int

const (
	PhaseDealing Phase = iota
	PhaseBidding
	PhaseTrickPlay
	PhaseResolvingTrick
	PhaseTrickResult
	PhaseHandResult
	PhaseGameResult
	PhaseTerminal
)

var phaseNames = map[Phase]string{
	PhaseDealing:        "dealing",
	PhaseBidding:        "bidding",
	PhaseTrickPlay:      "trickPlay",
	PhaseResolvingTrick: "resolvingTrick",
	PhaseTrickResult:    "trickResult",
	PhaseHandResult:     "handResult",
	PhaseGameResult:     "gameResult",
	PhaseTerminal:       "terminal",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}

	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
