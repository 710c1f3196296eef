package ohheck

import (
	"fmt"
	"ohheck-server/internal/rng"
	"ohheck-server/pkg/deck"
	"time"

	"github.com/coder/quartz"
)

// MinPlayers is the fewest seats a game can have
const MinPlayers = 2

// Delays are how long each display phase is shown before the game moves on
type Delays struct {
	Deal         time.Duration
	SelectWinner time.Duration
	TrickResult  time.Duration
	HandResult   time.Duration
	GameResult   time.Duration
}

// Options are options for creating a new game
type Options struct {
	StartHandSize int
	FinalHandSize int
	// Dealer is the seat index of the first dealer, -1 picks one at random
	Dealer       int
	ThinkTime    time.Duration
	TickInterval time.Duration
	Delays       Delays

	Clock quartz.Clock
	RNG   rng.Generator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		StartHandSize: 1,
		FinalHandSize: 9,
		Dealer:        -1,
		ThinkTime:     500 * time.Millisecond,
		TickInterval:  50 * time.Millisecond,
		Delays: Delays{
			Deal:         0,
			SelectWinner: time.Second,
			TrickResult:  2 * time.Second,
			HandResult:   3 * time.Second,
			GameResult:   10 * time.Second,
		},
	}
}

// withDefaults fills in the collaborators that were left empty
func (o Options) withDefaults() Options {
	if o.StartHandSize == 0 {
		o.StartHandSize = 1
	}

	if o.FinalHandSize == 0 {
		o.FinalHandSize = 9
	}

	if o.TickInterval == 0 {
		o.TickInterval = 50 * time.Millisecond
	}

	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}

	if o.RNG == nil {
		o.RNG = rng.Crypto{}
	}

	return o
}

// validate checks that every hand of the game can be dealt
func (o Options) validate(players int) error {
	if players < MinPlayers {
		return PlayerCountError{Min: MinPlayers, Got: players}
	}

	if o.StartHandSize < 1 || o.FinalHandSize < 1 {
		return HandSizeError{Players: players, HandSize: min(o.StartHandSize, o.FinalHandSize)}
	}

	largest := max(o.StartHandSize, o.FinalHandSize)
	if players*largest+1 > deck.Size {
		return HandSizeError{Players: players, HandSize: largest}
	}

	if o.TickInterval < 0 {
		return fmt.Errorf("tick interval must be positive, got %s", o.TickInterval)
	}

	if o.Dealer >= players {
		return fmt.Errorf("dealer seat %d is out of range for %d players", o.Dealer, players)
	}

	return nil
}
