package main

import (
	"fmt"
	"io"
	"ohheck-server/internal/rng"
	"ohheck-server/pkg/ohheck"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
)

// maxTicks bounds a single simulated game, a finished game needs a few hundred
const maxTicks = 100000

type SimulateCmd struct {
	Games int   `default:"100" help:"Number of games to play"`
	Seed  int64 `default:"0" help:"RNG seed (0 for random)"`
}

func (s *SimulateCmd) Run() error {
	_, err := simulate(os.Stdout, s.Games, s.Seed)
	return err
}

type simulationSummary struct {
	Games  int
	Wins   map[string]int
	Scores map[string]int
	// Deals holds the deck fingerprint of every hand, per game
	Deals [][]string
}

func (s *simulationSummary) average(name string) float64 {
	if s.Games == 0 {
		return 0
	}

	return float64(s.Scores[name]) / float64(s.Games)
}

func simulationSeats() []ohheck.Seat {
	return []ohheck.Seat{
		{PlayerID: 1, Name: "Tom"},
		{PlayerID: 2, Name: "Max"},
		{PlayerID: 3, Name: "Dan"},
		{PlayerID: 4, Name: "Ann"},
	}
}

// simulate plays computer-only games without any delays
// Game n uses seed+n when a seed is given, so a run can be reproduced
func simulate(w io.Writer, games int, seed int64) (*simulationSummary, error) {
	summary := &simulationSummary{
		Wins:   make(map[string]int),
		Scores: make(map[string]int),
	}

	for i := 0; i < games; i++ {
		var gameSeed int64
		if seed != 0 {
			gameSeed = seed + int64(i)
		}

		game, err := ohheck.NewGame(logrus.StandardLogger(), simulationSeats(), ohheck.Options{
			Dealer: -1,
			RNG:    rng.New(gameSeed),
		})
		if err != nil {
			return nil, err
		}

		deals, err := playToEnd(game)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		winner := game.Winner()
		summary.Games++
		summary.Deals = append(summary.Deals, deals)
		summary.Wins[winner.Name]++
		for _, p := range game.Players() {
			summary.Scores[p.Name] += p.Score()
		}

		fmt.Fprintf(w, "game %d (deck %.8s): %s wins with %d\n", i+1, deals[0], winner.Name, winner.Score())
	}

	names := make([]string, 0, len(summary.Scores))
	for name := range summary.Scores {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "\n%-8s %6s %10s\n", "player", "wins", "avg score")
	for _, name := range names {
		fmt.Fprintf(w, "%-8s %6d %10.1f\n", name, summary.Wins[name], summary.average(name))
	}

	return summary, nil
}

// playToEnd ticks the game until it is over and checks every hand as it finishes
// It returns the deal fingerprint of each hand in order
func playToEnd(game *ohheck.Game) ([]string, error) {
	deals := []string{game.DealHash()}
	expectedSize := 1
	checkedHand := 0
	handNumber := game.HandNumber()

	for i := 0; i < maxTicks; i++ {
		if game.IsGameOver() {
			if expectedSize != 10 {
				return nil, fmt.Errorf("game ended after hand size %d", expectedSize-1)
			}

			return deals, nil
		}

		if _, err := game.Tick(); err != nil {
			return nil, err
		}

		drainLogs(game)

		if game.HandNumber() != handNumber {
			handNumber = game.HandNumber()
			deals = append(deals, game.DealHash())
		}

		if game.Phase() != ohheck.PhaseHandResult || checkedHand == game.HandNumber() {
			continue
		}

		checkedHand = game.HandNumber()
		if err := checkHand(game, expectedSize); err != nil {
			return nil, fmt.Errorf("hand %d: %w", checkedHand, err)
		}
		expectedSize++
	}

	return nil, fmt.Errorf("game did not finish after %d ticks", maxTicks)
}

func checkHand(game *ohheck.Game, expectedSize int) error {
	if game.HandSize() != expectedSize {
		return fmt.Errorf("expected hand size %d, got %d", expectedSize, game.HandSize())
	}

	bids := 0
	tricks := 0
	for _, result := range game.HandResults() {
		bids += result.Bid
		tricks += result.Tricks
	}

	if tricks != game.HandSize() {
		return fmt.Errorf("%d tricks were won in a hand of %d", tricks, game.HandSize())
	}

	if bids == game.HandSize() {
		return fmt.Errorf("bids add up to the hand size %d", bids)
	}

	return nil
}

func drainLogs(game *ohheck.Game) {
	for {
		select {
		case <-game.LogChan():
		default:
			return
		}
	}
}
