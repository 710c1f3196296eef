package main

import (
	"errors"
	"fmt"
	"io"
	"ohheck-server/pkg/deck"
	"ohheck-server/pkg/ohheck"
	"ohheck-server/pkg/playable"
	"strconv"
	"strings"

	"github.com/coder/quartz"
)

const defaultWidth = 60

var errQuit = errors.New("quit")

// terminal plays one game for a single human on a line-oriented terminal
type terminal struct {
	out     io.Writer
	game    *ohheck.Game
	humanID int64
	width   int

	lastPhase ohheck.Phase
	prompted  bool
}

func newTerminal(out io.Writer, game *ohheck.Game, humanID int64, width int) *terminal {
	if width <= 0 || width > 120 {
		width = defaultWidth
	}

	return &terminal{
		out:       out,
		game:      game,
		humanID:   humanID,
		width:     width,
		lastPhase: -1,
	}
}

// run owns the game: ticks and commands are handled on this goroutine only
func (t *terminal) run(clock quartz.Clock, lines <-chan string) error {
	ticker := clock.NewTicker(t.game.Interval(), "terminal")
	defer ticker.Stop()

	t.printf("Commands: bid N, play CARD (e.g. play 14s), hand, scores, quit\n")

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			if err := t.command(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				t.printf("%s\n", err)
			}
		case <-ticker.C:
			updated, err := t.game.Tick()
			if err != nil {
				return err
			}

			t.printLogs()
			if updated {
				t.render()
			}

			if t.game.IsGameOver() {
				return nil
			}
		}
	}
}

func (t *terminal) command(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "bid", "b":
		if len(fields) != 2 {
			return errors.New("usage: bid N")
		}

		bid, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%q is not a number", fields[1])
		}

		return t.game.SubmitBid(t.humanID, bid)
	case "play", "p":
		if len(fields) != 2 {
			return errors.New("usage: play CARD")
		}

		card, err := deck.ParseCard(fields[1])
		if err != nil {
			return err
		}

		return t.game.SubmitCard(t.humanID, card)
	case "hand", "h":
		p, _ := t.game.Player(t.humanID)
		t.printf("Your hand: %s\n", formatCards(p.Hand()))
		return nil
	case "scores", "s":
		t.printScores()
		return nil
	case "quit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

// render prints what changed since the last update
func (t *terminal) render() {
	g := t.game
	phase := g.Phase()
	if phase != t.lastPhase {
		switch phase {
		case ohheck.PhaseBidding:
			t.rule()
			t.printf("Hand %d: %d card(s), trump is %s, %s deals\n", g.HandNumber(), g.HandSize(), g.TrumpCard(), g.Dealer().Name)
		case ohheck.PhaseHandResult:
			t.printHandResults()
		case ohheck.PhaseGameResult:
			t.rule()
			t.printScores()
			if winner := g.Winner(); winner != nil {
				t.printf("%s wins the game\n", winner.Name)
			}
		}

		t.lastPhase = phase
	}

	p := g.WhoseTurn()
	if p == nil || p.PlayerID != t.humanID {
		t.prompted = false
		return
	}

	if t.prompted {
		return
	}

	t.prompted = true
	t.printf("Your hand: %s\n", formatCards(p.Hand()))
	if phase == ohheck.PhaseBidding {
		if forbidden := g.ForbiddenBid(t.humanID); forbidden >= 0 {
			t.printf("Your bid (0-%d, not %d): ", g.HandSize(), forbidden)
		} else {
			t.printf("Your bid (0-%d): ", g.HandSize())
		}

		return
	}

	if trick := g.CurrentTrick(); len(trick) > 0 {
		played := make([]string, len(trick))
		for i, pc := range trick {
			played[i] = fmt.Sprintf("%s %s", pc.Player.Name, pc.Card)
		}

		t.printf("On the table: %s\n", strings.Join(played, ", "))
	}

	t.printf("Your play (%s): ", formatCards(g.PlayableCards(t.humanID)))
}

func (t *terminal) printHandResults() {
	t.rule()
	for _, result := range t.game.HandResults() {
		made := "missed"
		if result.Made {
			made = "made"
		}

		t.printf("%-10s bid %d, took %d, %s %+d\n", result.Player.Name, result.Bid, result.Tricks, made, result.Delta)
	}
}

func (t *terminal) printScores() {
	for _, p := range t.game.Players() {
		t.printf("%-10s %4d\n", p.Name, p.Score())
	}
}

func (t *terminal) printLogs() {
	for {
		select {
		case msgs := <-t.game.LogChan():
			for _, msg := range msgs {
				t.printf("%s\n", formatLogMessage(t.game, msg))
			}
		default:
			return
		}
	}
}

func (t *terminal) rule() {
	t.printf("%s\n", strings.Repeat("-", t.width))
}

func (t *terminal) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(t.out, format, a...)
}

// formatLogMessage replaces each {} in the message with the name of the next player in the message
func formatLogMessage(game *ohheck.Game, msg *playable.LogMessage) string {
	text := msg.Message
	for _, id := range msg.PlayerIDs {
		name := "?"
		if p, ok := game.Player(id); ok {
			name = p.Name
		}

		text = strings.Replace(text, "{}", name, 1)
	}

	return text
}

// formatCards shows each card, grouped by suit, with the code used to play it
func formatCards(cards deck.Hand) string {
	cards = cards.Sorted()
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = fmt.Sprintf("%s[%s]", card, deck.CardToString(card))
	}

	return strings.Join(s, " ")
}
