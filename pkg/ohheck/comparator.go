package ohheck

import "ohheck-server/pkg/deck"

// PlayedCard is a card played into a trick
type PlayedCard struct {
	Card   *deck.Card
	Player *Player
}

// IsGreater returns true if a beats b.
// A card beats another of its own suit by rank, and a trump beats any card that is not a trump.
func IsGreater(a, b *deck.Card, trump deck.Suit) bool {
	if a.Suit == b.Suit {
		return a.HigherRank(b)
	}

	return a.Suit == trump
}

// DetermineWinner returns the winning card of a trick.
// Each card is compared against the winner so far, so ties stay with the earlier card.
// Evaluating an empty trick is a programming error and panics.
func DetermineWinner(trick []*PlayedCard, trump deck.Suit) *PlayedCard {
	if len(trick) == 0 {
		panic("cannot determine the winner of an empty trick")
	}

	winner := trick[0]
	for _, pc := range trick[1:] {
		if IsGreater(pc.Card, winner.Card, trump) {
			winner = pc
		}
	}

	return winner
}

// isTrumped returns true if the winning card is a trump and the led card was not
func isTrumped(trick []*PlayedCard, winner *PlayedCard, trump deck.Suit) bool {
	return winner.Card.Suit == trump && trick[0].Card.Suit != trump
}
