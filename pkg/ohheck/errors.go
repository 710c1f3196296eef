package ohheck

import (
	"errors"
	"fmt"
)

// ErrIllegalBid is the root of every rejected bid
var ErrIllegalBid = errors.New("illegal bid")

// ErrBidOutOfRange happens when a bid is negative or more than the hand size
var ErrBidOutOfRange = fmt.Errorf("%w: bid must be between zero and the hand size", ErrIllegalBid)

// ErrDealerHooked happens when the dealer's bid would make the total bids equal the hand size
var ErrDealerHooked = fmt.Errorf("%w: the dealer cannot make the bids add up to the hand size", ErrIllegalBid)

// ErrInvalidPlay is the root of every rejected card
var ErrInvalidPlay = errors.New("invalid play")

// ErrCardNotInPlayersHand happens when the player tries to play a card they don't have
var ErrCardNotInPlayersHand = fmt.Errorf("%w: card is not in player's hand", ErrInvalidPlay)

// ErrPlayOnSuit happens when a player holds the lead suit and plays another suit
var ErrPlayOnSuit = fmt.Errorf("%w: player has an on-suit card", ErrInvalidPlay)

// ErrOutOfTurn is returned when a command is sent for a player who is not active
var ErrOutOfTurn = errors.New("not player's turn")

// ErrNotHumanPlayer is returned when a command is sent for a computer-controlled seat
var ErrNotHumanPlayer = errors.New("player is not controlled by a human")

// ErrUnknownPlayer is returned when no seat has the player ID
var ErrUnknownPlayer = errors.New("player not found with that ID")

// ErrGameIsOver is an error when an action is attempted on an ended game
var ErrGameIsOver = errors.New("game is over")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected at least %d players, got %d", p.Min, p.Got)
}

// HandSizeError happens when the largest hand cannot be dealt from one deck
type HandSizeError struct {
	Players  int
	HandSize int
}

func (h HandSizeError) Error() string {
	if h.HandSize < 1 {
		return "hand size must be at least 1"
	}

	return fmt.Sprintf("cannot deal %d cards to %d players plus a trump card from one deck", h.HandSize, h.Players)
}
