package ohheck

import (
	"ohheck-server/pkg/deck"
)

// Agent decides what a seat does.
// The engine polls the agent of the active seat on every tick. An agent that
// is not ready yet returns false and is asked again on the next tick.
type Agent interface {
	Bid(req *BidRequest) (bid int, ok bool)
	PlayCard(req *PlayRequest) (card *deck.Card, ok bool)
	Reset()
}

// BidRequest is everything a seat can see when it bids
type BidRequest struct {
	Hand      deck.Hand
	HandSize  int
	Trump     deck.Suit
	TotalBids int
	IsDealer  bool
}

// ForbiddenBid returns the bid the dealer may not make, or -1 if every bid in range is allowed
func (b *BidRequest) ForbiddenBid() int {
	if !b.IsDealer {
		return -1
	}

	forbidden := b.HandSize - b.TotalBids
	if forbidden < 0 {
		return -1
	}

	return forbidden
}

// Validate returns an error if the bid is not allowed
func (b *BidRequest) Validate(bid int) error {
	if bid < 0 || bid > b.HandSize {
		return ErrBidOutOfRange
	}

	if bid == b.ForbiddenBid() {
		return ErrDealerHooked
	}

	return nil
}

// PlayRequest is everything a seat can see when it plays a card
type PlayRequest struct {
	Hand   deck.Hand
	Trump  deck.Suit
	Led    []*PlayedCard
	Bid    int
	Tricks int
}

// Leading returns true if the seat plays the first card of the trick
func (p *PlayRequest) Leading() bool {
	return len(p.Led) == 0
}

// LeadSuit returns the suit of the first card in the trick
func (p *PlayRequest) LeadSuit() (deck.Suit, bool) {
	if p.Leading() {
		return "", false
	}

	return p.Led[0].Card.Suit, true
}

// Eligible returns the cards that may be played
func (p *PlayRequest) Eligible() deck.Hand {
	lead, ok := p.LeadSuit()
	if !ok {
		return p.Hand.Clone()
	}

	return Eligible(p.Hand, lead)
}

// Validate returns an error if the card may not be played
func (p *PlayRequest) Validate(card *deck.Card) error {
	if card == nil || !p.Hand.HasCard(card) {
		return ErrCardNotInPlayersHand
	}

	if !p.Eligible().HasCard(card) {
		return ErrPlayOnSuit
	}

	return nil
}

// Eligible returns the cards of the lead suit, or the whole hand if the player is void in it
func Eligible(hand deck.Hand, lead deck.Suit) deck.Hand {
	if onSuit := hand.OfSuit(lead); len(onSuit) > 0 {
		return onSuit
	}

	return hand.Clone()
}
