package ohheck

import (
	"ohheck-server/pkg/deck"
)

// HumanAgent holds the most recent command sent by a person.
// Commands are validated by the game before they are stored, and consumed the next time the seat is polled.
type HumanAgent struct {
	bid  *int
	card *deck.Card
}

// NewHumanAgent returns an agent with no pending command
func NewHumanAgent() *HumanAgent {
	return &HumanAgent{}
}

// Bid returns the pending bid
func (h *HumanAgent) Bid(_ *BidRequest) (int, bool) {
	if h.bid == nil {
		return 0, false
	}

	bid := *h.bid
	h.bid = nil
	return bid, true
}

// PlayCard returns the pending card
func (h *HumanAgent) PlayCard(_ *PlayRequest) (*deck.Card, bool) {
	if h.card == nil {
		return nil, false
	}

	card := h.card
	h.card = nil
	return card, true
}

// Reset drops any pending command
func (h *HumanAgent) Reset() {
	h.bid = nil
	h.card = nil
}

func (h *HumanAgent) submitBid(bid int) {
	h.bid = &bid
}

func (h *HumanAgent) submitCard(card *deck.Card) {
	h.card = card
}
