package ohheck

import (
	"ohheck-server/pkg/deck"
	"time"

	"github.com/coder/quartz"
)

// ComputerAgent makes decisions for a seat after a thinking delay
type ComputerAgent struct {
	clock     quartz.Clock
	thinkTime time.Duration

	thinking  bool
	startedAt time.Time
}

// NewComputerAgent returns a computer agent that waits thinkTime before each decision
func NewComputerAgent(clock quartz.Clock, thinkTime time.Duration) *ComputerAgent {
	return &ComputerAgent{
		clock:     clock,
		thinkTime: thinkTime,
	}
}

// ready starts the thinking timer on the first poll and returns true once it has run out
func (c *ComputerAgent) ready() bool {
	now := c.clock.Now()
	if !c.thinking {
		c.thinking = true
		c.startedAt = now
	}

	if now.Sub(c.startedAt) < c.thinkTime {
		return false
	}

	c.thinking = false
	return true
}

// Bid returns a bid once the agent is done thinking
func (c *ComputerAgent) Bid(req *BidRequest) (int, bool) {
	if !c.ready() {
		return 0, false
	}

	return ChooseBid(req), true
}

// PlayCard returns a card once the agent is done thinking
func (c *ComputerAgent) PlayCard(req *PlayRequest) (*deck.Card, bool) {
	if !c.ready() {
		return nil, false
	}

	return ChooseCard(req), true
}

// Reset stops any thinking in progress
func (c *ComputerAgent) Reset() {
	c.thinking = false
}

// ChooseBid bids one trick for every trump and every other card ranked jack or higher.
// A dealer who would hit the forbidden total moves one away from it.
func ChooseBid(req *BidRequest) int {
	bid := 0
	for _, card := range req.Hand {
		if card.Suit == req.Trump {
			bid++
		} else if card.Rank >= deck.Jack {
			bid++
		}
	}

	if bid == req.ForbiddenBid() {
		if bid > 0 {
			bid--
		} else {
			bid++
		}
	}

	return bid
}

// ChooseCard picks a card to play
func ChooseCard(req *PlayRequest) *deck.Card {
	hand := req.Hand
	if len(hand) == 1 {
		return hand[0]
	}

	wantTrick := req.Bid > req.Tricks
	trumps := hand.OfSuit(req.Trump)
	others := hand.NotOfSuit(req.Trump)

	lead, following := req.LeadSuit()
	if !following {
		if wantTrick {
			if len(others) > 0 {
				return others.Highest()
			}

			return trumps.Highest()
		}

		if len(trumps) > 0 {
			return trumps.Lowest()
		}

		return hand.Lowest()
	}

	eligible := Eligible(hand, lead)
	best := DetermineWinner(req.Led, req.Trump).Card

	if hand.HasSuit(lead) {
		if !wantTrick {
			return eligible.Lowest()
		}

		card := eligible.Highest()
		if len(eligible) > 1 && IsGreater(best, card, req.Trump) {
			card = eligible.Lowest()
		}

		return card
	}

	if len(trumps) == 0 {
		if wantTrick {
			return eligible.Lowest()
		}

		return eligible.Highest()
	}

	if !wantTrick {
		return trumps.Lowest()
	}

	card := trumps.Highest()
	if IsGreater(best, card, req.Trump) {
		if len(others) > 0 {
			return others.Lowest()
		}

		return trumps.Lowest()
	}

	return card
}
