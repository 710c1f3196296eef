package ohheck

import (
	"ohheck-server/pkg/deck"
)

// Player is an individual seat in the game
// The bookkeeping lives here; decisions come from the seat's Agent
type Player struct {
	PlayerID int64
	Name     string

	agent      Agent
	hand       deck.Hand
	score      int
	bid        int
	hasBid     bool
	tricks     int
	cardPlayed *deck.Card
}

// NewPlayer returns a new player
func NewPlayer(pid int64, name string, agent Agent) *Player {
	return &Player{
		PlayerID: pid,
		Name:     name,
		agent:    agent,
		hand:     make(deck.Hand, 0),
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Score is the player's running score
func (p *Player) Score() int {
	return p.score
}

// Bid returns the player's bid for the hand and whether they have bid yet
func (p *Player) Bid() (int, bool) {
	return p.bid, p.hasBid
}

// Tricks is the number of tricks won this hand
func (p *Player) Tricks() int {
	return p.tricks
}

// CardPlayed is the card the player played into the current trick, or nil
func (p *Player) CardPlayed() *deck.Card {
	return p.cardPlayed
}

// IsHuman returns true if the seat takes commands from a person
func (p *Player) IsHuman() bool {
	_, ok := p.agent.(*HumanAgent)
	return ok
}

func (p *Player) humanAgent() (*HumanAgent, bool) {
	h, ok := p.agent.(*HumanAgent)
	return h, ok
}

func (p *Player) giveCards(hand deck.Hand) {
	p.hand = hand
}

func (p *Player) setBid(bid int) {
	p.bid = bid
	p.hasBid = true
}

// playerDidPlayCard removes the card from the player's hand
func (p *Player) playerDidPlayCard(card *deck.Card) (*deck.Card, error) {
	played, ok := p.hand.Remove(card)
	if !ok {
		return nil, ErrCardNotInPlayersHand
	}

	p.cardPlayed = played
	return played, nil
}

// WonTrick marks the player as winning a trick
func (p *Player) WonTrick() {
	p.tricks++
}

// nextTrick clears the card played into the last trick
func (p *Player) nextTrick() {
	p.cardPlayed = nil
}

// tallyScore applies the hand's score to the running total and clears the bid and tricks.
// It returns the change in score.
func (p *Player) tallyScore() int {
	delta := ScoreHand(p.bid, p.tricks)
	p.score += delta
	p.bid = 0
	p.tricks = 0
	return delta
}

// newHand resets everything that only lives for one hand
func (p *Player) newHand() {
	p.bid = 0
	p.hasBid = false
	p.tricks = 0
	p.cardPlayed = nil
	p.hand = make(deck.Hand, 0)
	p.agent.Reset()
}

// ScoreHand returns the points for a hand.
// Making the bid exactly earns 10 plus 2 per trick bid. Missing it costs 5 per trick over or under.
func ScoreHand(bid, tricks int) int {
	if bid == tricks {
		return 10 + 2*bid
	}

	diff := bid - tricks
	if diff < 0 {
		diff = -diff
	}

	return -5 * diff
}
