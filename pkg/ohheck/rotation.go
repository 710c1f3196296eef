package ohheck

import (
	"ohheck-server/pkg/deck"
)

// Rotation is the fixed seating order with a pointer to the active seat and the dealer
type Rotation struct {
	players []*Player
	current int
	dealer  int
}

// NewRotation returns a rotation where the seat after the dealer acts first
func NewRotation(players []*Player, dealer int) *Rotation {
	if len(players) == 0 {
		panic("rotation requires at least one player")
	}

	if dealer < 0 || dealer >= len(players) {
		panic("dealer is not seated")
	}

	return &Rotation{
		players: players,
		dealer:  dealer,
		current: (dealer + 1) % len(players),
	}
}

// Len is the number of seats
func (r *Rotation) Len() int {
	return len(r.players)
}

// Players returns the players in seat order
func (r *Rotation) Players() []*Player {
	return append([]*Player{}, r.players...)
}

// Current returns the player whose turn it is
func (r *Rotation) Current() *Player {
	return r.players[r.current]
}

// Dealer returns the player who dealt the hand
func (r *Rotation) Dealer() *Player {
	return r.players[r.dealer]
}

// IsDealer returns true if the player dealt the hand
func (r *Rotation) IsDealer(p *Player) bool {
	return r.Dealer() == p
}

// Next passes the turn to the next seat
func (r *Rotation) Next() {
	r.current = (r.current + 1) % len(r.players)
}

// SetTurn passes the turn to the player
func (r *Rotation) SetTurn(p *Player) {
	for i, player := range r.players {
		if player == p {
			r.current = i
			return
		}
	}

	panic("player is not seated")
}

// NextDealer moves the deal one seat over and gives the turn to the seat after the new dealer
func (r *Rotation) NextDealer() {
	r.dealer = (r.dealer + 1) % len(r.players)
	r.current = (r.dealer + 1) % len(r.players)
}

// Order returns the players starting with the active seat
func (r *Rotation) Order() []*Player {
	order := make([]*Player, len(r.players))
	for i := range r.players {
		order[i] = r.players[(r.current+i)%len(r.players)]
	}

	return order
}

// TotalBids is the sum of the bids made so far
func (r *Rotation) TotalBids() int {
	total := 0
	for _, p := range r.players {
		if bid, ok := p.Bid(); ok {
			total += bid
		}
	}

	return total
}

// AllBid returns true once every player has bid
func (r *Rotation) AllBid() bool {
	for _, p := range r.players {
		if !p.hasBid {
			return false
		}
	}

	return true
}

// AllPlayed returns true once every player has played into the current trick
func (r *Rotation) AllPlayed() bool {
	for _, p := range r.players {
		if p.cardPlayed == nil {
			return false
		}
	}

	return true
}

// HandsEmpty returns true once every card of the hand has been played
func (r *Rotation) HandsEmpty() bool {
	for _, p := range r.players {
		if len(p.hand) > 0 {
			return false
		}
	}

	return true
}

// Leader returns the player with the highest score.
// Players are visited starting with the active seat and only a strictly higher score takes the lead.
func (r *Rotation) Leader() *Player {
	var leader *Player
	for _, p := range r.Order() {
		if leader == nil || p.score > leader.score {
			leader = p
		}
	}

	return leader
}

// BidRequest returns what the active seat sees when it bids
func (r *Rotation) BidRequest(handSize int, trump deck.Suit) *BidRequest {
	p := r.Current()
	return &BidRequest{
		Hand:      p.Hand(),
		HandSize:  handSize,
		Trump:     trump,
		TotalBids: r.TotalBids(),
		IsDealer:  r.IsDealer(p),
	}
}

// PlayRequest returns what the active seat sees when it plays a card
func (r *Rotation) PlayRequest(trump deck.Suit, led []*PlayedCard) *PlayRequest {
	p := r.Current()
	return &PlayRequest{
		Hand:   p.Hand(),
		Trump:  trump,
		Led:    append([]*PlayedCard{}, led...),
		Bid:    p.bid,
		Tricks: p.tricks,
	}
}

// pollBid asks the active seat for a bid.
// When a valid bid comes back it is recorded and the turn passes. A nil player means no decision yet.
func (r *Rotation) pollBid(handSize int, trump deck.Suit) (*Player, int, error) {
	p := r.Current()
	if p.hasBid {
		panic("player has already bid this hand")
	}

	req := r.BidRequest(handSize, trump)
	bid, ok := p.agent.Bid(req)
	if !ok {
		return nil, 0, nil
	}

	if err := req.Validate(bid); err != nil {
		return nil, 0, err
	}

	p.setBid(bid)
	r.Next()
	return p, bid, nil
}

// pollCard asks the active seat for a card.
// When a valid card comes back it leaves the player's hand and the turn passes. nil means no decision yet.
func (r *Rotation) pollCard(trump deck.Suit, led []*PlayedCard) (*PlayedCard, error) {
	p := r.Current()
	if p.cardPlayed != nil {
		panic("player has already played into this trick")
	}

	req := r.PlayRequest(trump, led)
	card, ok := p.agent.PlayCard(req)
	if !ok {
		return nil, nil
	}

	if err := req.Validate(card); err != nil {
		return nil, err
	}

	played, err := p.playerDidPlayCard(card)
	if err != nil {
		return nil, err
	}

	r.Next()
	return &PlayedCard{Card: played, Player: p}, nil
}
