package ohheck

import (
	"ohheck-server/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubAgent struct {
	bid    int
	card   *deck.Card
	ready  bool
	resets int
}

func (s *stubAgent) Bid(_ *BidRequest) (int, bool) {
	return s.bid, s.ready
}

func (s *stubAgent) PlayCard(_ *PlayRequest) (*deck.Card, bool) {
	return s.card, s.ready
}

func (s *stubAgent) Reset() {
	s.resets++
}

func stubPlayers(n int) ([]*Player, []*stubAgent) {
	players := make([]*Player, n)
	agents := make([]*stubAgent, n)
	for i := range players {
		agents[i] = &stubAgent{ready: true}
		players[i] = NewPlayer(int64(i+1), "", agents[i])
	}

	return players, agents
}

func playerIDs(players []*Player) []int64 {
	ids := make([]int64, len(players))
	for i, p := range players {
		ids[i] = p.PlayerID
	}

	return ids
}

func TestRotation_turns(t *testing.T) {
	a := assert.New(t)

	players, _ := stubPlayers(4)
	r := NewRotation(players, 3)
	a.Equal(4, r.Len())
	a.Equal(players[3], r.Dealer())
	a.Equal(players[0], r.Current(), "seat after the dealer goes first")
	a.True(r.IsDealer(players[3]))

	r.Next()
	a.Equal(players[1], r.Current())
	a.Equal([]int64{2, 3, 4, 1}, playerIDs(r.Order()))

	r.SetTurn(players[3])
	a.Equal(players[3], r.Current())
	r.Next()
	a.Equal(players[0], r.Current())

	r.NextDealer()
	a.Equal(players[0], r.Dealer())
	a.Equal(players[1], r.Current())

	a.Equal([]int64{1, 2, 3, 4}, playerIDs(r.Players()))

	a.Panics(func() {
		r.SetTurn(NewPlayer(99, "", nil))
	})
	a.Panics(func() {
		NewRotation(players, 4)
	})
}

func TestRotation_Leader(t *testing.T) {
	a := assert.New(t)

	players, _ := stubPlayers(4)
	r := NewRotation(players, 0)

	players[0].score = 20
	players[2].score = 20
	players[3].score = -5

	a.Equal(players[2], r.Leader(), "ties go to the first player reached from the active seat")

	r.SetTurn(players[0])
	a.Equal(players[0], r.Leader())

	players[3].score = 21
	a.Equal(players[3], r.Leader())
}

func TestRotation_pollBid(t *testing.T) {
	a := assert.New(t)

	players, agents := stubPlayers(3)
	r := NewRotation(players, 2)
	for _, p := range players {
		p.giveCards(deck.CardsFromString("2c,3c"))
	}

	agents[0].ready = false
	p, _, err := r.pollBid(2, deck.Spades)
	a.NoError(err)
	a.Nil(p)
	a.Equal(players[0], r.Current())

	agents[0].ready = true
	agents[0].bid = 1
	p, bid, err := r.pollBid(2, deck.Spades)
	a.NoError(err)
	a.Equal(players[0], p)
	a.Equal(1, bid)
	a.Equal(players[1], r.Current())

	agents[1].bid = 0
	_, _, err = r.pollBid(2, deck.Spades)
	a.NoError(err)
	a.False(r.AllBid())
	a.Equal(1, r.TotalBids())

	agents[2].bid = 1
	p, _, err = r.pollBid(2, deck.Spades)
	a.ErrorIs(err, ErrDealerHooked)
	a.Nil(p)
	a.Equal(players[2], r.Current(), "rejected bid keeps the turn")

	agents[2].bid = 3
	_, _, err = r.pollBid(2, deck.Spades)
	a.ErrorIs(err, ErrBidOutOfRange)

	agents[2].bid = 0
	_, _, err = r.pollBid(2, deck.Spades)
	a.NoError(err)
	a.True(r.AllBid())
	a.Equal(1, r.TotalBids())
	a.Equal(players[0], r.Current())
}

func TestRotation_pollCard(t *testing.T) {
	a := assert.New(t)

	players, agents := stubPlayers(2)
	r := NewRotation(players, 1)
	players[0].giveCards(deck.CardsFromString("14c,2h"))
	players[1].giveCards(deck.CardsFromString("3c,4h"))

	agents[0].card = deck.CardFromString("14c")
	pc, err := r.pollCard(deck.Spades, nil)
	a.NoError(err)
	a.Equal("14c", deck.CardToString(pc.Card))
	a.Equal(players[0], pc.Player)
	a.False(r.AllPlayed())

	led := []*PlayedCard{pc}
	agents[1].card = deck.CardFromString("4h")
	pc, err = r.pollCard(deck.Spades, led)
	a.ErrorIs(err, ErrPlayOnSuit)
	a.Nil(pc)
	a.Equal("3c,4h", deck.CardsToString(players[1].Hand()))

	agents[1].card = deck.CardFromString("3c")
	pc, err = r.pollCard(deck.Spades, led)
	a.NoError(err)
	a.Equal(players[1], pc.Player)
	a.True(r.AllPlayed())
	a.False(r.HandsEmpty())
	a.Equal("4h", deck.CardsToString(players[1].Hand()))
}
