package ohheck

import (
	"ohheck-server/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBidRequest_ForbiddenBid(t *testing.T) {
	a := assert.New(t)

	a.Equal(-1, (&BidRequest{HandSize: 3, TotalBids: 1}).ForbiddenBid())
	a.Equal(2, (&BidRequest{HandSize: 3, TotalBids: 1, IsDealer: true}).ForbiddenBid())
	a.Equal(0, (&BidRequest{HandSize: 3, TotalBids: 3, IsDealer: true}).ForbiddenBid())
	a.Equal(-1, (&BidRequest{HandSize: 3, TotalBids: 5, IsDealer: true}).ForbiddenBid())
}

func TestBidRequest_Validate(t *testing.T) {
	a := assert.New(t)

	req := &BidRequest{HandSize: 3, TotalBids: 1}
	a.NoError(req.Validate(0))
	a.NoError(req.Validate(2))
	a.NoError(req.Validate(3))
	a.ErrorIs(req.Validate(-1), ErrBidOutOfRange)
	a.ErrorIs(req.Validate(4), ErrIllegalBid)

	req.IsDealer = true
	a.ErrorIs(req.Validate(2), ErrDealerHooked)
	a.ErrorIs(req.Validate(2), ErrIllegalBid)
	a.NoError(req.Validate(1))
	a.NoError(req.Validate(3))
}

func TestPlayRequest_Eligible(t *testing.T) {
	a := assert.New(t)

	req := &PlayRequest{
		Hand:  deck.CardsFromString("14s,2c,5c,9h"),
		Trump: deck.Hearts,
	}

	a.True(req.Leading())
	a.Equal("14s,2c,5c,9h", deck.CardsToString(req.Eligible()))

	req.Led = trick("11c")
	a.False(req.Leading())
	lead, ok := req.LeadSuit()
	a.True(ok)
	a.Equal(deck.Clubs, lead)
	a.Equal("2c,5c", deck.CardsToString(req.Eligible()))

	req.Led = trick("11d")
	a.Equal("14s,2c,5c,9h", deck.CardsToString(req.Eligible()), "void in the lead suit")
}

func TestPlayRequest_Validate(t *testing.T) {
	a := assert.New(t)

	req := &PlayRequest{
		Hand:  deck.CardsFromString("14s,2c,9h"),
		Trump: deck.Hearts,
		Led:   trick("11c"),
	}

	a.NoError(req.Validate(deck.CardFromString("2c")))
	a.ErrorIs(req.Validate(deck.CardFromString("14s")), ErrPlayOnSuit)
	a.ErrorIs(req.Validate(deck.CardFromString("9h")), ErrInvalidPlay, "trump can't be played while holding the lead suit")
	a.ErrorIs(req.Validate(deck.CardFromString("3c")), ErrCardNotInPlayersHand)
	a.ErrorIs(req.Validate(nil), ErrCardNotInPlayersHand)

	req.Led = trick("11d")
	a.NoError(req.Validate(deck.CardFromString("9h")))
	a.NoError(req.Validate(deck.CardFromString("14s")))
}

func TestHumanAgent(t *testing.T) {
	a := assert.New(t)

	h := NewHumanAgent()
	_, ok := h.Bid(nil)
	a.False(ok)
	card, ok := h.PlayCard(nil)
	a.False(ok)
	a.Nil(card)

	h.submitBid(0)
	bid, ok := h.Bid(nil)
	a.True(ok)
	a.Equal(0, bid)
	_, ok = h.Bid(nil)
	a.False(ok, "a bid is only used once")

	h.submitCard(deck.CardFromString("14s"))
	card, ok = h.PlayCard(nil)
	a.True(ok)
	a.Equal("14s", deck.CardToString(card))
	_, ok = h.PlayCard(nil)
	a.False(ok)

	h.submitCard(deck.CardFromString("14s"))
	h.Reset()
	_, ok = h.PlayCard(nil)
	a.False(ok)
}
