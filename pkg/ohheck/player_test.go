package ohheck

import (
	"ohheck-server/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreHand(t *testing.T) {
	a := assert.New(t)
	a.Equal(16, ScoreHand(3, 3))
	a.Equal(-10, ScoreHand(3, 1))
	a.Equal(-10, ScoreHand(1, 3))
	a.Equal(10, ScoreHand(0, 0))
	a.Equal(-5, ScoreHand(0, 1))
	a.Equal(28, ScoreHand(9, 9))
}

func TestPlayer_tallyScore(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer(1, "Tom", NewHumanAgent())
	p.setBid(3)
	p.WonTrick()
	p.WonTrick()
	p.WonTrick()

	a.Equal(16, p.tallyScore())
	a.Equal(16, p.Score())
	a.Equal(0, p.Tricks())
	bid, _ := p.Bid()
	a.Equal(0, bid)

	p.setBid(3)
	p.WonTrick()
	a.Equal(-10, p.tallyScore())
	a.Equal(6, p.Score())
}

func TestPlayer_playerDidPlayCard(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer(1, "Tom", NewHumanAgent())
	p.giveCards(deck.CardsFromString("14s,2c"))

	a.True(p.Hand().HasCard(deck.CardFromString("14s")))

	card, err := p.playerDidPlayCard(deck.CardFromString("13s"))
	a.Nil(card)
	a.ErrorIs(err, ErrCardNotInPlayersHand)
	a.ErrorIs(err, ErrInvalidPlay)

	card, err = p.playerDidPlayCard(deck.CardFromString("14s"))
	a.NoError(err)
	a.Equal("14s", deck.CardToString(card))
	a.Equal(card, p.CardPlayed())
	a.Equal("2c", deck.CardsToString(p.Hand()))

	p.nextTrick()
	a.Nil(p.CardPlayed())
}

func TestPlayer_newHand(t *testing.T) {
	a := assert.New(t)

	human := NewHumanAgent()
	human.submitBid(2)

	p := NewPlayer(1, "Player", human)
	p.giveCards(deck.CardsFromString("14s"))
	p.setBid(1)
	p.WonTrick()
	p.score = 12

	p.newHand()
	_, hasBid := p.Bid()
	a.False(hasBid)
	a.Equal(0, p.Tricks())
	a.Empty(p.Hand())
	a.Equal(12, p.Score(), "score carries across hands")

	_, ok := human.Bid(nil)
	a.False(ok, "pending command is dropped")
	a.True(p.IsHuman())
}
