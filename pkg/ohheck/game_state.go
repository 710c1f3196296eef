package ohheck

import (
	"ohheck-server/pkg/deck"
	"ohheck-server/pkg/playable"
)

// GameState is the overall game state
// This is safe for all players to see
type GameState struct {
	ID           string             `json:"id"`
	Phase        Phase              `json:"phase"`
	Players      []*GameStatePlayer `json:"players"`
	TrumpCard    *deck.Card         `json:"trumpCard"`
	TrumpSuit    deck.Suit          `json:"trumpSuit"`
	HandSize     int                `json:"handSize"`
	HandNumber   int                `json:"handNumber"`
	Descending   bool               `json:"descending"`
	Dealer       int64              `json:"dealer"`
	CurrentTurn  int64              `json:"currentTurn"`
	TotalBids    int                `json:"totalBids"`
	CurrentTrick []*GameStateCard   `json:"currentTrick"`
	LastTrick    *GameStateTrick    `json:"lastTrick"`
	HandResults  []*GameStateResult `json:"handResults"`
	IsGameOver   bool               `json:"isGameOver"`
	Winner       int64              `json:"winner"`
}

// GameStatePlayer is the state of an individual player
// This is safe for all players to see
type GameStatePlayer struct {
	PlayerID    int64      `json:"playerId"`
	Name        string     `json:"name"`
	Human       bool       `json:"human"`
	Score       int        `json:"score"`
	Bid         *int       `json:"bid"`
	TricksWon   int        `json:"tricksWon"`
	CardsInHand int        `json:"cardsInHand"`
	CardPlayed  *deck.Card `json:"cardPlayed"`
}

// GameStateCard is a card played into a trick
type GameStateCard struct {
	PlayerID int64      `json:"playerId"`
	Card     *deck.Card `json:"card"`
}

// GameStateTrick is the result of the last trick
type GameStateTrick struct {
	Winner  int64            `json:"winner"`
	Card    *deck.Card       `json:"card"`
	Trumped bool             `json:"trumped"`
	Cards   []*GameStateCard `json:"cards"`
}

// GameStateResult is one player's result for the hand
type GameStateResult struct {
	PlayerID int64 `json:"playerId"`
	Bid      int   `json:"bid"`
	Tricks   int   `json:"tricks"`
	Delta    int   `json:"delta"`
	Made     bool  `json:"made"`
}

// Response is the response format for this game
type Response struct {
	GameState *GameState `json:"gameState"`
	// Data below is player specific, and must only be shown to the intended player
	Hand          deck.Hand `json:"hand"`
	PlayableCards deck.Hand `json:"playableCards"`
	ForbiddenBid  *int      `json:"forbiddenBid"`
	IsTurn        bool      `json:"isTurn"`
}

func playedCardsState(cards []*PlayedCard) []*GameStateCard {
	state := make([]*GameStateCard, len(cards))
	for i, pc := range cards {
		state[i] = &GameStateCard{
			PlayerID: pc.Player.PlayerID,
			Card:     pc.Card,
		}
	}

	return state
}

// GetGameState returns the state that every player can see
func (g *Game) GetGameState() *GameState {
	players := make([]*GameStatePlayer, g.rotation.Len())
	for i, player := range g.rotation.players {
		var bid *int
		if b, ok := player.Bid(); ok {
			bid = &b
		}

		players[i] = &GameStatePlayer{
			PlayerID:    player.PlayerID,
			Name:        player.Name,
			Human:       player.IsHuman(),
			Score:       player.score,
			Bid:         bid,
			TricksWon:   player.tricks,
			CardsInHand: len(player.hand),
			CardPlayed:  player.cardPlayed,
		}
	}

	var currentTurn int64
	if player := g.WhoseTurn(); player != nil {
		currentTurn = player.PlayerID
	}

	var lastTrick *GameStateTrick
	if g.lastTrick != nil {
		lastTrick = &GameStateTrick{
			Winner:  g.lastTrick.Winner.PlayerID,
			Card:    g.lastTrick.Card,
			Trumped: g.lastTrick.Trumped,
			Cards:   playedCardsState(g.lastTrick.Cards),
		}
	}

	var results []*GameStateResult
	for _, res := range g.handResults {
		results = append(results, &GameStateResult{
			PlayerID: res.Player.PlayerID,
			Bid:      res.Bid,
			Tricks:   res.Tricks,
			Delta:    res.Delta,
			Made:     res.Made,
		})
	}

	var winner int64
	if g.winner != nil {
		winner = g.winner.PlayerID
	}

	return &GameState{
		ID:           g.id,
		Phase:        g.phase,
		Players:      players,
		TrumpCard:    g.trumpCard,
		TrumpSuit:    g.TrumpSuit(),
		HandSize:     g.handSize,
		HandNumber:   g.handNumber,
		Descending:   g.descending,
		Dealer:       g.rotation.Dealer().PlayerID,
		CurrentTurn:  currentTurn,
		TotalBids:    g.rotation.TotalBids(),
		CurrentTrick: playedCardsState(g.trick),
		LastTrick:    lastTrick,
		HandResults:  results,
		IsGameOver:   g.IsGameOver(),
		Winner:       winner,
	}
}

// GetPlayerState returns the state for the given player
// Players who are not seated only see the shared game state
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	res := &Response{
		GameState:     g.GetGameState(),
		Hand:          deck.Hand{},
		PlayableCards: g.PlayableCards(playerID).Sorted(),
	}

	if player, ok := g.idToPlayer[playerID]; ok {
		res.Hand = player.hand.Sorted()
		res.IsTurn = g.WhoseTurn() == player
	}

	if forbidden := g.ForbiddenBid(playerID); forbidden >= 0 {
		res.ForbiddenBid = &forbidden
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data:  res,
	}, nil
}
