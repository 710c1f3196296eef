package mux

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"ohheck-server/pkg/deck"
	"ohheck-server/pkg/ohheck"
	"ohheck-server/pkg/room"
	"testing"

	"github.com/stretchr/testify/assert"
)

type gameResponse struct {
	Key   string                 `json:"key"`
	Value string                 `json:"value"`
	Data  map[string]interface{} `json:"data"`
}

func TestMux_gameLifecycle(t *testing.T) {
	ts, dealer := newTestServer(t)

	var errObj errorResponse
	assertGet(t, ts, "/game?playerId=1", &errObj, http.StatusNotFound)
	assert.Equal(t, room.ErrNoGame.Error(), errObj.Message)

	assertPost(t, ts, "/game/bid?playerId=1", postGameBidPayload{Bid: intPtr(0)}, &errObj, http.StatusNotFound)

	assertPost(t, ts, "/game/new", "{}", nil, http.StatusCreated)
	assertPost(t, ts, "/game/new", "{}", &errObj, http.StatusConflict)
	assert.Equal(t, room.ErrGameInProgress.Error(), errObj.Message)

	var res gameResponse
	assertGet(t, ts, "/game?playerId=1", &res, http.StatusOK)
	assert.Equal(t, "game", res.Key)
	assert.Equal(t, "oh-heck", res.Value)
	assert.Len(t, res.Data["hand"], 1)

	// still dealing
	assertPost(t, ts, "/game/bid?playerId=1", postGameBidPayload{Bid: intPtr(0)}, &errObj, http.StatusConflict)

	tickGame(t, dealer)

	assertPost(t, ts, "/game/bid?playerId=1", postGameBidPayload{Bid: intPtr(2)}, &errObj, http.StatusBadRequest)
	assertPost(t, ts, "/game/bid?playerId=1", postGameBidPayload{}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "bid is required", errObj.Message)
	assertPost(t, ts, "/game/bid?playerId=2", postGameBidPayload{Bid: intPtr(0)}, &errObj, http.StatusForbidden)
	assertPost(t, ts, "/game/bid?playerId=99", postGameBidPayload{Bid: intPtr(0)}, &errObj, http.StatusNotFound)
	assertPost(t, ts, "/game/bid?playerId=1", postGameBidPayload{Bid: intPtr(0)}, nil, http.StatusOK)

	// wait for the human to lead
	var hand deck.Hand
	for i := 0; i < 50 && hand == nil; i++ {
		tickGame(t, dealer)
		_ = dealer.Do(context.Background(), func(game *ohheck.Game) error {
			if p := game.WhoseTurn(); p != nil && p.PlayerID == 1 && game.Phase() == ohheck.PhaseTrickPlay {
				hand = p.Hand()
			}
			return nil
		})
	}

	if !assert.Len(t, hand, 1) {
		return
	}

	notInHand := "2c"
	if hand[0].Equal(deck.CardFromString("2c")) {
		notInHand = "3c"
	}

	assertPost(t, ts, "/game/card?playerId=1", postGameCardPayload{Card: "1x"}, &errObj, http.StatusBadRequest)
	assertPost(t, ts, "/game/card?playerId=1", postGameCardPayload{Card: notInHand}, &errObj, http.StatusBadRequest)
	assertPost(t, ts, "/game/card?playerId=1", postGameCardPayload{Card: deck.CardToString(hand[0])}, nil, http.StatusOK)
}

func TestMux_decodeRequest(t *testing.T) {
	ts, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/game/bid?playerId=1", nil)
	assertDo(t, req, nil, http.StatusUnsupportedMediaType)

	var errObj errorResponse
	assertPost(t, ts, "/game/bid?playerId=1", "{", &errObj, http.StatusBadRequest)
}

func Test_writeGameError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ohheck.ErrBidOutOfRange, http.StatusBadRequest},
		{fmt.Errorf("%w: 3", ohheck.ErrDealerHooked), http.StatusBadRequest},
		{ohheck.ErrPlayOnSuit, http.StatusBadRequest},
		{ohheck.ErrNotHumanPlayer, http.StatusForbidden},
		{ohheck.ErrUnknownPlayer, http.StatusNotFound},
		{room.ErrNoGame, http.StatusNotFound},
		{ohheck.ErrOutOfTurn, http.StatusConflict},
		{ohheck.ErrGameIsOver, http.StatusConflict},
		{room.ErrGameInProgress, http.StatusConflict},
		{room.ErrDealerClosed, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			writeGameError(w, test.err)
			assert.Equal(t, test.status, w.Code)
		})
	}
}

func intPtr(i int) *int {
	return &i
}
