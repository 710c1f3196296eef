package mux

import (
	"errors"
	"net/http"
	"ohheck-server/pkg/deck"
	"ohheck-server/pkg/playable"
)

type postGameBidPayload struct {
	Bid *int `json:"bid"`
}

type postGameCardPayload struct {
	Card string `json:"card"`
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := m.dealer.PlayerState(r.Context(), playerIDFromContext(r.Context()))
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

func (m *Mux) postGameNew() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.dealer.NewGame(r.Context()); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, playable.OK())
	}
}

func (m *Mux) postGameBid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGameBidPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.Bid == nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("bid is required"))
			return
		}

		if err := m.dealer.Bid(r.Context(), playerIDFromContext(r.Context()), *payload.Bid); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, playable.OK())
	}
}

func (m *Mux) postGameCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGameCardPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		card, err := deck.ParseCard(payload.Card)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := m.dealer.PlayCard(r.Context(), playerIDFromContext(r.Context()), card); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, playable.OK())
	}
}
