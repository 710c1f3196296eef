package mux

import (
	"context"
	"errors"
	"net/http"
	"ohheck-server/pkg/room"
	"strconv"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxPlayerIDKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	dealer  *room.Dealer

	// store for testing purposes
	playerRouter *gmux.Router
}

// NewMux returns a new HTTP mux
// The dealer's shift must already be started
func NewMux(version string, dealer *room.Dealer) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		dealer:  dealer,
	}

	this.playerRouter = this.Router.NewRoute().Subrouter()
	this.playerRouter.Use(this.playerMiddleware)

	// no player required
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/game/new").Handler(this.postGameNew())
	}

	// requires ?playerId=
	{
		r := this.playerRouter
		r.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
		r.Methods(http.MethodGet).Path("/game/ws").Handler(this.getGameWS())
		r.Methods(http.MethodPost).Path("/game/bid").Handler(this.postGameBid())
		r.Methods(http.MethodPost).Path("/game/card").Handler(this.postGameCard())
	}

	return this
}

func (m *Mux) playerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playerID, err := strconv.ParseInt(r.FormValue("playerId"), 10, 64)
		if err != nil || playerID <= 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("playerId must be a positive integer"))
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerIDKey, playerID)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func playerIDFromContext(ctx context.Context) int64 {
	return ctx.Value(ctxPlayerIDKey).(int64)
}
