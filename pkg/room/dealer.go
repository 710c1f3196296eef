package room

import (
	"context"
	"errors"
	"ohheck-server/pkg/deck"
	"ohheck-server/pkg/ohheck"
	"ohheck-server/pkg/playable"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// ErrNoGame is returned when a game command is sent before a game was created
var ErrNoGame = errors.New("there is no game in progress")

// ErrGameInProgress is returned when a new game is requested before the current one has ended
var ErrGameInProgress = errors.New("a game is already in progress")

// ErrDealerClosed is returned when a command is sent after the dealer's shift ended
var ErrDealerClosed = errors.New("dealer is closed")

// GameFactory creates a game with the table's seating
type GameFactory func() (*ohheck.Game, error)

type state int

const (
	stateClientEvent state = iota
)

// Dealer is responsible for controlling the game
// Every access to the game happens in the run loop
type Dealer struct {
	logger  logrus.FieldLogger
	clock   quartz.Clock
	ticker  *quartz.Ticker
	factory GameFactory

	clients map[*Client]bool
	lock    sync.RWMutex

	game        *ohheck.Game
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
	closeOnce     sync.Once
	done          chan struct{}
}

// NewDealer creates a new dealer object
// Each game is ticked on clock at the game's own interval
func NewDealer(logger logrus.FieldLogger, clock quartz.Clock, factory GameFactory) *Dealer {
	return &Dealer{
		logger:        logger,
		clock:         clock,
		factory:       factory,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
		done:          make(chan struct{}),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop and waits for it to exit
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})

	<-d.done
}

func (d *Dealer) runLoop() {
	defer close(d.done)

	defer func() {
		if d.ticker != nil {
			d.ticker.Stop()
		}
	}()

	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case <-d.tickerC():
			d.tick()
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendClientData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// tickerC is nil, and never ready, until the first game starts the ticker
func (d *Dealer) tickerC() <-chan time.Time {
	if d.ticker == nil {
		return nil
	}

	return d.ticker.C
}

// startTicker ticks at the interval the game asks for
// NOTE: must only be called from the run loop
func (d *Dealer) startTicker(game playable.Tickable) {
	if d.ticker != nil {
		d.ticker.Stop()
	}

	d.logger.WithField("interval", game.Interval()).Debug("starting dealer ticker")
	d.ticker = d.clock.NewTicker(game.Interval(), "dealer")
}

// tick advances the game and forwards anything it logged
// NOTE: must only be called from the run loop
func (d *Dealer) tick() {
	if d.game == nil {
		return
	}

	changed, err := d.game.Tick()
	if err != nil {
		d.logger.WithError(err).Error("could not advance game")
	}

	d.forwardLogMessages()

	if changed {
		d.sendGameData()
	}
}

// forwardLogMessages drains the game's log channel
// NOTE: must only be called from the run loop
func (d *Dealer) forwardLogMessages() {
	for {
		select {
		case msgs := <-d.game.LogChan():
			d.addLogMessages(msgs)
			d.broadcast(&playable.Response{
				Key:  "logs",
				Data: msgs,
			})
		default:
			return
		}
	}
}

// Do runs fn in the run loop and waits for it to finish
// fn receives the current game, which is nil before the first game is created
func (d *Dealer) Do(ctx context.Context, fn func(game *ohheck.Game) error) error {
	errCh := make(chan error, 1)
	exec := func() {
		errCh <- fn(d.game)
	}

	select {
	case d.execInRunLoop <- exec:
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-errCh:
		return err
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// doWithGame is like Do, but fails with ErrNoGame before the first game is created
func (d *Dealer) doWithGame(ctx context.Context, fn func(game *ohheck.Game) error) error {
	return d.Do(ctx, func(game *ohheck.Game) error {
		if game == nil {
			return ErrNoGame
		}

		return fn(game)
	})
}

// NewGame replaces a finished game, or starts the first one
func (d *Dealer) NewGame(ctx context.Context) error {
	return d.Do(ctx, func(game *ohheck.Game) error {
		if game != nil && !game.IsGameOver() {
			return ErrGameInProgress
		}

		g, err := d.factory()
		if err != nil {
			return err
		}

		d.logger.WithField("game", g.ID()).Info("new game")
		d.game = g
		d.startTicker(g)
		d.logMessages = nil
		d.forwardLogMessages()
		d.sendGameData()
		return nil
	})
}

// Bid submits a bid for a human player
func (d *Dealer) Bid(ctx context.Context, playerID int64, bid int) error {
	return d.doWithGame(ctx, func(game *ohheck.Game) error {
		return game.SubmitBid(playerID, bid)
	})
}

// PlayCard submits a card for a human player
func (d *Dealer) PlayCard(ctx context.Context, playerID int64, card *deck.Card) error {
	return d.doWithGame(ctx, func(game *ohheck.Game) error {
		return game.SubmitCard(playerID, card)
	})
}

// PlayerState returns the game as the player sees it
func (d *Dealer) PlayerState(ctx context.Context, playerID int64) (*playable.Response, error) {
	var res *playable.Response
	err := d.doWithGame(ctx, func(game *ohheck.Game) error {
		var err error
		res, err = game.GetPlayerState(playerID)
		return err
	})

	return res, err
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		if len(d.logMessages) > 0 {
			client.Send(&playable.Response{
				Key:  "logs",
				Data: d.logMessages,
			})
		}

		if d.game == nil {
			return
		}

		gs, err := d.game.GetPlayerState(client.playerID)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			return
		}

		client.Send(gs)
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	if d.game == nil {
		d.logger.Error("game state changed, but there's no active game")
		return
	}

	for _, client := range d.Clients() {
		data, err := d.game.GetPlayerState(client.playerID)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			continue
		}

		if !client.Send(data) {
			d.logger.WithField("client", client.String()).Warn("client buffer is full")
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendClientData() {
	connected := make([]int64, 0)
	for _, client := range d.Clients() {
		connected = append(connected, client.playerID)
	}

	d.broadcast(&playable.Response{
		Key:  "clientState",
		Data: &clientState{Connected: connected},
	})
}

func (d *Dealer) broadcast(res *playable.Response) {
	for _, client := range d.Clients() {
		client.Send(res)
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	ctx := context.Background()

	var err error
	switch msg.Action {
	case "newGame":
		err = d.NewGame(ctx)
	case "bid":
		bid, ok := msg.AdditionalData.GetInt("bid")
		if !ok {
			err = errors.New("bid is not a number")
			break
		}

		err = d.Bid(ctx, c.playerID, bid)
	case "playCard":
		if len(msg.Cards) != 1 {
			err = errors.New("expected to get exactly one card")
			break
		}

		err = d.PlayCard(ctx, c.playerID, msg.Cards[0])
	case "state":
		var res *playable.Response
		res, err = d.PlayerState(ctx, c.playerID)
		if err == nil {
			res.Context = msg.Context
			c.Send(res)
			return
		}
	default:
		d.logger.WithField("msg", msg).Warn("unknown message")
		err = errors.New("unknown action")
	}

	if err != nil {
		d.logger.WithError(err).WithField("client", c.String()).Debug("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(playable.OK(msg.Context))
}
