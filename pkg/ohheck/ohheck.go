package ohheck

import (
	"fmt"
	"ohheck-server/internal/rng"
	"ohheck-server/pkg/deck"
	"ohheck-server/pkg/playable"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Seat describes one player at the table
// A seat with no Agent is played by the computer
type Seat struct {
	PlayerID int64
	Name     string
	Agent    Agent
}

// TrickResult is the outcome of the last trick
type TrickResult struct {
	Winner  *Player
	Card    *deck.Card
	Trumped bool
	Cards   []*PlayedCard
}

// HandResult is the outcome of a hand for one player
type HandResult struct {
	Player *Player
	Bid    int
	Tricks int
	Delta  int
	Made   bool
}

// Game is a game of oh heck
type Game struct {
	id      string
	options Options
	clock   quartz.Clock
	rng     rng.Generator

	rotation   *Rotation
	idToPlayer map[int64]*Player

	// hand data
	deck       *deck.Deck
	dealHash   string
	trumpCard  *deck.Card
	handSize   int
	handNumber int
	descending bool

	// trick data
	trick       []*PlayedCard
	lastTrick   *TrickResult
	handResults []*HandResult

	phase               Phase
	pendingDealerAction *pendingDealerAction
	winner              *Player

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage
}

// NewGame returns a new game with the first hand already dealt
// seats should be in the correct order, the first dealer is picked with opts.Dealer
func NewGame(logger logrus.FieldLogger, seats []Seat, opts Options) (*Game, error) {
	opts = opts.withDefaults()
	if err := opts.validate(len(seats)); err != nil {
		return nil, err
	}

	idToPlayer := make(map[int64]*Player)
	players := make([]*Player, len(seats))
	for i, seat := range seats {
		if _, found := idToPlayer[seat.PlayerID]; found {
			return nil, fmt.Errorf("player ID %d is seated twice", seat.PlayerID)
		}

		agent := seat.Agent
		if agent == nil {
			agent = NewComputerAgent(opts.Clock, opts.ThinkTime)
		}

		players[i] = NewPlayer(seat.PlayerID, seat.Name, agent)
		idToPlayer[seat.PlayerID] = players[i]
	}

	dealer := opts.Dealer
	if dealer < 0 {
		dealer = opts.RNG.Intn(len(players))
	}

	g := &Game{
		id:         uuid.New().String(),
		options:    opts,
		clock:      opts.Clock,
		rng:        opts.RNG,
		rotation:   NewRotation(players, dealer),
		idToPlayer: idToPlayer,
		handSize:   opts.StartHandSize,
		descending: true,
		logger:     logger,
		logChan:    make(chan []*playable.LogMessage, 256),
	}

	g.sendLogMessages(playable.SimpleLogMessage(0, "New game of Oh Heck started"))
	g.deal()

	return g, nil
}

var _ playable.Tickable = (*Game)(nil)

// ID is a unique identifier for the game
func (g *Game) ID() string {
	return g.id
}

// Name returns "oh-heck"
func (g *Game) Name() string {
	return "oh-heck"
}

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return g.options.TickInterval
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Tick will check the state of the game and possibly move the state along
// It returns true if the state changed
func (g *Game) Tick() (bool, error) {
	if g.phase == PhaseTerminal {
		return false, nil
	}

	if g.pendingDealerAction != nil {
		if g.clock.Now().Before(g.pendingDealerAction.ExecuteAfter) {
			return false, nil
		}

		action := g.pendingDealerAction.Action
		g.pendingDealerAction = nil

		switch action {
		case dealerActionStartBidding:
			g.setPhase(PhaseBidding)
		case dealerActionResolveTrick:
			g.resolveTrick()
		case dealerActionEndTrick:
			g.endTrick()
		case dealerActionEndHand:
			g.endHand()
		case dealerActionEndGame:
			g.endGame()
		default:
			panic(fmt.Sprintf("unknown dealer action: %d", action))
		}

		return true, nil
	}

	switch g.phase {
	case PhaseBidding:
		return g.tickBidding()
	case PhaseTrickPlay:
		return g.tickTrickPlay()
	}

	panic(fmt.Sprintf("phase %s has no pending dealer action", g.phase))
}

func (g *Game) tickBidding() (bool, error) {
	player, bid, err := g.rotation.pollBid(g.handSize, g.TrumpSuit())
	if err != nil {
		return false, err
	}

	if player == nil {
		return false, nil
	}

	g.logger.WithFields(logrus.Fields{
		"playerID": player.PlayerID,
		"bid":      bid,
	}).Debug("player bid")
	g.sendLogMessages(playable.SimpleLogMessage(player.PlayerID, "{} bid %d", bid))

	if g.rotation.AllBid() {
		if total := g.rotation.TotalBids(); total == g.handSize {
			panic(fmt.Sprintf("bids total the hand size of %d", total))
		}

		g.setPhase(PhaseTrickPlay)
	}

	return true, nil
}

func (g *Game) tickTrickPlay() (bool, error) {
	pc, err := g.rotation.pollCard(g.TrumpSuit(), g.trick)
	if err != nil {
		return false, err
	}

	if pc == nil {
		return false, nil
	}

	g.logger.WithFields(logrus.Fields{
		"playerID": pc.Player.PlayerID,
		"card":     pc.Card,
	}).Debug("player played card")
	g.sendLogMessages(playable.CardLogMessage(pc.Player.PlayerID, pc.Card, "{} played %s", pc.Card))

	g.trick = append(g.trick, pc)
	if g.rotation.AllPlayed() {
		g.setPhase(PhaseResolvingTrick)
		g.schedule(dealerActionResolveTrick, g.options.Delays.SelectWinner)
	}

	return true, nil
}

// deal shuffles a fresh deck, deals every hand and turns over the trump card
func (g *Game) deal() {
	g.handNumber++
	g.trick = nil
	g.lastTrick = nil
	g.handResults = nil

	g.deck = deck.NewWithGenerator(g.rng)
	g.deck.Shuffle()
	g.dealHash = g.deck.HashCode()

	for _, player := range g.rotation.Order() {
		hand, err := g.deck.Deal(g.handSize)
		if err != nil {
			// hand sizes are validated when the game is created
			panic(err)
		}

		player.giveCards(hand)
	}

	trumpCard, err := g.deck.Draw()
	if err != nil {
		panic(err)
	}

	g.trumpCard = trumpCard

	g.logger.WithFields(logrus.Fields{
		"hand":      g.handNumber,
		"dealHash":  g.dealHash,
		"handSize":  g.handSize,
		"trumpCard": trumpCard,
		"dealer":    g.rotation.Dealer().PlayerID,
	}).Debug("dealt hand")
	g.sendLogMessages(
		playable.SimpleLogMessage(g.rotation.Dealer().PlayerID, "{} dealt %d card(s)", g.handSize),
		playable.CardLogMessage(0, trumpCard, "%s is trump", trumpCard.Suit),
	)

	g.setPhase(PhaseDealing)
	g.schedule(dealerActionStartBidding, g.options.Delays.Deal)
}

// resolveTrick awards the trick to the winning card and gives its player the lead
func (g *Game) resolveTrick() {
	winning := DetermineWinner(g.trick, g.TrumpSuit())
	winning.Player.WonTrick()
	g.rotation.SetTurn(winning.Player)

	g.lastTrick = &TrickResult{
		Winner:  winning.Player,
		Card:    winning.Card,
		Trumped: isTrumped(g.trick, winning, g.TrumpSuit()),
		Cards:   g.trick,
	}
	g.trick = nil

	verb := "won"
	if g.lastTrick.Trumped {
		verb = "trumped"
	}

	g.logger.WithFields(logrus.Fields{
		"playerID": winning.Player.PlayerID,
		"card":     winning.Card,
	}).Debug("trick won")
	g.sendLogMessages(playable.CardLogMessage(winning.Player.PlayerID, winning.Card, "{} %s the trick with %s", verb, winning.Card))

	g.setPhase(PhaseTrickResult)
	g.schedule(dealerActionEndTrick, g.options.Delays.TrickResult)
}

// endTrick starts the next trick, or shows the hand's results once the cards run out
func (g *Game) endTrick() {
	for _, player := range g.rotation.players {
		player.nextTrick()
	}

	if !g.rotation.HandsEmpty() {
		g.setPhase(PhaseTrickPlay)
		return
	}

	tricks := 0
	results := make([]*HandResult, 0, g.rotation.Len())
	for _, player := range g.rotation.players {
		tricks += player.tricks
		results = append(results, &HandResult{
			Player: player,
			Bid:    player.bid,
			Tricks: player.tricks,
			Delta:  ScoreHand(player.bid, player.tricks),
			Made:   player.bid == player.tricks,
		})
	}

	if tricks != g.handSize {
		panic(fmt.Sprintf("%d tricks were won in a hand of %d", tricks, g.handSize))
	}

	g.handResults = results
	g.setPhase(PhaseHandResult)
	g.schedule(dealerActionEndHand, g.options.Delays.HandResult)
}

// endHand scores the hand and moves the deal.
// The game ends after the final hand size has been played while ascending.
func (g *Game) endHand() {
	messages := make([]*playable.LogMessage, 0, g.rotation.Len())
	for _, player := range g.rotation.players {
		bid := player.bid
		delta := player.tallyScore()
		if delta > 0 {
			messages = append(messages, playable.SimpleLogMessage(player.PlayerID, "{} made the bid of %d for %d points", bid, delta))
		} else {
			messages = append(messages, playable.SimpleLogMessage(player.PlayerID, "{} missed the bid of %d and lost %d points", bid, -delta))
		}
	}

	g.sendLogMessages(messages...)

	g.rotation.NextDealer()
	for _, player := range g.rotation.players {
		player.newHand()
	}

	if g.handSize <= 1 {
		g.descending = false
	}

	if !g.descending && g.handSize >= g.options.FinalHandSize {
		g.winner = g.rotation.Leader()
		g.logger.WithField("playerID", g.winner.PlayerID).Info("game over")
		g.sendLogMessages(playable.SimpleLogMessage(g.winner.PlayerID, "{} won with %d points", g.winner.score))

		g.setPhase(PhaseGameResult)
		g.schedule(dealerActionEndGame, g.options.Delays.GameResult)
		return
	}

	if g.descending {
		g.handSize--
	} else {
		g.handSize++
	}

	g.deal()
}

func (g *Game) endGame() {
	g.setPhase(PhaseTerminal)
	g.sendLogMessages(playable.SimpleLogMessage(0, "The game ends"))
}

func (g *Game) setPhase(phase Phase) {
	g.logger.WithFields(logrus.Fields{
		"from": g.phase,
		"to":   phase,
	}).Trace("phase change")
	g.phase = phase
}

func (g *Game) schedule(action dealerAction, delay time.Duration) {
	g.pendingDealerAction = &pendingDealerAction{
		Action:       action,
		ExecuteAfter: g.clock.Now().Add(delay),
	}
}

// SubmitBid records a bid for a human player whose turn it is to bid
// The bid is applied on the next tick
func (g *Game) SubmitBid(playerID int64, bid int) error {
	player, human, err := g.humanPlayer(playerID)
	if err != nil {
		return err
	}

	if g.phase != PhaseBidding || g.pendingDealerAction != nil || g.rotation.Current() != player {
		return ErrOutOfTurn
	}

	if err := g.rotation.BidRequest(g.handSize, g.TrumpSuit()).Validate(bid); err != nil {
		return err
	}

	g.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"bid":      bid,
	}).Debug("human bid submitted")
	human.submitBid(bid)
	return nil
}

// SubmitCard records a card for a human player whose turn it is to play
// The card is played on the next tick
func (g *Game) SubmitCard(playerID int64, card *deck.Card) error {
	player, human, err := g.humanPlayer(playerID)
	if err != nil {
		return err
	}

	if g.phase != PhaseTrickPlay || g.pendingDealerAction != nil || g.rotation.Current() != player {
		return ErrOutOfTurn
	}

	if err := g.rotation.PlayRequest(g.TrumpSuit(), g.trick).Validate(card); err != nil {
		return err
	}

	g.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"card":     card,
	}).Debug("human card submitted")
	human.submitCard(card)
	return nil
}

func (g *Game) humanPlayer(playerID int64) (*Player, *HumanAgent, error) {
	if g.IsGameOver() {
		return nil, nil, ErrGameIsOver
	}

	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, nil, ErrUnknownPlayer
	}

	human, ok := player.humanAgent()
	if !ok {
		return nil, nil, ErrNotHumanPlayer
	}

	return player, human, nil
}

// Phase is the current state of the game
func (g *Game) Phase() Phase {
	return g.phase
}

// TrumpSuit is the suit of the turned-over card
func (g *Game) TrumpSuit() deck.Suit {
	return g.trumpCard.Suit
}

// TrumpCard is the card turned over after the deal
func (g *Game) TrumpCard() *deck.Card {
	return g.trumpCard
}

// HandSize is the number of cards dealt to each player this hand
func (g *Game) HandSize() int {
	return g.handSize
}

// HandNumber counts the hands dealt so far, starting at 1
func (g *Game) HandNumber() int {
	return g.handNumber
}

// DealHash fingerprints the shuffled deck of the current hand
// Two games dealt the same cards in the same order have the same hashes
func (g *Game) DealHash() string {
	return g.dealHash
}

// Descending returns true while hand sizes are counting down
func (g *Game) Descending() bool {
	return g.descending
}

// Scores returns each player's running score
func (g *Game) Scores() map[int64]int {
	scores := make(map[int64]int, len(g.idToPlayer))
	for id, player := range g.idToPlayer {
		scores[id] = player.score
	}

	return scores
}

// CurrentTrick returns the cards played into the trick so far
func (g *Game) CurrentTrick() []*PlayedCard {
	return append([]*PlayedCard{}, g.trick...)
}

// LastTrick returns the result of the last trick of the hand, or nil
func (g *Game) LastTrick() *TrickResult {
	return g.lastTrick
}

// HandResults returns the results of the hand once every trick has been played, or nil
func (g *Game) HandResults() []*HandResult {
	return g.handResults
}

// WhoseTurn returns the player who must bid or play, or nil while the game is showing a result
func (g *Game) WhoseTurn() *Player {
	if g.pendingDealerAction != nil {
		return nil
	}

	if g.phase != PhaseBidding && g.phase != PhaseTrickPlay {
		return nil
	}

	return g.rotation.Current()
}

// Dealer returns the player who dealt the hand
func (g *Game) Dealer() *Player {
	return g.rotation.Dealer()
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	return g.rotation.Players()
}

// Player returns the player with the ID
func (g *Game) Player(playerID int64) (*Player, bool) {
	p, ok := g.idToPlayer[playerID]
	return p, ok
}

// IsGameOver returns true once the game is terminal
func (g *Game) IsGameOver() bool {
	return g.phase == PhaseTerminal
}

// Winner returns the player with the highest score once the game is decided, or nil
func (g *Game) Winner() *Player {
	return g.winner
}

// PlayableCards returns the cards the player may play right now
// It is empty unless it is the player's turn to play
func (g *Game) PlayableCards(playerID int64) deck.Hand {
	if g.WhoseTurn() == nil || g.phase != PhaseTrickPlay {
		return deck.Hand{}
	}

	if g.rotation.Current().PlayerID != playerID {
		return deck.Hand{}
	}

	return g.rotation.PlayRequest(g.TrumpSuit(), g.trick).Eligible()
}

// ForbiddenBid returns the bid the player may not make, or -1 if there is none
func (g *Game) ForbiddenBid(playerID int64) int {
	if g.WhoseTurn() == nil || g.phase != PhaseBidding {
		return -1
	}

	if g.rotation.Current().PlayerID != playerID {
		return -1
	}

	return g.rotation.BidRequest(g.handSize, g.TrumpSuit()).ForbiddenBid()
}

func (g *Game) sendLogMessages(msgs ...*playable.LogMessage) {
	select {
	case g.logChan <- msgs:
	default:
		g.logger.WithField("count", len(msgs)).Warn("log channel is full, dropping messages")
	}
}
