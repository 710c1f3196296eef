package ohheck

import "time"

// dealerAction is an action that "dealer" would take after a phase has been shown long enough
type dealerAction int

const (
	dealerActionStartBidding dealerAction = iota
	dealerActionResolveTrick
	dealerActionEndTrick
	dealerActionEndHand
	dealerActionEndGame
)

type pendingDealerAction struct {
	Action       dealerAction
	ExecuteAfter time.Time
}
