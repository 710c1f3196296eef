package playable

import "time"

// Tickable is an interface that allows a periodic tick to update the game state
type Tickable interface {
	// Interval is how long the wait between each tick should be
	Interval() time.Duration

	// Tick will be called periodically from a single goroutine
	// Return true if the driver should push updated state to its clients
	Tick() (bool, error)
}
