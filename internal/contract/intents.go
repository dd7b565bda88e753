// Package contract defines the pure position data and mutation intents the
// engine exchanges with its collaborators. Nothing here carries behavior.
package contract

import "time"

// DateChange is a request to move an item's date bounds. Nil fields are
// left untouched by the persistence collaborator.
type DateChange struct {
	ItemID    string
	StartDate *time.Time
	EndDate   *time.Time
}

// OrderChange assigns an item its new row position. Reorder intents always
// arrive as a full contiguous renumbering of every item.
type OrderChange struct {
	ItemID     string
	OrderIndex int
}
