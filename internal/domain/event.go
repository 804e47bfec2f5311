package domain

import "time"

// EventType names a change to the catalog or history.
type EventType string

const (
	EventDishAdded      EventType = "dish_added"
	EventDishUpdated    EventType = "dish_updated"
	EventDishRemoved    EventType = "dish_removed"
	EventRolled         EventType = "rolled"
	EventRollMissed     EventType = "roll_missed"
	EventHistoryCleared EventType = "history_cleared"
)

// Event is published after every catalog operation that clients may want
// to re-render on. Dish is nil for events that do not concern one dish.
// CatalogSize and HistorySize describe the state right after the change.
// Seq increases by one per event from a catalog, in the order the changes
// happened, even when subscribers receive them out of order.
type Event struct {
	Seq         uint64    `json:"seq"`
	Type        EventType `json:"type"`
	Dish        *Dish     `json:"dish,omitempty"`
	CatalogSize int       `json:"catalog_size"`
	HistorySize int       `json:"history_size"`
	At          time.Time `json:"at"`
}
