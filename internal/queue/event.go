// Package queue defines message payloads exchanged over the message broker.
package queue

// Lifecycle actions carried by ReservationEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// QueueName is the durable queue lifecycle events are published to.
const QueueName = "reservation.events"

// ReservationEvent is published after a reservation is created, updated
// or deleted.  It carries a snapshot of the fields an audit line needs so
// consumers never have to query the primary database.  For deletions only
// the id is known.
type ReservationEvent struct {
	Action        string `json:"action"`
	ReservationID string `json:"reservation_id"`
	GuestName     string `json:"guest_name,omitempty"`
	RoomNumber    string `json:"room_number,omitempty"`
	EntryDate     string `json:"entry_date,omitempty"`
	CheckoutDate  string `json:"checkout_date,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}
