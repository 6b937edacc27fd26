// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after a booking is successfully
// persisted.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  int64    `json:"booking_id"`
	MovieID    int64    `json:"movie_id"`
	UserName   string   `json:"user_name"`
	Seats      []string `json:"seats"`
	TotalPrice float64  `json:"total_price"`
	CreatedAt  string   `json:"created_at"`
}
