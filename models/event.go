package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultEventTypes is the built-in type list; any other non-empty string is
// accepted as a custom type.
var DefaultEventTypes = []string{
	"Wedding",
	"Conference",
	"Birthday",
	"Concert",
	"Meetup",
	"Workshop",
}

type Event struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner          primitive.ObjectID `bson:"owner" json:"owner"`
	Title          string             `bson:"title" json:"title"`
	Type           string             `bson:"type" json:"type"`
	IsOnline       bool               `bson:"is_online" json:"isOnline"`
	Capacity       int64              `bson:"capacity" json:"capacity"`
	ConfirmedCount int64              `bson:"confirmed_count" json:"confirmedCount"`
	Date           time.Time          `bson:"date" json:"date"`
	Location       string             `bson:"location,omitempty" json:"location"`
	Description    string             `bson:"description,omitempty" json:"description"`
	ImageURL       string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`

	// Derived, never persisted.
	RemainingSeats int64 `bson:"-" json:"remainingSeats"`
}

// FillDerived computes the non-persisted fields. Call before returning an
// event to a client.
func (e *Event) FillDerived() {
	e.RemainingSeats = RemainingSeats(e.Capacity, e.ConfirmedCount)
}

// RemainingSeats never goes negative even if a stored document violates the
// capacity invariant.
func RemainingSeats(capacity, confirmed int64) int64 {
	if remaining := capacity - confirmed; remaining > 0 {
		return remaining
	}
	return 0
}

// Upcoming reports whether the event is still ahead of now. Past vs upcoming
// is a read-time classification, not stored state.
func (e *Event) Upcoming(now time.Time) bool {
	return e.Date.After(now)
}

// IsDefaultType reports whether t is one of the built-in event types.
func IsDefaultType(t string) bool {
	for _, dt := range DefaultEventTypes {
		if dt == t {
			return true
		}
	}
	return false
}
