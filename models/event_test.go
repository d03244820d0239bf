package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingSeats(t *testing.T) {
	assert.Equal(t, int64(100), RemainingSeats(100, 0))
	assert.Equal(t, int64(50), RemainingSeats(100, 50))
	assert.Equal(t, int64(0), RemainingSeats(100, 100))

	// never negative, even for a document that violates the invariant
	assert.Equal(t, int64(0), RemainingSeats(100, 150))
	assert.Equal(t, int64(0), RemainingSeats(0, 0))
}

func TestFillDerived(t *testing.T) {
	e := &Event{Capacity: 100, ConfirmedCount: 30}
	e.FillDerived()
	assert.Equal(t, int64(70), e.RemainingSeats)
}

func TestUpcoming(t *testing.T) {
	now := time.Now()
	past := &Event{Date: now.Add(-time.Hour)}
	future := &Event{Date: now.Add(time.Hour)}

	assert.False(t, past.Upcoming(now))
	assert.True(t, future.Upcoming(now))
}

func TestIsDefaultType(t *testing.T) {
	for _, dt := range DefaultEventTypes {
		assert.True(t, IsDefaultType(dt))
	}
	assert.False(t, IsDefaultType("Hackathon"))
	assert.False(t, IsDefaultType(""))
	assert.False(t, IsDefaultType("wedding")) // case sensitive
}
