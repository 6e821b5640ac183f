package kafka

import (
	"time"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/google/uuid"
)

const (
	EventFlightAdded   = "flight_added"
	EventFlightEdited  = "flight_edited"
	EventFlightRemoved = "flight_removed"
)

// FlightEvent is published after a flight write commits. Flight is nil for removals.
type FlightEvent struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	FlightID   int64          `json:"flight_id"`
	Flight     *domain.Flight `json:"flight,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func NewFlightEvent(eventType string, flightID int64, flight *domain.Flight) FlightEvent {
	return FlightEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		FlightID:   flightID,
		Flight:     flight,
		OccurredAt: time.Now().UTC(),
	}
}
