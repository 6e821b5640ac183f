package audit

import (
	"context"

	"github.com/Domenick1991/flightsinfo/internal/kafka"
	"github.com/labstack/gommon/log"
)

// Recorder writes one JSON audit line per flight event.
type Recorder struct {
	logger *log.Logger
}

func NewRecorder(logger *log.Logger) *Recorder {
	return &Recorder{logger: logger}
}

func (r *Recorder) Record(ctx context.Context, event kafka.FlightEvent) error {
	entry := log.JSON{
		"event_id":    event.ID,
		"type":        event.Type,
		"flight_id":   event.FlightID,
		"occurred_at": event.OccurredAt,
	}
	if event.Flight != nil {
		entry["departure_airport_id"] = event.Flight.DepartureAirportID
		entry["destination_airport_id"] = event.Flight.DestinationAirportID
		entry["aircraft_id"] = event.Flight.AircraftID
		entry["distance_km"] = event.Flight.Distance
		entry["fuel_consumption_l"] = event.Flight.FuelConsumption
	}
	r.logger.Infoj(entry)
	return nil
}
