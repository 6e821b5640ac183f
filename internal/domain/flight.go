package domain

import "math"

// Flight is a persisted route between two airports flown by one aircraft.
// Distance (km) and FuelConsumption (liters) are derived at write time and kept to 2 decimals.
type Flight struct {
	ID                   int64   `json:"id"`
	DepartureAirportID   int64   `json:"departure_airport_id"`
	DestinationAirportID int64   `json:"destination_airport_id"`
	AircraftID           int64   `json:"aircraft_id"`
	Distance             float64 `json:"distance"`
	FuelConsumption      float64 `json:"fuel_consumption"`
}

// SameRoute reports whether f has the exact (departure, destination, aircraft) triple of in.
// The comparison is directional: A->B and B->A are different routes.
func (f Flight) SameRoute(in FlightInput) bool {
	return f.DepartureAirportID == in.DepartureAirportID &&
		f.DestinationAirportID == in.DestinationAirportID &&
		f.AircraftID == in.AircraftID
}

// FlightInput is the caller-supplied part of a flight. FlightID is ignored by Add.
type FlightInput struct {
	FlightID             int64 `json:"flight_id"`
	DepartureAirportID   int64 `json:"departure_airport_id"`
	DestinationAirportID int64 `json:"destination_airport_id"`
	AircraftID           int64 `json:"aircraft_id"`
}

func (in FlightInput) SameAirports() bool {
	return in.DepartureAirportID == in.DestinationAirportID
}

// FlightView is the display projection of a Flight. It is built on every read and never stored.
type FlightView struct {
	Flight
	DepartureAirportName   string `json:"departure_airport_name"`
	DestinationAirportName string `json:"destination_airport_name"`
	AircraftName           string `json:"aircraft_name"`
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
