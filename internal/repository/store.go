package repository

import (
	"context"

	"github.com/Domenick1991/flightsinfo/internal/domain"
)

// TrackingMode tells FindFlight whether the read precedes a mutation of the same record.
type TrackingMode int

const (
	// Tracking reads are allowed to take part in a later mutation of the record.
	Tracking TrackingMode = iota
	// NoTracking reads are for comparison only and never hold a write lock.
	NoTracking
)

func (m TrackingMode) String() string {
	if m == NoTracking {
		return "no_tracking"
	}
	return "tracking"
}

// FlightStore is the CRUD capability over flights, airports and aircraft.
// Lookups of absent records fail with an error matching domain.ErrNotFound;
// storage faults match domain.ErrPersistence.
type FlightStore interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	ListAircraft(ctx context.Context) ([]domain.Aircraft, error)

	FindFlight(ctx context.Context, id int64, mode TrackingMode) (*domain.Flight, error)
	FindAirport(ctx context.Context, id int64) (*domain.Airport, error)
	FindAircraft(ctx context.Context, id int64) (*domain.Aircraft, error)

	Insert(ctx context.Context, flight *domain.Flight) error
	Replace(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error

	Close()
}

// ReferenceWriter loads airports and aircraft. The orchestrator never writes reference data.
type ReferenceWriter interface {
	UpsertAirport(ctx context.Context, airport domain.Airport) error
	UpsertAircraft(ctx context.Context, aircraft domain.Aircraft) error
}

func notFound(op string) error {
	return &domain.OpError{Op: op, Kind: domain.KindNotFound, Err: domain.ErrNotFound}
}

func persistence(op string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindPersistence, Err: err}
}

func duplicate(op string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindDuplicate, Err: err}
}

var (
	_ FlightStore     = (*PGStore)(nil)
	_ ReferenceWriter = (*PGStore)(nil)
	_ FlightStore     = (*MemoryStore)(nil)
	_ ReferenceWriter = (*MemoryStore)(nil)
)
