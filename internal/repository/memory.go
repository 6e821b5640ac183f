package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Domenick1991/flightsinfo/internal/domain"
)

// MemoryStore keeps flights and reference data in process memory.
// It enforces the same route uniqueness the postgres schema does.
type MemoryStore struct {
	mu       sync.RWMutex
	flights  map[int64]domain.Flight
	airports map[int64]domain.Airport
	aircraft map[int64]domain.Aircraft
	nextID   int64
	closed   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		flights:  make(map[int64]domain.Flight),
		airports: make(map[int64]domain.Airport),
		aircraft: make(map[int64]domain.Aircraft),
		nextID:   1,
	}
}

var errStoreClosed = errors.New("store is closed")

func (s *MemoryStore) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, persistence("memory.list_flights", errStoreClosed)
	}

	flights := make([]domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		flights = append(flights, f)
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].ID < flights[j].ID })
	return flights, nil
}

func (s *MemoryStore) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, persistence("memory.list_airports", errStoreClosed)
	}

	airports := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		airports = append(airports, a)
	}
	sort.Slice(airports, func(i, j int) bool { return airports[i].ID < airports[j].ID })
	return airports, nil
}

func (s *MemoryStore) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, persistence("memory.list_aircraft", errStoreClosed)
	}

	aircraft := make([]domain.Aircraft, 0, len(s.aircraft))
	for _, a := range s.aircraft {
		aircraft = append(aircraft, a)
	}
	sort.Slice(aircraft, func(i, j int) bool { return aircraft[i].ID < aircraft[j].ID })
	return aircraft, nil
}

// FindFlight returns a copy of the stored flight. Both tracking modes behave the same
// here since records are only changed through Replace.
func (s *MemoryStore) FindFlight(ctx context.Context, id int64, mode TrackingMode) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, persistence("memory.find_flight", errStoreClosed)
	}

	f, ok := s.flights[id]
	if !ok {
		return nil, notFound("memory.find_flight")
	}
	return &f, nil
}

func (s *MemoryStore) FindAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, persistence("memory.find_airport", errStoreClosed)
	}

	a, ok := s.airports[id]
	if !ok {
		return nil, notFound("memory.find_airport")
	}
	return &a, nil
}

func (s *MemoryStore) FindAircraft(ctx context.Context, id int64) (*domain.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, persistence("memory.find_aircraft", errStoreClosed)
	}

	a, ok := s.aircraft[id]
	if !ok {
		return nil, notFound("memory.find_aircraft")
	}
	return &a, nil
}

// Insert assigns the next id to flight and stores it.
func (s *MemoryStore) Insert(ctx context.Context, flight *domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return persistence("memory.insert_flight", errStoreClosed)
	}
	if s.routeTaken(*flight, 0) {
		return duplicate("memory.insert_flight", domain.ErrDuplicate)
	}

	flight.ID = s.nextID
	s.nextID++
	s.flights[flight.ID] = *flight
	return nil
}

func (s *MemoryStore) Replace(ctx context.Context, flight *domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return persistence("memory.replace_flight", errStoreClosed)
	}
	if _, ok := s.flights[flight.ID]; !ok {
		return notFound("memory.replace_flight")
	}
	if s.routeTaken(*flight, flight.ID) {
		return duplicate("memory.replace_flight", domain.ErrDuplicate)
	}

	s.flights[flight.ID] = *flight
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return persistence("memory.delete_flight", errStoreClosed)
	}
	if _, ok := s.flights[id]; !ok {
		return notFound("memory.delete_flight")
	}

	delete(s.flights, id)
	return nil
}

func (s *MemoryStore) UpsertAirport(ctx context.Context, airport domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return persistence("memory.upsert_airport", errStoreClosed)
	}
	s.airports[airport.ID] = airport
	return nil
}

func (s *MemoryStore) UpsertAircraft(ctx context.Context, aircraft domain.Aircraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return persistence("memory.upsert_aircraft", errStoreClosed)
	}
	s.aircraft[aircraft.ID] = aircraft
	return nil
}

// DeleteAirport removes reference data; flights pointing at it are left dangling.
func (s *MemoryStore) DeleteAirport(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.airports[id]; !ok {
		return notFound("memory.delete_airport")
	}
	delete(s.airports, id)
	return nil
}

func (s *MemoryStore) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// routeTaken reports whether a flight other than skipID already flies f's route.
func (s *MemoryStore) routeTaken(f domain.Flight, skipID int64) bool {
	in := domain.FlightInput{
		DepartureAirportID:   f.DepartureAirportID,
		DestinationAirportID: f.DestinationAirportID,
		AircraftID:           f.AircraftID,
	}
	for id, existing := range s.flights {
		if id != skipID && existing.SameRoute(in) {
			return true
		}
	}
	return false
}

var (
	_ FlightStore     = (*MemoryStore)(nil)
	_ ReferenceWriter = (*MemoryStore)(nil)
)
