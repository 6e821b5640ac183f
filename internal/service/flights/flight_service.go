package flights

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/Domenick1991/flightsinfo/internal/geo"
	"github.com/Domenick1991/flightsinfo/internal/kafka"
	"github.com/Domenick1991/flightsinfo/internal/logger"
	"github.com/Domenick1991/flightsinfo/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.FlightView, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightView, error)
	Report(ctx context.Context) (*Report, error)
	Add(ctx context.Context, input domain.FlightInput) AddResult
	Edit(ctx context.Context, input domain.FlightInput) EditResult
	Remove(ctx context.Context, id int64) RemoveResult
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	ListAircraft(ctx context.Context) ([]domain.Aircraft, error)
	Shutdown()
}

// ReferenceCache holds the airport and aircraft lists. A miss is a nil slice and nil error.
type ReferenceCache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
	GetAircraft(ctx context.Context) ([]domain.Aircraft, error)
	SetAircraft(ctx context.Context, aircraft []domain.Aircraft) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// FlightService validates, computes and persists flights. It holds no mutable state
// of its own, so one instance serves concurrent requests.
type FlightService struct {
	calc        geo.Calculator
	store       repository.FlightStore
	cache       ReferenceCache
	producer    Producer
	eventsTopic string
	log         Logger
}

type FlightServiceOption func(*FlightService)

func WithReferenceCache(cache ReferenceCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithEvents(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func WithLogger(l Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.log = l
	}
}

func NewFlightService(calc geo.Calculator, store repository.FlightStore, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{
		calc:  calc,
		store: store,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetByID resolves one flight for display. Every failure matches domain.ErrNotFound
// and names the lookup that failed.
func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.FlightView, error) {
	flight, err := s.store.FindFlight(ctx, id, repository.Tracking)
	if err != nil {
		return nil, &domain.LookupError{Entity: "flight", ID: id, Err: err}
	}
	return s.resolve(ctx, *flight)
}

// List resolves every stored flight. One failed resolution fails the whole list.
func (s *FlightService) List(ctx context.Context) ([]domain.FlightView, error) {
	flights, err := s.store.ListFlights(ctx)
	if err != nil {
		return nil, &domain.LookupError{Entity: "flights", Err: err}
	}

	views := make([]domain.FlightView, 0, len(flights))
	for _, f := range flights {
		view, err := s.resolve(ctx, f)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *FlightService) Report(ctx context.Context) (*Report, error) {
	views, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Flights: views, FlightCount: len(views)}
	for _, v := range views {
		report.TotalDistance += v.Distance
		report.TotalFuelConsumption += v.FuelConsumption
	}
	report.TotalDistance = domain.Round2(report.TotalDistance)
	report.TotalFuelConsumption = domain.Round2(report.TotalFuelConsumption)
	return report, nil
}

func (s *FlightService) Add(ctx context.Context, input domain.FlightInput) AddResult {
	if input.SameAirports() {
		return s.addResult(AddResult{Status: AddSameAirportsChosen})
	}

	flight, err := s.calculate(ctx, input)
	if err != nil {
		return s.addResult(AddResult{Status: AddDataError, Info: err.Error()})
	}

	exists, err := s.routeExists(ctx, input)
	if err != nil {
		return s.addResult(AddResult{Status: AddFailure, Info: err.Error()})
	}
	if exists {
		return s.addResult(AddResult{Status: AddAlreadyExists})
	}

	flight.ID = 0
	if err := s.store.Insert(ctx, flight); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return s.addResult(AddResult{Status: AddAlreadyExists})
		}
		s.log.Warnf("insert flight %d->%d: %v", input.DepartureAirportID, input.DestinationAirportID, err)
		return s.addResult(AddResult{Status: AddFailure, Info: fmt.Sprintf("adding flight: %v", err)})
	}

	s.publish(ctx, kafka.EventFlightAdded, flight.ID, flight)
	return s.addResult(AddResult{Status: AddSuccess, Flight: flight})
}

func (s *FlightService) Edit(ctx context.Context, input domain.FlightInput) EditResult {
	if input.SameAirports() {
		return s.editResult(EditResult{Status: EditSameAirportsChosen})
	}

	current, err := s.store.FindFlight(ctx, input.FlightID, repository.NoTracking)
	if err != nil {
		return s.editResult(EditResult{Status: EditFailure, Info: fmt.Sprintf("flight %d: %v", input.FlightID, err)})
	}
	if current.SameRoute(input) {
		return s.editResult(EditResult{Status: EditEntriesNotChanged, Flight: current})
	}

	exists, err := s.routeExists(ctx, input)
	if err != nil {
		return s.editResult(EditResult{Status: EditFailure, Info: err.Error()})
	}
	if exists {
		return s.editResult(EditResult{Status: EditAlreadyExists})
	}

	flight, err := s.calculate(ctx, input)
	if err != nil {
		return s.editResult(EditResult{Status: EditDataError, Info: err.Error()})
	}

	flight.ID = current.ID
	if err := s.store.Replace(ctx, flight); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return s.editResult(EditResult{Status: EditAlreadyExists})
		}
		s.log.Warnf("replace flight %d: %v", flight.ID, err)
		return s.editResult(EditResult{Status: EditFailure, Info: fmt.Sprintf("editing flight %d: %v", flight.ID, err)})
	}

	s.publish(ctx, kafka.EventFlightEdited, flight.ID, flight)
	return s.editResult(EditResult{Status: EditSuccess, Flight: flight})
}

func (s *FlightService) Remove(ctx context.Context, id int64) RemoveResult {
	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warnf("delete flight %d: %v", id, err)
		}
		return RemoveResult{Status: RemoveFailure, Info: fmt.Sprintf("removing flight %d: %v", id, err)}
	}

	s.publish(ctx, kafka.EventFlightRemoved, id, nil)
	s.log.Debugf("flight %d removed", id)
	return RemoveResult{Status: RemoveSuccess}
}

func (s *FlightService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.log.Warnf("airports cache read: %v", err)
		}
	}

	airports, err := s.store.ListAirports(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetAirports(ctx, airports); err != nil {
			s.log.Warnf("airports cache write: %v", err)
		}
	}
	return airports, nil
}

func (s *FlightService) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAircraft(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.log.Warnf("aircraft cache read: %v", err)
		}
	}

	aircraft, err := s.store.ListAircraft(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetAircraft(ctx, aircraft); err != nil {
			s.log.Warnf("aircraft cache write: %v", err)
		}
	}
	return aircraft, nil
}

func (s *FlightService) Shutdown() {
	s.store.Close()
}

// resolve builds the display projection of f from the current reference data.
func (s *FlightService) resolve(ctx context.Context, f domain.Flight) (*domain.FlightView, error) {
	dep, err := s.store.FindAirport(ctx, f.DepartureAirportID)
	if err != nil {
		return nil, &domain.LookupError{Entity: "departure airport", ID: f.DepartureAirportID, Err: err}
	}
	dest, err := s.store.FindAirport(ctx, f.DestinationAirportID)
	if err != nil {
		return nil, &domain.LookupError{Entity: "destination airport", ID: f.DestinationAirportID, Err: err}
	}
	aircraft, err := s.store.FindAircraft(ctx, f.AircraftID)
	if err != nil {
		return nil, &domain.LookupError{Entity: "aircraft", ID: f.AircraftID, Err: err}
	}

	return &domain.FlightView{
		Flight:                 f,
		DepartureAirportName:   dep.Name,
		DestinationAirportName: dest.Name,
		AircraftName:           aircraft.Name,
	}, nil
}

// calculate resolves the input's references and derives distance and fuel.
func (s *FlightService) calculate(ctx context.Context, input domain.FlightInput) (*domain.Flight, error) {
	dep, err := s.store.FindAirport(ctx, input.DepartureAirportID)
	if err != nil {
		return nil, &domain.LookupError{Entity: "departure airport", ID: input.DepartureAirportID, Err: err}
	}
	dest, err := s.store.FindAirport(ctx, input.DestinationAirportID)
	if err != nil {
		return nil, &domain.LookupError{Entity: "destination airport", ID: input.DestinationAirportID, Err: err}
	}
	aircraft, err := s.store.FindAircraft(ctx, input.AircraftID)
	if err != nil {
		return nil, &domain.LookupError{Entity: "aircraft", ID: input.AircraftID, Err: err}
	}

	distance, err := s.calc.Distance(dep.Latitude, dep.Longitude, dest.Latitude, dest.Longitude)
	if err != nil {
		return nil, fmt.Errorf("calculating flight info: %w", err)
	}
	fuel, err := s.calc.FuelConsumption(aircraft, distance)
	if err != nil {
		return nil, fmt.Errorf("calculating flight info: %w", err)
	}

	return &domain.Flight{
		ID:                   input.FlightID,
		DepartureAirportID:   dep.ID,
		DestinationAirportID: dest.ID,
		AircraftID:           aircraft.ID,
		Distance:             domain.Round2(distance),
		FuelConsumption:      domain.Round2(fuel),
	}, nil
}

func (s *FlightService) routeExists(ctx context.Context, input domain.FlightInput) (bool, error) {
	flights, err := s.store.ListFlights(ctx)
	if err != nil {
		return false, fmt.Errorf("checking for duplicate flight: %w", err)
	}
	for _, f := range flights {
		if f.SameRoute(input) {
			return true, nil
		}
	}
	return false, nil
}

func (s *FlightService) publish(ctx context.Context, eventType string, flightID int64, flight *domain.Flight) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.NewFlightEvent(eventType, flightID, flight)
	if err := s.producer.Publish(ctx, s.eventsTopic, strconv.FormatInt(flightID, 10), event); err != nil {
		s.log.Warnf("publish %s for flight %d: %v", eventType, flightID, err)
	}
}

func (s *FlightService) addResult(r AddResult) AddResult {
	s.log.Debugf("add flight: %s %s", r.Status, r.Info)
	return r
}

func (s *FlightService) editResult(r EditResult) EditResult {
	s.log.Debugf("edit flight: %s %s", r.Status, r.Info)
	return r
}

var _ FlightUseCase = (*FlightService)(nil)
