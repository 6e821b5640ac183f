package flights

import (
	"context"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/Domenick1991/flightsinfo/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockFlightStore struct {
	mock.Mock
}

func (m *MockFlightStore) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightStore) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockFlightStore) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}

func (m *MockFlightStore) FindFlight(ctx context.Context, id int64, mode repository.TrackingMode) (*domain.Flight, error) {
	args := m.Called(ctx, id, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightStore) FindAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockFlightStore) FindAircraft(ctx context.Context, id int64) (*domain.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aircraft), args.Error(1)
}

func (m *MockFlightStore) Insert(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightStore) Replace(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightStore) Close() {
	m.Called()
}

type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	args := m.Called(lat1, lon1, lat2, lon2)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCalculator) FuelConsumption(aircraft *domain.Aircraft, distanceKm float64) (float64, error) {
	args := m.Called(aircraft, distanceKm)
	return args.Get(0).(float64), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	args := m.Called(ctx, airports)
	return args.Error(0)
}

func (m *MockCache) GetAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}

func (m *MockCache) SetAircraft(ctx context.Context, aircraft []domain.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}
