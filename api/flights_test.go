package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/Domenick1991/flightsinfo/internal/logger"
	"github.com/Domenick1991/flightsinfo/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.FlightView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightView), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.FlightView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightView), args.Error(1)
}

func (m *MockFlightUseCase) Report(ctx context.Context) (*flights.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flights.Report), args.Error(1)
}

func (m *MockFlightUseCase) Add(ctx context.Context, input domain.FlightInput) flights.AddResult {
	args := m.Called(ctx, input)
	return args.Get(0).(flights.AddResult)
}

func (m *MockFlightUseCase) Edit(ctx context.Context, input domain.FlightInput) flights.EditResult {
	args := m.Called(ctx, input)
	return args.Get(0).(flights.EditResult)
}

func (m *MockFlightUseCase) Remove(ctx context.Context, id int64) flights.RemoveResult {
	args := m.Called(ctx, id)
	return args.Get(0).(flights.RemoveResult)
}

func (m *MockFlightUseCase) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockFlightUseCase) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}

func (m *MockFlightUseCase) Shutdown() {
	m.Called()
}

func newTestRouter(service flights.FlightUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(service, logger.Discard())
}

func serve(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var sampleView = domain.FlightView{
	Flight: domain.Flight{
		ID: 1, DepartureAirportID: 1, DestinationAirportID: 2, AircraftID: 1,
		Distance: 597.03, FuelConsumption: 2650.79,
	},
	DepartureAirportName:   "Sheremetyevo",
	DestinationAirportName: "Pulkovo",
	AircraftName:           "Airbus A320",
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.FlightView{sampleView}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []domain.FlightView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []domain.FlightView{sampleView}, got)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_Errors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "dangling reference",
			err:  &domain.LookupError{Entity: "departure airport", ID: 4, Err: domain.ErrNotFound},
			code: http.StatusNotFound,
		},
		{
			name: "store unavailable",
			err: &domain.LookupError{Entity: "flights", Err: &domain.OpError{
				Op: "pg.list_flights", Kind: domain.KindPersistence, Err: context.DeadlineExceeded,
			}},
			code: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockFlightUseCase{}
			router := newTestRouter(mockService)
			mockService.On("List", mock.Anything).Return(nil, tc.err)

			w := serve(router, "GET", "/flights", nil)

			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), "not found")
		})
	}
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/flights/1", nil)

	view := sampleView
	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(&view, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"aircraft_name":"Airbus A320"`)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFoundAndBadID(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(mockService)
	mockService.On("GetByID", mock.Anything, int64(7)).Return(nil, &domain.LookupError{Entity: "flight", ID: 7, Err: domain.ErrNotFound})

	w := serve(router, "GET", "/flights/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "flight 7 not found")

	w = serve(router, "GET", "/flights/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestFlightHandler_report(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(mockService)
	report := &flights.Report{
		Flights:              []domain.FlightView{sampleView},
		FlightCount:          1,
		TotalDistance:        597.03,
		TotalFuelConsumption: 2650.79,
	}
	mockService.On("Report", mock.Anything).Return(report, nil)

	w := serve(router, "GET", "/flights/report", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got flights.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *report, got)
	mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestFlightHandler_add(t *testing.T) {
	input := domain.FlightInput{DepartureAirportID: 1, DestinationAirportID: 2, AircraftID: 1}
	body := map[string]int64{"departure_airport_id": 1, "destination_airport_id": 2, "aircraft_id": 1}

	testCases := []struct {
		name   string
		result flights.AddResult
		code   int
		status string
	}{
		{"success", flights.AddResult{Status: flights.AddSuccess, Flight: &sampleView.Flight}, http.StatusCreated, "success"},
		{"same airports", flights.AddResult{Status: flights.AddSameAirportsChosen}, http.StatusUnprocessableEntity, "same_airports_chosen"},
		{"already exists", flights.AddResult{Status: flights.AddAlreadyExists}, http.StatusConflict, "already_exists"},
		{"data error", flights.AddResult{Status: flights.AddDataError, Info: "aircraft 1 not found"}, http.StatusInternalServerError, "data_error"},
		{"failure", flights.AddResult{Status: flights.AddFailure, Info: "adding flight: timeout"}, http.StatusInternalServerError, "failure"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockFlightUseCase{}
			router := newTestRouter(mockService)
			mockService.On("Add", mock.Anything, input).Return(tc.result)

			w := serve(router, "POST", "/flights", body)

			assert.Equal(t, tc.code, w.Code)
			var got resultResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.result.Info, got.Info)
			mockService.AssertExpectations(t)
		})
	}
}

func TestFlightHandler_add_BadBody(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(mockService)

	w := serve(router, "POST", "/flights", map[string]int64{"departure_airport_id": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestFlightHandler_edit(t *testing.T) {
	input := domain.FlightInput{FlightID: 3, DepartureAirportID: 1, DestinationAirportID: 3, AircraftID: 1}
	body := map[string]int64{"departure_airport_id": 1, "destination_airport_id": 3, "aircraft_id": 1}

	testCases := []struct {
		name   string
		result flights.EditResult
		code   int
	}{
		{"success", flights.EditResult{Status: flights.EditSuccess}, http.StatusOK},
		{"not changed", flights.EditResult{Status: flights.EditEntriesNotChanged}, http.StatusOK},
		{"same airports", flights.EditResult{Status: flights.EditSameAirportsChosen}, http.StatusUnprocessableEntity},
		{"already exists", flights.EditResult{Status: flights.EditAlreadyExists}, http.StatusConflict},
		{"missing flight", flights.EditResult{Status: flights.EditFailure, Info: "flight 3 not found"}, http.StatusNotFound},
		{"data error", flights.EditResult{Status: flights.EditDataError}, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockFlightUseCase{}
			router := newTestRouter(mockService)
			mockService.On("Edit", mock.Anything, input).Return(tc.result)

			w := serve(router, "PUT", "/flights/3", body)

			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), tc.result.Status.String())
			mockService.AssertExpectations(t)
		})
	}
}

func TestFlightHandler_remove(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(mockService)
	mockService.On("Remove", mock.Anything, int64(3)).Return(flights.RemoveResult{Status: flights.RemoveSuccess})
	mockService.On("Remove", mock.Anything, int64(4)).Return(flights.RemoveResult{Status: flights.RemoveFailure, Info: "removing flight 4: not found"})

	w := serve(router, "DELETE", "/flights/3", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, "DELETE", "/flights/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "removing flight 4")

	mockService.AssertExpectations(t)
}

func TestFlightHandler_reference(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(mockService)
	airports := []domain.Airport{{ID: 1, Name: "Sheremetyevo", Latitude: 55.9726, Longitude: 37.4146}}
	aircraft := []domain.Aircraft{{ID: 1, Name: "Airbus A320", AvgConsumptionPerKm: 3.1, AvgTakeoffEffort: 800}}
	mockService.On("ListAirports", mock.Anything).Return(airports, nil)
	mockService.On("ListAircraft", mock.Anything).Return(aircraft, nil)

	w := serve(router, "GET", "/airports", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var gotAirports []domain.Airport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gotAirports))
	assert.Equal(t, airports, gotAirports)

	w = serve(router, "GET", "/aircraft", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var gotAircraft []domain.Aircraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gotAircraft))
	assert.Equal(t, aircraft, gotAircraft)
}
