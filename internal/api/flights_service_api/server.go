package flights_service_api

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/Domenick1991/flightsinfo/internal/service/flights"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server implements FlightsServiceServer on top of the flight use cases.
type Server struct {
	flights flights.FlightUseCase
}

func NewServer(flights flights.FlightUseCase) *Server {
	return &Server{flights: flights}
}

func (s *Server) ListFlights(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	list, err := s.flights.List(ctx)
	if err != nil {
		return nil, lookupError(err)
	}
	items := make([]any, 0, len(list))
	for i := range list {
		items = append(items, viewFields(&list[i]))
	}
	return toList(items)
}

func (s *Server) GetFlight(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	view, err := s.flights.GetByID(ctx, req.GetValue())
	if err != nil {
		return nil, lookupError(err)
	}
	return toStruct(viewFields(view))
}

func (s *Server) AddFlight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := flightInput(req, false)
	if err != nil {
		return nil, err
	}
	result := s.flights.Add(ctx, input)
	return resultStruct(result.Status.String(), result.Info, result.Flight)
}

func (s *Server) EditFlight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := flightInput(req, true)
	if err != nil {
		return nil, err
	}
	result := s.flights.Edit(ctx, input)
	return resultStruct(result.Status.String(), result.Info, result.Flight)
}

func (s *Server) RemoveFlight(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	result := s.flights.Remove(ctx, req.GetValue())
	return resultStruct(result.Status.String(), result.Info, nil)
}

func (s *Server) ListAirports(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	airports, err := s.flights.ListAirports(ctx)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	items := make([]any, 0, len(airports))
	for _, a := range airports {
		items = append(items, map[string]any{
			"id":        a.ID,
			"name":      a.Name,
			"latitude":  a.Latitude,
			"longitude": a.Longitude,
		})
	}
	return toList(items)
}

func (s *Server) ListAircraft(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	aircraft, err := s.flights.ListAircraft(ctx)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	items := make([]any, 0, len(aircraft))
	for _, a := range aircraft {
		items = append(items, map[string]any{
			"id":                     a.ID,
			"name":                   a.Name,
			"avg_consumption_per_km": a.AvgConsumptionPerKm,
			"avg_takeoff_effort":     a.AvgTakeoffEffort,
		})
	}
	return toList(items)
}

func flightInput(req *structpb.Struct, withID bool) (domain.FlightInput, error) {
	var input domain.FlightInput
	var err error
	if withID {
		if input.FlightID, err = intField(req, "flight_id"); err != nil {
			return input, err
		}
	}
	if input.DepartureAirportID, err = intField(req, "departure_airport_id"); err != nil {
		return input, err
	}
	if input.DestinationAirportID, err = intField(req, "destination_airport_id"); err != nil {
		return input, err
	}
	if input.AircraftID, err = intField(req, "aircraft_id"); err != nil {
		return input, err
	}
	return input, nil
}

func intField(req *structpb.Struct, name string) (int64, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || n.NumberValue <= 0 {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a positive integer", name)
	}
	return int64(n.NumberValue), nil
}

func viewFields(v *domain.FlightView) map[string]any {
	fields := flightFields(&v.Flight)
	fields["departure_airport_name"] = v.DepartureAirportName
	fields["destination_airport_name"] = v.DestinationAirportName
	fields["aircraft_name"] = v.AircraftName
	return fields
}

func flightFields(f *domain.Flight) map[string]any {
	return map[string]any{
		"id":                     f.ID,
		"departure_airport_id":   f.DepartureAirportID,
		"destination_airport_id": f.DestinationAirportID,
		"aircraft_id":            f.AircraftID,
		"distance":               f.Distance,
		"fuel_consumption":       f.FuelConsumption,
	}
}

func resultStruct(statusName, info string, flight *domain.Flight) (*structpb.Struct, error) {
	fields := map[string]any{"status": statusName}
	if info != "" {
		fields["info"] = info
	}
	if flight != nil {
		fields["flight"] = flightFields(flight)
	}
	return toStruct(fields)
}

func toStruct(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return out, nil
}

func toList(items []any) (*structpb.ListValue, error) {
	out, err := structpb.NewList(items)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return out, nil
}

func lookupError(err error) error {
	if errors.Is(err, domain.ErrPersistence) {
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Error(codes.NotFound, err.Error())
}

var _ FlightsServiceServer = (*Server)(nil)
