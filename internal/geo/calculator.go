// Package geo computes great-circle distances and fuel estimates for flights.
package geo

import (
	"fmt"
	"math"

	"github.com/Domenick1991/flightsinfo/internal/domain"
)

const EarthRadiusKm = 6371.0

// Calculator is the contract the flight orchestrator depends on.
type Calculator interface {
	Distance(lat1, lon1, lat2, lon2 float64) (float64, error)
	FuelConsumption(aircraft *domain.Aircraft, distanceKm float64) (float64, error)
}

// OutOfRangeError reports a coordinate outside its valid bound.
type OutOfRangeError struct {
	Coordinate string
	Value      float64
	Min, Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s value %g out of range [%g, %g]", e.Coordinate, e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Is(target error) bool { return target == domain.ErrOutOfRange }

// InvalidInputError reports a missing or non-positive fuel calculation input.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == domain.ErrInvalidInput }

// Haversine is a stateless Calculator using the haversine formula on a sphere of EarthRadiusKm.
type Haversine struct{}

func NewHaversine() Haversine {
	return Haversine{}
}

func (Haversine) Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := checkRange("latitude1", lat1, 90); err != nil {
		return 0, err
	}
	if err := checkRange("longitude1", lon1, 180); err != nil {
		return 0, err
	}
	if err := checkRange("latitude2", lat2, 90); err != nil {
		return 0, err
	}
	if err := checkRange("longitude2", lon2, 180); err != nil {
		return 0, err
	}

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c, nil
}

func (Haversine) FuelConsumption(aircraft *domain.Aircraft, distanceKm float64) (float64, error) {
	if aircraft == nil {
		return 0, &InvalidInputError{Field: "aircraft", Reason: "is missing"}
	}
	if aircraft.AvgConsumptionPerKm <= 0 {
		return 0, &InvalidInputError{Field: "aircraft.avg_consumption_per_km", Reason: "must be positive"}
	}
	if aircraft.AvgTakeoffEffort <= 0 {
		return 0, &InvalidInputError{Field: "aircraft.avg_takeoff_effort", Reason: "must be positive"}
	}
	if distanceKm <= 0 {
		return 0, &InvalidInputError{Field: "distance_km", Reason: "must be positive"}
	}
	return aircraft.AvgConsumptionPerKm*distanceKm + aircraft.AvgTakeoffEffort, nil
}

func checkRange(name string, v, bound float64) error {
	if v < -bound || v > bound || math.IsNaN(v) {
		return &OutOfRangeError{Coordinate: name, Value: v, Min: -bound, Max: bound}
	}
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

var _ Calculator = Haversine{}
