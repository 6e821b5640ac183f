package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"gopkg.in/yaml.v3"
)

// Seed is the reference data file loaded before flights can be created.
type Seed struct {
	Airports []domain.Airport  `yaml:"airports"`
	Aircraft []domain.Aircraft `yaml:"aircraft"`
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate rejects reference data the fuel and distance calculations would refuse later.
func (s *Seed) Validate() error {
	airportIDs := make(map[int64]struct{}, len(s.Airports))
	for _, a := range s.Airports {
		if _, dup := airportIDs[a.ID]; dup {
			return fmt.Errorf("airport %d: duplicate id", a.ID)
		}
		airportIDs[a.ID] = struct{}{}
		if a.Latitude < -90 || a.Latitude > 90 {
			return fmt.Errorf("airport %d: latitude %g: %w", a.ID, a.Latitude, domain.ErrOutOfRange)
		}
		if a.Longitude < -180 || a.Longitude > 180 {
			return fmt.Errorf("airport %d: longitude %g: %w", a.ID, a.Longitude, domain.ErrOutOfRange)
		}
	}

	aircraftIDs := make(map[int64]struct{}, len(s.Aircraft))
	for _, a := range s.Aircraft {
		if _, dup := aircraftIDs[a.ID]; dup {
			return fmt.Errorf("aircraft %d: duplicate id", a.ID)
		}
		aircraftIDs[a.ID] = struct{}{}
		if a.AvgConsumptionPerKm <= 0 {
			return fmt.Errorf("aircraft %d: avg_consumption_per_km must be positive: %w", a.ID, domain.ErrInvalidInput)
		}
		if a.AvgTakeoffEffort <= 0 {
			return fmt.Errorf("aircraft %d: avg_takeoff_effort must be positive: %w", a.ID, domain.ErrInvalidInput)
		}
	}
	return nil
}

// Apply writes the seed through w and returns how many records were upserted.
func (s *Seed) Apply(ctx context.Context, w ReferenceWriter) (int, error) {
	n := 0
	for _, a := range s.Airports {
		if err := w.UpsertAirport(ctx, a); err != nil {
			return n, err
		}
		n++
	}
	for _, a := range s.Aircraft {
		if err := w.UpsertAircraft(ctx, a); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
