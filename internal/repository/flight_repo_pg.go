package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const flightColumns = `id, departure_airport_id, destination_airport_id, aircraft_id, distance_km, fuel_consumption_l`

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (r *PGStore) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
	if err != nil {
		return nil, persistence("pg.list_flights", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.DepartureAirportID, &f.DestinationAirportID, &f.AircraftID, &f.Distance, &f.FuelConsumption); err != nil {
			return nil, persistence("pg.list_flights", err)
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("pg.list_flights", err)
	}
	return flights, nil
}

func (r *PGStore) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, latitude, longitude FROM airports ORDER BY id`)
	if err != nil {
		return nil, persistence("pg.list_airports", err)
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.Latitude, &a.Longitude); err != nil {
			return nil, persistence("pg.list_airports", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("pg.list_airports", err)
	}
	return airports, nil
}

func (r *PGStore) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, avg_consumption_per_km, avg_takeoff_effort FROM aircraft ORDER BY id`)
	if err != nil {
		return nil, persistence("pg.list_aircraft", err)
	}
	defer rows.Close()

	aircraft := make([]domain.Aircraft, 0)
	for rows.Next() {
		var a domain.Aircraft
		if err := rows.Scan(&a.ID, &a.Name, &a.AvgConsumptionPerKm, &a.AvgTakeoffEffort); err != nil {
			return nil, persistence("pg.list_aircraft", err)
		}
		aircraft = append(aircraft, a)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("pg.list_aircraft", err)
	}
	return aircraft, nil
}

// FindFlight reads one flight. NoTracking reads run in a read-only transaction
// so they can never block or be blocked by a writer of the same row.
func (r *PGStore) FindFlight(ctx context.Context, id int64, mode TrackingMode) (*domain.Flight, error) {
	const query = `SELECT ` + flightColumns + ` FROM flights WHERE id=$1`

	if mode == Tracking {
		return scanFlight("pg.find_flight", r.db.QueryRow(ctx, query, id))
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, persistence("pg.find_flight", err)
	}
	defer tx.Rollback(ctx)

	f, err := scanFlight("pg.find_flight", tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, persistence("pg.find_flight", err)
	}
	return f, nil
}

func (r *PGStore) FindAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx, `SELECT id, name, latitude, longitude FROM airports WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.Latitude, &a.Longitude)
	if err != nil {
		return nil, classify("pg.find_airport", err)
	}
	return &a, nil
}

func (r *PGStore) FindAircraft(ctx context.Context, id int64) (*domain.Aircraft, error) {
	var a domain.Aircraft
	err := r.db.QueryRow(ctx, `SELECT id, name, avg_consumption_per_km, avg_takeoff_effort FROM aircraft WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.AvgConsumptionPerKm, &a.AvgTakeoffEffort)
	if err != nil {
		return nil, classify("pg.find_aircraft", err)
	}
	return &a, nil
}

func (r *PGStore) Insert(ctx context.Context, flight *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (departure_airport_id, destination_airport_id, aircraft_id, distance_km, fuel_consumption_l)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, flight.DepartureAirportID, flight.DestinationAirportID, flight.AircraftID, flight.Distance, flight.FuelConsumption).
		Scan(&flight.ID)
	if err != nil {
		return classify("pg.insert_flight", err)
	}
	return nil
}

func (r *PGStore) Replace(ctx context.Context, flight *domain.Flight) error {
	cmd, err := r.db.Exec(ctx, `UPDATE flights
		SET departure_airport_id=$1, destination_airport_id=$2, aircraft_id=$3, distance_km=$4, fuel_consumption_l=$5, updated_at=now()
		WHERE id=$6`, flight.DepartureAirportID, flight.DestinationAirportID, flight.AircraftID, flight.Distance, flight.FuelConsumption, flight.ID)
	if err != nil {
		return classify("pg.replace_flight", err)
	}
	if cmd.RowsAffected() == 0 {
		return notFound("pg.replace_flight")
	}
	return nil
}

func (r *PGStore) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return persistence("pg.delete_flight", err)
	}
	if cmd.RowsAffected() == 0 {
		return notFound("pg.delete_flight")
	}
	return nil
}

func (r *PGStore) UpsertAirport(ctx context.Context, airport domain.Airport) error {
	_, err := r.db.Exec(ctx, `INSERT INTO airports (id, name, latitude, longitude) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, latitude=EXCLUDED.latitude, longitude=EXCLUDED.longitude`,
		airport.ID, airport.Name, airport.Latitude, airport.Longitude)
	if err != nil {
		return persistence("pg.upsert_airport", err)
	}
	return nil
}

func (r *PGStore) UpsertAircraft(ctx context.Context, aircraft domain.Aircraft) error {
	_, err := r.db.Exec(ctx, `INSERT INTO aircraft (id, name, avg_consumption_per_km, avg_takeoff_effort) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, avg_consumption_per_km=EXCLUDED.avg_consumption_per_km, avg_takeoff_effort=EXCLUDED.avg_takeoff_effort`,
		aircraft.ID, aircraft.Name, aircraft.AvgConsumptionPerKm, aircraft.AvgTakeoffEffort)
	if err != nil {
		return persistence("pg.upsert_aircraft", err)
	}
	return nil
}

func (r *PGStore) Close() {
	r.db.Close()
}

func scanFlight(op string, row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.DepartureAirportID, &f.DestinationAirportID, &f.AircraftID, &f.Distance, &f.FuelConsumption); err != nil {
		return nil, classify(op, err)
	}
	return &f, nil
}

// classify maps driver errors onto the store's error kinds.
func classify(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return duplicate(op, err)
	}
	return persistence(op, err)
}

var (
	_ FlightStore     = (*PGStore)(nil)
	_ ReferenceWriter = (*PGStore)(nil)
)
