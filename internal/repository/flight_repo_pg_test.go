package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewPGStore(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewPGStore(pool)
	assert.NotNil(t, repo)
}

func TestClassify(t *testing.T) {
	notFoundErr := classify("pg.find_airport", fmt.Errorf("scan: %w", pgx.ErrNoRows))
	assert.ErrorIs(t, notFoundErr, domain.ErrNotFound)
	assert.True(t, domain.IsKind(notFoundErr, domain.KindNotFound))

	dupErr := classify("pg.insert_flight", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "flights_route_uniq"})
	assert.ErrorIs(t, dupErr, domain.ErrDuplicate)

	otherErr := classify("pg.insert_flight", &pgconn.PgError{Code: "23514"})
	assert.ErrorIs(t, otherErr, domain.ErrPersistence)

	faultErr := classify("pg.find_aircraft", errors.New("conn closed"))
	assert.ErrorIs(t, faultErr, domain.ErrPersistence)
	assert.Contains(t, faultErr.Error(), "conn closed")
}

func TestTrackingMode_String(t *testing.T) {
	assert.Equal(t, "tracking", Tracking.String())
	assert.Equal(t, "no_tracking", NoTracking.String())
}

func TestEmbeddedMigrations(t *testing.T) {
	data, err := migrations.ReadFile("migrations/001_init.sql")
	assert.NoError(t, err)
	assert.Contains(t, string(data), "flights_route_uniq")
}
