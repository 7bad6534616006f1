package trackingevent

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type TrackingEventDB struct {
	ID              int64
	ShipmentID      int64
	Status          string
	Location        string
	Notes           *string
	TemperatureC    *float64
	HumidityPct     *float64
	ShockDetected   bool
	DriverID        int64
	VerificationRef *string
	CreatedAt       time.Time
}
