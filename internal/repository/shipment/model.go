package shipment

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

type ShipmentDB struct {
	ID               int64
	TrackingCode     string
	Title            string
	Origin           string
	Destination      string
	TransportMode    string
	ProductType      string
	Quantity         int64
	WeightKg         float64
	CarbonKg         float64
	CustomerID       int64
	DriverID         int64
	Status           string
	PlannedDeparture time.Time
	EstimatedArrival time.Time
	ActualArrival    *time.Time
	VerificationRef  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ShipmentModifyDB struct {
	ID               *int64
	TrackingCode     *string
	Title            *string
	Origin           *string
	Destination      *string
	TransportMode    *string
	ProductType      *string
	Quantity         *int64
	WeightKg         *float64
	CarbonKg         *float64
	CustomerID       *int64
	DriverID         *int64
	Status           *string
	PlannedDeparture *time.Time
	EstimatedArrival *time.Time
}
