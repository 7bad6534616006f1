package review

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

type ReviewDB struct {
	ID              int64
	ShipmentID      int64
	UserID          int64
	Rating          int
	Comment         *string
	Approved        bool
	VerificationRef *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ReviewModifyDB struct {
	ID         *int64
	ShipmentID *int64
	UserID     *int64
	Rating     *int
	Comment    *string
	Approved   *bool
}
