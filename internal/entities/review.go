package entities

import "time"

type Review struct {
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

type ReviewModify struct {
	ID         *int64
	ShipmentID *int64
	UserID     *int64
	Rating     *int
	Comment    *string
	Approved   *bool
}

// ReviewResult reports the upsert outcome: Created is false when an
// existing (shipment, user) review was overwritten.
type ReviewResult struct {
	ReviewID int64
	Created  bool
}
