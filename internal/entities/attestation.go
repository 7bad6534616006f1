package entities

import "time"

// Attestation payloads form the closed set of operations accepted by the
// chain-attestation collaborator. Each variant carries a fixed field set;
// the gateway tags them with the operation name on the wire.

type ShipmentRegistration struct {
	ShipmentID   int64
	TrackingCode string
	Origin       string
	Destination  string
	CarbonKg     float64
	RegisteredAt time.Time
}

type UpdateAttestation struct {
	ShipmentID int64
	Status     ShipmentStatusType
	Location   string
	DriverID   int64
	RecordedAt time.Time
}

type ReviewAttestation struct {
	ShipmentID  int64
	UserID      int64
	Rating      int
	SubmittedAt time.Time
}
