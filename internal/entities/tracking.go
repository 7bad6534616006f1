package entities

import "time"

// TrackingEvent is an append-only record of a shipment's location and
// condition at a point in time. Events are never mutated after insert,
// except for the one-shot attachment of a verification reference.
type TrackingEvent struct {
	ID              int64
	ShipmentID      int64
	Status          ShipmentStatusType
	Location        string
	Notes           *string
	TemperatureC    *float64
	HumidityPct     *float64
	ShockDetected   bool
	DriverID        int64
	VerificationRef *string
	CreatedAt       time.Time
}

// TrackingEventRecord is the recorder's input.
type TrackingEventRecord struct {
	ShipmentID    int64
	Status        ShipmentStatusType
	Location      string
	Notes         *string
	TemperatureC  *float64
	HumidityPct   *float64
	ShockDetected bool
	DriverID      int64
}

// TrackingReceipt reports the outcome of recording an update.
// The event row and the status transition are independent writes:
// StatusChanged=false with a non-empty reason means the event was
// persisted but the shipment status stayed as it was.
type TrackingReceipt struct {
	EventID               int64
	RecordedAt            time.Time
	StatusChanged         bool
	StatusUnchangedReason string
	VerificationRef       *string
}

// TelemetryReading is a sensor sample from a cold-chain gateway,
// resolved by tracking code rather than shipment id.
type TelemetryReading struct {
	TrackingCode  string
	Location      string
	TemperatureC  *float64
	HumidityPct   *float64
	ShockDetected bool
	RecordedAt    time.Time
}

// TrackingView is the public tracking page payload: the shipment and
// its events, newest first.
type TrackingView struct {
	Shipment Shipment
	Events   []TrackingEvent
}
