package dto

import "time"

type TrackingUpdateCreate struct {
	Status        string   `json:"status"`
	Location      string   `json:"location"`
	Notes         *string  `json:"notes,omitempty"`
	TemperatureC  *float64 `json:"temperature_c,omitempty"`
	HumidityPct   *float64 `json:"humidity_pct,omitempty"`
	ShockDetected bool     `json:"shock_detected,omitempty"`
	DriverID      int64    `json:"driver_id,omitempty"`
}

type TrackingUpdateResponse struct {
	EventID               int64     `json:"event_id"`
	RecordedAt            time.Time `json:"recorded_at"`
	StatusChanged         bool      `json:"status_changed"`
	StatusUnchangedReason string    `json:"status_unchanged_reason,omitempty"`
	VerificationRef       *string   `json:"verification_ref,omitempty"`
}

type TrackingEvent struct {
	ID              int64     `json:"id"`
	ShipmentID      int64     `json:"shipment_id"`
	Status          string    `json:"status"`
	Location        string    `json:"location"`
	Notes           *string   `json:"notes,omitempty"`
	TemperatureC    *float64  `json:"temperature_c,omitempty"`
	HumidityPct     *float64  `json:"humidity_pct,omitempty"`
	ShockDetected   bool      `json:"shock_detected,omitempty"`
	DriverID        int64     `json:"driver_id,omitempty"`
	VerificationRef *string   `json:"verification_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type TrackingView struct {
	Shipment Shipment        `json:"shipment"`
	Events   []TrackingEvent `json:"events"`
}
