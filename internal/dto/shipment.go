// Package dto holds the JSON request and response shapes of the HTTP API.
package dto

import "time"

type ShipmentCreate struct {
	Title            string     `json:"title"`
	Origin           string     `json:"origin"`
	Destination      string     `json:"destination"`
	TransportMode    string     `json:"transport_mode"`
	ProductType      string     `json:"product_type,omitempty"`
	Quantity         int64      `json:"quantity,omitempty"`
	WeightKg         float64    `json:"weight_kg,omitempty"`
	CustomerID       int64      `json:"customer_id"`
	DriverID         int64      `json:"driver_id,omitempty"`
	PlannedDeparture *time.Time `json:"planned_departure,omitempty"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
}

type ShipmentCreateResponse struct {
	ID              int64   `json:"id"`
	TrackingCode    string  `json:"tracking_code"`
	Status          string  `json:"status"`
	CarbonKg        float64 `json:"carbon_kg"`
	VerificationRef *string `json:"verification_ref,omitempty"`
}

type Shipment struct {
	ID               int64      `json:"id"`
	TrackingCode     string     `json:"tracking_code"`
	Title            string     `json:"title"`
	Origin           string     `json:"origin"`
	Destination      string     `json:"destination"`
	TransportMode    string     `json:"transport_mode"`
	ProductType      string     `json:"product_type,omitempty"`
	Quantity         int64      `json:"quantity,omitempty"`
	WeightKg         float64    `json:"weight_kg,omitempty"`
	CarbonKg         float64    `json:"carbon_kg,omitempty"`
	CustomerID       int64      `json:"customer_id"`
	DriverID         int64      `json:"driver_id,omitempty"`
	Status           string     `json:"status"`
	PlannedDeparture time.Time  `json:"planned_departure"`
	EstimatedArrival time.Time  `json:"estimated_arrival"`
	ActualArrival    *time.Time `json:"actual_arrival,omitempty"`
	VerificationRef  *string    `json:"verification_ref,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type ShipmentStatusUpdate struct {
	Status string `json:"status"`
}
