package entities

import (
	"time"
)

type Shipment struct {
	ID               int64
	TrackingCode     string
	Title            string
	Origin           string
	Destination      string
	TransportMode    TransportModeType
	ProductType      string
	Quantity         int64
	WeightKg         float64
	CarbonKg         float64
	CustomerID       int64
	DriverID         int64
	Status           ShipmentStatusType
	PlannedDeparture time.Time
	EstimatedArrival time.Time
	ActualArrival    *time.Time
	VerificationRef  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TransportModeType string

const (
	Truck      TransportModeType = "truck"
	Ship       TransportModeType = "ship"
	Rail       TransportModeType = "rail"
	Air        TransportModeType = "air"
	MultiModal TransportModeType = "multi_modal"
)

const DefaultTransportMode = Truck

func (t TransportModeType) String() string {
	return string(t)
}

type ShipmentStatusType string

const (
	ShipmentProcessing ShipmentStatusType = "processing"
	ShipmentInTransit  ShipmentStatusType = "in_transit"
	ShipmentDelivered  ShipmentStatusType = "delivered"
	ShipmentDelayed    ShipmentStatusType = "delayed"
)

const DefaultShipmentStatus = ShipmentProcessing

func (s ShipmentStatusType) String() string {
	return string(s)
}

type ShipmentModify struct {
	ID               *int64
	TrackingCode     *string
	Title            *string
	Origin           *string
	Destination      *string
	TransportMode    *TransportModeType
	ProductType      *string
	Quantity         *int64
	WeightKg         *float64
	CarbonKg         *float64
	CustomerID       *int64
	DriverID         *int64
	Status           *ShipmentStatusType
	PlannedDeparture *time.Time
	EstimatedArrival *time.Time
}
