package dto

import (
	"ecofreight/internal/entities"
)

func FromShipment(shipmentEntity entities.Shipment) Shipment {
	return Shipment{
		ID:               shipmentEntity.ID,
		TrackingCode:     shipmentEntity.TrackingCode,
		Title:            shipmentEntity.Title,
		Origin:           shipmentEntity.Origin,
		Destination:      shipmentEntity.Destination,
		TransportMode:    shipmentEntity.TransportMode.String(),
		ProductType:      shipmentEntity.ProductType,
		Quantity:         shipmentEntity.Quantity,
		WeightKg:         shipmentEntity.WeightKg,
		CarbonKg:         shipmentEntity.CarbonKg,
		CustomerID:       shipmentEntity.CustomerID,
		DriverID:         shipmentEntity.DriverID,
		Status:           shipmentEntity.Status.String(),
		PlannedDeparture: shipmentEntity.PlannedDeparture,
		EstimatedArrival: shipmentEntity.EstimatedArrival,
		ActualArrival:    shipmentEntity.ActualArrival,
		VerificationRef:  shipmentEntity.VerificationRef,
		CreatedAt:        shipmentEntity.CreatedAt,
		UpdatedAt:        shipmentEntity.UpdatedAt,
	}
}

func FromTrackingEvent(eventEntity entities.TrackingEvent) TrackingEvent {
	return TrackingEvent{
		ID:              eventEntity.ID,
		ShipmentID:      eventEntity.ShipmentID,
		Status:          eventEntity.Status.String(),
		Location:        eventEntity.Location,
		Notes:           eventEntity.Notes,
		TemperatureC:    eventEntity.TemperatureC,
		HumidityPct:     eventEntity.HumidityPct,
		ShockDetected:   eventEntity.ShockDetected,
		DriverID:        eventEntity.DriverID,
		VerificationRef: eventEntity.VerificationRef,
		CreatedAt:       eventEntity.CreatedAt,
	}
}

func FromTrackingEvents(eventEntities []entities.TrackingEvent) []TrackingEvent {
	events := make([]TrackingEvent, len(eventEntities))
	for i, eventEntity := range eventEntities {
		events[i] = FromTrackingEvent(eventEntity)
	}
	return events
}
