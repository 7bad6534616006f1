package shipment

import (
	"ecofreight/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:               s.ID,
		TrackingCode:     s.TrackingCode,
		Title:            s.Title,
		Origin:           s.Origin,
		Destination:      s.Destination,
		TransportMode:    entities.TransportModeType(s.TransportMode),
		ProductType:      s.ProductType,
		Quantity:         s.Quantity,
		WeightKg:         s.WeightKg,
		CarbonKg:         s.CarbonKg,
		CustomerID:       s.CustomerID,
		DriverID:         s.DriverID,
		Status:           entities.ShipmentStatusType(s.Status),
		PlannedDeparture: s.PlannedDeparture,
		EstimatedArrival: s.EstimatedArrival,
		ActualArrival:    s.ActualArrival,
		VerificationRef:  s.VerificationRef,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{
		ID:               shipmentModify.ID,
		TrackingCode:     shipmentModify.TrackingCode,
		Title:            shipmentModify.Title,
		Origin:           shipmentModify.Origin,
		Destination:      shipmentModify.Destination,
		ProductType:      shipmentModify.ProductType,
		Quantity:         shipmentModify.Quantity,
		WeightKg:         shipmentModify.WeightKg,
		CarbonKg:         shipmentModify.CarbonKg,
		CustomerID:       shipmentModify.CustomerID,
		DriverID:         shipmentModify.DriverID,
		PlannedDeparture: shipmentModify.PlannedDeparture,
		EstimatedArrival: shipmentModify.EstimatedArrival,
	}

	if shipmentModify.TransportMode != nil {
		transportMode := shipmentModify.TransportMode.String()
		shipmentDB.TransportMode = &transportMode
	}
	if shipmentModify.Status != nil {
		status := shipmentModify.Status.String()
		shipmentDB.Status = &status
	}

	return shipmentDB
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}
