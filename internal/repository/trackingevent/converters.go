package trackingevent

import (
	"ecofreight/internal/entities"
)

func ToDomain(e *TrackingEventDB) *entities.TrackingEvent {
	if e == nil {
		return nil
	}

	return &entities.TrackingEvent{
		ID:              e.ID,
		ShipmentID:      e.ShipmentID,
		Status:          entities.ShipmentStatusType(e.Status),
		Location:        e.Location,
		Notes:           e.Notes,
		TemperatureC:    e.TemperatureC,
		HumidityPct:     e.HumidityPct,
		ShockDetected:   e.ShockDetected,
		DriverID:        e.DriverID,
		VerificationRef: e.VerificationRef,
		CreatedAt:       e.CreatedAt,
	}
}

func ToDomainList(eventsDB []TrackingEventDB) []entities.TrackingEvent {
	if len(eventsDB) == 0 {
		return []entities.TrackingEvent{}
	}

	result := make([]entities.TrackingEvent, len(eventsDB))
	for i, eventDB := range eventsDB {
		result[i] = *ToDomain(&eventDB)
	}
	return result
}
