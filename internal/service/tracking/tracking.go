package tracking

import (
	"context"
	"errors"
	"fmt"

	"ecofreight/internal/entities"
	"ecofreight/internal/service/shipment"
	"ecofreight/pkg/logger"
)

type Tracking struct {
	repository      Repository
	shipmentService ShipmentService
	ledger          Ledger
	cache           Cache
	logger          serviceLogger
}

func New(
	repository Repository,
	shipmentService ShipmentService,
	ledger Ledger,
	cache Cache,
	logger serviceLogger,
) *Tracking {
	return &Tracking{
		repository:      repository,
		shipmentService: shipmentService,
		ledger:          ledger,
		cache:           cache,
		logger:          logger,
	}
}

// RecordUpdate is a three stage pipeline with independent failure modes:
// the event row is persisted first, then the status transition is attempted,
// then the ledger attestation. A rejected transition does not roll back the
// event, it is reported through the receipt instead.
func (t *Tracking) RecordUpdate(ctx context.Context, record entities.TrackingEventRecord) (*entities.TrackingReceipt, error) {
	if !isValidLocation(record.Location) {
		return nil, ErrInvalidLocation
	}
	if !isValidStatus(record.Status.String()) {
		return nil, ErrInvalidStatus
	}

	shipmentEntity, err := t.shipmentService.GetShipment(ctx, record.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if shipmentEntity.Status == entities.ShipmentDelivered {
		return nil, ErrShipmentDelivered
	}

	event, err := t.repository.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("create tracking event: %w", err)
	}

	receipt := entities.TrackingReceipt{
		EventID:       event.ID,
		RecordedAt:    event.CreatedAt,
		StatusChanged: false,
	}

	switch {
	case record.Status == shipmentEntity.Status:
		receipt.StatusUnchangedReason = "status unchanged"
	default:
		_, err := t.shipmentService.Transition(ctx, record.ShipmentID, record.Status)
		switch {
		case err == nil:
			receipt.StatusChanged = true
		case errors.Is(err, shipment.ErrInvalidTransition), errors.Is(err, shipment.ErrShipmentDelivered):
			// событие уже записано, отклоненный переход попадает в квитанцию
			receipt.StatusUnchangedReason = err.Error()
		default:
			return nil, fmt.Errorf("transition shipment: %w", err)
		}
	}

	t.attestUpdate(ctx, shipmentEntity, event, &receipt)
	t.invalidateView(ctx, shipmentEntity.TrackingCode)

	return &receipt, nil
}

// TrackByCode serves the public tracking page, cache aside over redis.
func (t *Tracking) TrackByCode(ctx context.Context, trackingCode string) (*entities.TrackingView, error) {
	if trackingCode == "" {
		return nil, ErrInvalidTrackingCode
	}

	cached, err := t.cache.GetTrackingView(ctx, trackingCode)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrTrackingViewNotCached) {
		t.logger.Warn("tracking view cache read failed",
			logger.NewField("tracking_code", trackingCode),
			logger.NewField("error", err.Error()),
		)
	}

	shipmentEntity, err := t.shipmentService.GetShipmentByTrackingCode(ctx, trackingCode)
	if err != nil {
		return nil, fmt.Errorf("get shipment by tracking code: %w", err)
	}

	events, err := t.repository.ListByShipmentID(ctx, shipmentEntity.ID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}

	view := &entities.TrackingView{
		Shipment: *shipmentEntity,
		Events:   events,
	}

	if err := t.cache.SetTrackingView(ctx, trackingCode, view); err != nil {
		t.logger.Warn("tracking view cache write failed",
			logger.NewField("tracking_code", trackingCode),
			logger.NewField("error", err.Error()),
		)
	}

	return view, nil
}

func (t *Tracking) ListEvents(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error) {
	events, err := t.repository.ListByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	return events, nil
}

// RecordTelemetry turns a sensor sample into a tracking event on the
// shipment's current status, so it never moves the state machine.
func (t *Tracking) RecordTelemetry(ctx context.Context, reading entities.TelemetryReading) (*entities.TrackingReceipt, error) {
	if reading.TrackingCode == "" {
		return nil, ErrInvalidTrackingCode
	}

	shipmentEntity, err := t.shipmentService.GetShipmentByTrackingCode(ctx, reading.TrackingCode)
	if err != nil {
		return nil, fmt.Errorf("resolve tracking code: %w", err)
	}

	record := entities.TrackingEventRecord{
		ShipmentID:    shipmentEntity.ID,
		Status:        shipmentEntity.Status,
		Location:      reading.Location,
		TemperatureC:  reading.TemperatureC,
		HumidityPct:   reading.HumidityPct,
		ShockDetected: reading.ShockDetected,
		DriverID:      shipmentEntity.DriverID,
	}

	return t.RecordUpdate(ctx, record)
}

// attestUpdate is best effort and single attempt: the ledger never gates
// the recorder pipeline, failures are logged and the receipt stays unverified.
func (t *Tracking) attestUpdate(ctx context.Context, shipmentEntity *entities.Shipment, event *entities.TrackingEvent, receipt *entities.TrackingReceipt) {
	txHash, err := t.ledger.AttestUpdate(ctx, entities.UpdateAttestation{
		ShipmentID: shipmentEntity.ID,
		Status:     event.Status,
		Location:   event.Location,
		DriverID:   event.DriverID,
		RecordedAt: event.CreatedAt,
	})
	if err != nil {
		t.logger.Warn("ledger attestation failed",
			logger.NewField("shipment_id", shipmentEntity.ID),
			logger.NewField("event_id", event.ID),
			logger.NewField("error", err.Error()),
		)
		return
	}

	if err := t.repository.AttachVerification(ctx, event.ID, txHash); err != nil {
		t.logger.Warn("attach verification failed",
			logger.NewField("event_id", event.ID),
			logger.NewField("error", err.Error()),
		)
		return
	}
	receipt.VerificationRef = &txHash
}

func (t *Tracking) invalidateView(ctx context.Context, trackingCode string) {
	if err := t.cache.Invalidate(ctx, trackingCode); err != nil {
		t.logger.Warn("tracking view cache invalidation failed",
			logger.NewField("tracking_code", trackingCode),
			logger.NewField("error", err.Error()),
		)
	}
}
