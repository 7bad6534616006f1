package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecofreight/internal/entities"
	"ecofreight/pkg/logger"
)

type Shipment struct {
	repository    Repository
	ledger        Ledger
	codeFactory   TrackingCodeFactory
	carbonFactory CarbonFactory
	txManager     TxManager
	logger        serviceLogger
}

func New(
	repository Repository,
	ledger Ledger,
	codeFactory TrackingCodeFactory,
	carbonFactory CarbonFactory,
	txManager TxManager,
	logger serviceLogger,
) *Shipment {
	return &Shipment{
		repository:    repository,
		ledger:        ledger,
		codeFactory:   codeFactory,
		carbonFactory: carbonFactory,
		txManager:     txManager,
		logger:        logger,
	}
}

func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.Title == nil ||
		shipmentModify.Origin == nil ||
		shipmentModify.Destination == nil ||
		shipmentModify.TransportMode == nil ||
		shipmentModify.CustomerID == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidTitle(*shipmentModify.Title) {
		return nil, ErrInvalidTitle
	}
	if !isValidLocation(*shipmentModify.Origin) || !isValidLocation(*shipmentModify.Destination) {
		return nil, ErrInvalidLocation
	}
	if !isValidTransportMode(shipmentModify.TransportMode.String()) {
		return nil, ErrInvalidTransportMode
	}
	if shipmentModify.Quantity != nil && *shipmentModify.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if shipmentModify.WeightKg != nil && *shipmentModify.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	// новая перевозка всегда стартует в processing, клиентский статус игнорируем
	initialStatus := entities.DefaultShipmentStatus
	shipmentModify.Status = &initialStatus

	trackingCode := s.codeFactory.Generate()
	shipmentModify.TrackingCode = &trackingCode

	if shipmentModify.CarbonKg == nil && shipmentModify.WeightKg != nil {
		estimate := s.carbonFactory.Estimate(*shipmentModify.TransportMode, *shipmentModify.WeightKg)
		shipmentModify.CarbonKg = &estimate
	}

	created, err := s.repository.Create(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	s.registerOnLedger(ctx, created)

	return created, nil
}

// Transition moves a shipment along the lifecycle state machine.
// actual_arrival is set exactly when the shipment enters delivered.
func (s *Shipment) Transition(ctx context.Context, id int64, newStatus entities.ShipmentStatusType) (*entities.Shipment, error) {
	if !isValidStatus(newStatus.String()) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if !canTransition(current.Status, newStatus) {
			if current.Status == entities.ShipmentDelivered {
				return fmt.Errorf("%s -> %s: %w", current.Status, newStatus, ErrShipmentDelivered)
			}
			return fmt.Errorf("%s -> %s: %w", current.Status, newStatus, ErrInvalidTransition)
		}

		var actualArrival *time.Time
		if newStatus == entities.ShipmentDelivered {
			arrivedAt := time.Now().UTC()
			actualArrival = &arrivedAt
		}

		updated, err = s.repository.UpdateStatus(ctx, id, newStatus, actualArrival)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CanReview reports whether userID may leave a review for the shipment:
// only the customer of a delivered shipment is eligible.
func (s *Shipment) CanReview(shipment *entities.Shipment, userID int64) bool {
	if shipment == nil {
		return false
	}
	return shipment.Status == entities.ShipmentDelivered && shipment.CustomerID == userID
}

func (s *Shipment) UpdateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if shipmentModify.Status != nil {
		return nil, ErrStatusImmutable
	}
	if shipmentModify.Title != nil && !isValidTitle(*shipmentModify.Title) {
		return nil, ErrInvalidTitle
	}
	if shipmentModify.Origin != nil && !isValidLocation(*shipmentModify.Origin) {
		return nil, ErrInvalidLocation
	}
	if shipmentModify.Destination != nil && !isValidLocation(*shipmentModify.Destination) {
		return nil, ErrInvalidLocation
	}
	if shipmentModify.TransportMode != nil && !isValidTransportMode(shipmentModify.TransportMode.String()) {
		return nil, ErrInvalidTransportMode
	}
	if shipmentModify.Quantity != nil && *shipmentModify.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if shipmentModify.WeightKg != nil && *shipmentModify.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	updated, err := s.repository.Update(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}
	return updated, nil
}

func (s *Shipment) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	shipmentEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipmentEntity, nil
}

func (s *Shipment) GetShipmentByTrackingCode(ctx context.Context, trackingCode string) (*entities.Shipment, error) {
	if trackingCode == "" {
		return nil, ErrInvalidTrackingCode
	}

	shipmentEntity, err := s.repository.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return nil, fmt.Errorf("get shipment by tracking code: %w", err)
	}
	return shipmentEntity, nil
}

func (s *Shipment) GetShipments(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get shipments: %w", err)
	}
	return shipments, nil
}

// MarkOverdueDelayed flags every active shipment whose estimated arrival
// has passed. Delivered shipments are never touched.
func (s *Shipment) MarkOverdueDelayed(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.MarkDelayedWhereOverdue(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("delay sweep timed out: %w", err)
		}
		return 0, fmt.Errorf("delay sweep: %w", err)
	}
	return rowsAffected, nil
}

// registerOnLedger is best effort: a ledger outage must not fail shipment
// creation, so the attestation is attempted once and failures are logged.
func (s *Shipment) registerOnLedger(ctx context.Context, shipmentEntity *entities.Shipment) {
	txHash, err := s.ledger.RegisterShipment(ctx, entities.ShipmentRegistration{
		ShipmentID:   shipmentEntity.ID,
		TrackingCode: shipmentEntity.TrackingCode,
		Origin:       shipmentEntity.Origin,
		Destination:  shipmentEntity.Destination,
		CarbonKg:     shipmentEntity.CarbonKg,
		RegisteredAt: shipmentEntity.CreatedAt,
	})
	if err != nil {
		s.logger.Warn("ledger registration failed",
			logger.NewField("shipment_id", shipmentEntity.ID),
			logger.NewField("error", err.Error()),
		)
		return
	}

	if err := s.repository.AttachVerification(ctx, shipmentEntity.ID, txHash); err != nil {
		s.logger.Warn("attach verification failed",
			logger.NewField("shipment_id", shipmentEntity.ID),
			logger.NewField("error", err.Error()),
		)
		return
	}
	shipmentEntity.VerificationRef = &txHash
}
