//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"ecofreight/internal/entities"
	"ecofreight/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, record entities.TrackingEventRecord) (*entities.TrackingEvent, error)
	ListByShipmentID(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error)
	AttachVerification(ctx context.Context, id int64, ref string) error
}

type ShipmentService interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
	GetShipmentByTrackingCode(ctx context.Context, trackingCode string) (*entities.Shipment, error)
	Transition(ctx context.Context, id int64, newStatus entities.ShipmentStatusType) (*entities.Shipment, error)
}

type Ledger interface {
	AttestUpdate(ctx context.Context, attestation entities.UpdateAttestation) (string, error)
}

type Cache interface {
	GetTrackingView(ctx context.Context, trackingCode string) (*entities.TrackingView, error)
	SetTrackingView(ctx context.Context, trackingCode string, view *entities.TrackingView) error
	Invalidate(ctx context.Context, trackingCode string) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
