//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"ecofreight/internal/entities"
	"ecofreight/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByTrackingCode(ctx context.Context, trackingCode string) (*entities.Shipment, error)
	GetAll(ctx context.Context) ([]entities.Shipment, error)
	Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ShipmentStatusType, actualArrival *time.Time) (*entities.Shipment, error)
	AttachVerification(ctx context.Context, id int64, ref string) error
	MarkDelayedWhereOverdue(ctx context.Context) (int64, error)
}

type Ledger interface {
	RegisterShipment(ctx context.Context, registration entities.ShipmentRegistration) (string, error)
}

type TrackingCodeFactory interface {
	Generate() string
}

type CarbonFactory interface {
	Estimate(transportMode entities.TransportModeType, weightKg float64) float64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
