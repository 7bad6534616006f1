//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_test
package review

import (
	"context"

	"ecofreight/internal/entities"
	"ecofreight/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error)
	Update(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error)
	GetByShipmentAndUser(ctx context.Context, shipmentID, userID int64) (*entities.Review, error)
	AttachVerification(ctx context.Context, id int64, ref string) error
}

type ShipmentService interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
	CanReview(shipment *entities.Shipment, userID int64) bool
}

type Ledger interface {
	AttestReview(ctx context.Context, attestation entities.ReviewAttestation) (string, error)
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
