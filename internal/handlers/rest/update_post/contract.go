//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=update_post_test
package update_post

import (
	"context"

	"ecofreight/internal/entities"
	"ecofreight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RecordUpdate(ctx context.Context, record entities.TrackingEventRecord) (*entities.TrackingReceipt, error)
}
