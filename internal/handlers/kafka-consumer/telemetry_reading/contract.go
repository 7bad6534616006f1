package telemetry_reading

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
	RecordTelemetry(ctx context.Context, reading entities.TelemetryReading) (*entities.TrackingReceipt, error)
}
