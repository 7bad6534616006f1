package telemetry_reading

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"ecofreight/internal/entities"
	"ecofreight/internal/service/shipment"
	"ecofreight/internal/service/tracking"
	"ecofreight/pkg/logger"
)

// telemetryEvent is the wire format produced by cold-chain gateways.
type telemetryEvent struct {
	TrackingCode  string    `json:"tracking_code"`
	Temperature   *float64  `json:"temperature"`
	Humidity      *float64  `json:"humidity"`
	ShockDetected bool      `json:"shock_detected"`
	Location      string    `json:"location"`
	RecordedAt    time.Time `json:"recorded_at"`
}

type Handler struct {
	trackingService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, trackingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		trackingService:          trackingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("telemetry.reading: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("telemetry.reading: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event telemetryEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("telemetry.reading handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_code", event.TrackingCode),
		logger.NewField("location", event.Location),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("telemetry.reading processing")

	reading := entities.TelemetryReading{
		TrackingCode:  event.TrackingCode,
		Location:      event.Location,
		TemperatureC:  event.Temperature,
		HumidityPct:   event.Humidity,
		ShockDetected: event.ShockDetected,
		RecordedAt:    event.RecordedAt,
	}

	receipt, err := h.trackingService.RecordTelemetry(ctx, reading)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("telemetry.reading handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, tracking.ErrInvalidTrackingCode),
			errors.Is(err, shipment.ErrInvalidTrackingCode):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("telemetry.reading handler unknown tracking code")

		case errors.Is(err, tracking.ErrShipmentDelivered):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("telemetry.reading handler shipment already delivered")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("telemetry.reading handler failed to record reading")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("tracking_code", event.TrackingCode),
		logger.NewField("event_id", receipt.EventID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("telemetry.reading: processed")

	sess.MarkMessage(message, "")
	return false
}
