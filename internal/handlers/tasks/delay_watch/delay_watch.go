package delay_watch

import (
	"context"
	"time"

	"ecofreight/pkg/logger"
)

type Service interface {
	MarkOverdueDelayed(ctx context.Context) (int64, error)
}

type DelayWatch struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDelayWatch(log logger.Logger, service Service, interval time.Duration) *DelayWatch {
	return &DelayWatch{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DelayWatch) TTL() time.Duration {
	return d.interval
}

func (d *DelayWatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.MarkOverdueDelayed(ctxWithTimeout)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("overdue_shipments", rowsAffected),
		).Info("delay watch")
	}

	return err
}

func (d *DelayWatch) Info() string {
	return "delay watch"
}
