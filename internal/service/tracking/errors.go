package tracking

import "errors"

var (
	ErrInvalidLocation     = errors.New("invalid location")
	ErrInvalidStatus       = errors.New("invalid shipment status")
	ErrInvalidTrackingCode = errors.New("invalid tracking code")
	ErrShipmentDelivered   = errors.New("shipment already delivered")

	// ErrTrackingViewNotCached маппится кэш-репозиторием из redis.Nil.
	ErrTrackingViewNotCached = errors.New("tracking view not cached")
)
