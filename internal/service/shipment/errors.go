package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTitle          = errors.New("invalid title")
	ErrInvalidLocation       = errors.New("invalid origin or destination")
	ErrInvalidTransportMode  = errors.New("invalid transport mode")
	ErrInvalidStatus         = errors.New("invalid shipment status")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidTrackingCode   = errors.New("invalid tracking code")
	ErrStatusImmutable       = errors.New("status can only change through a lifecycle transition")

	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrShipmentDelivered = errors.New("delivered is terminal")
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrConflict          = errors.New("resource already exists")
)
