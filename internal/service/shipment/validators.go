package shipment

import (
	"strings"

	"ecofreight/internal/entities"
)

func isValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}

func isValidTransportMode(mode string) bool {
	switch mode {
	case "truck", "ship", "rail", "air", "multi_modal":
		return true
	default:
		return false
	}
}

func isValidStatus(status string) bool {
	switch status {
	case "processing", "in_transit", "delivered", "delayed":
		return true
	default:
		return false
	}
}

// canTransition is the fixed edge set of the lifecycle state machine.
// delivered is terminal and has no outgoing edges.
func canTransition(from, to entities.ShipmentStatusType) bool {
	switch from {
	case entities.ShipmentProcessing:
		return to == entities.ShipmentInTransit || to == entities.ShipmentDelayed
	case entities.ShipmentInTransit:
		return to == entities.ShipmentDelivered || to == entities.ShipmentDelayed
	case entities.ShipmentDelayed:
		return to == entities.ShipmentInTransit
	default:
		return false
	}
}
