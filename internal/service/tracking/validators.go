package tracking

import "strings"

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "processing", "in_transit", "delivered", "delayed":
		return true
	default:
		return false
	}
}
