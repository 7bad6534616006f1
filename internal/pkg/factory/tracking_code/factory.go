package tracking_code

import (
	"strings"

	"github.com/google/uuid"
)

const codePrefix = "ECO-"

type TrackingCodeFactory struct{}

func New() *TrackingCodeFactory {
	return &TrackingCodeFactory{}
}

// Generate выдает публичный код вида ECO-XXXXXXXX.
func (t *TrackingCodeFactory) Generate() string {
	id := uuid.New()
	compact := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return codePrefix + compact[:8]
}
