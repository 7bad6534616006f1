package carbon_estimate

import (
	"ecofreight/internal/entities"
)

// Удельные выбросы CO2 на тонно-километр усреднены по виду транспорта,
// расчет ведется по нормативной дистанции плеча.
const (
	referenceDistanceKm = 1000.0

	truckFactor = 0.105
	shipFactor  = 0.016
	railFactor  = 0.028
	airFactor   = 0.602
	multiFactor = 0.075
)

type CarbonEstimateFactory struct{}

func New() *CarbonEstimateFactory {
	return &CarbonEstimateFactory{}
}

func (c *CarbonEstimateFactory) Estimate(transportMode entities.TransportModeType, weightKg float64) float64 {
	factor := truckFactor
	switch transportMode {
	case entities.Truck:
		factor = truckFactor
	case entities.Ship:
		factor = shipFactor
	case entities.Rail:
		factor = railFactor
	case entities.Air:
		factor = airFactor
	case entities.MultiModal:
		factor = multiFactor
	}

	tonnes := weightKg / 1000.0
	return tonnes * referenceDistanceKm * factor
}
