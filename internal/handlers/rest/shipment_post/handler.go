package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecofreight/internal/dto"
	"ecofreight/internal/entities"
	"ecofreight/internal/service/shipment"
	"ecofreight/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	transportMode := entities.TransportModeType(shipmentCreateDTO.TransportMode)
	shipmentModifyEntity := entities.ShipmentModify{
		Title:            &shipmentCreateDTO.Title,
		Origin:           &shipmentCreateDTO.Origin,
		Destination:      &shipmentCreateDTO.Destination,
		TransportMode:    &transportMode,
		CustomerID:       &shipmentCreateDTO.CustomerID,
		PlannedDeparture: shipmentCreateDTO.PlannedDeparture,
		EstimatedArrival: shipmentCreateDTO.EstimatedArrival,
	}
	if shipmentCreateDTO.ProductType != "" {
		shipmentModifyEntity.ProductType = &shipmentCreateDTO.ProductType
	}
	if shipmentCreateDTO.Quantity != 0 {
		shipmentModifyEntity.Quantity = &shipmentCreateDTO.Quantity
	}
	if shipmentCreateDTO.WeightKg != 0 {
		shipmentModifyEntity.WeightKg = &shipmentCreateDTO.WeightKg
	}
	if shipmentCreateDTO.DriverID != 0 {
		shipmentModifyEntity.DriverID = &shipmentCreateDTO.DriverID
	}

	shipmentEntity, err := h.service.CreateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidTitle),
			errors.Is(err, shipment.ErrInvalidLocation),
			errors.Is(err, shipment.ErrInvalidTransportMode),
			errors.Is(err, shipment.ErrInvalidQuantity),
			errors.Is(err, shipment.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShipmentCreateResponse{
		ID:              shipmentEntity.ID,
		TrackingCode:    shipmentEntity.TrackingCode,
		Status:          shipmentEntity.Status.String(),
		CarbonKg:        shipmentEntity.CarbonKg,
		VerificationRef: shipmentEntity.VerificationRef,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
