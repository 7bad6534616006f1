package update_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ecofreight/internal/dto"
	"ecofreight/internal/entities"
	"ecofreight/internal/service/shipment"
	"ecofreight/internal/service/tracking"
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
	idStr := mux.Vars(r)["id"]
	shipmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateCreateDTO dto.TrackingUpdateCreate
	err = json.NewDecoder(r.Body).Decode(&updateCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record := entities.TrackingEventRecord{
		ShipmentID:    shipmentID,
		Status:        entities.ShipmentStatusType(updateCreateDTO.Status),
		Location:      updateCreateDTO.Location,
		Notes:         updateCreateDTO.Notes,
		TemperatureC:  updateCreateDTO.TemperatureC,
		HumidityPct:   updateCreateDTO.HumidityPct,
		ShockDetected: updateCreateDTO.ShockDetected,
		DriverID:      updateCreateDTO.DriverID,
	}

	receipt, err := h.service.RecordUpdate(r.Context(), record)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidLocation),
			errors.Is(err, tracking.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrShipmentDelivered):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TrackingUpdateResponse{
		EventID:               receipt.EventID,
		RecordedAt:            receipt.RecordedAt,
		StatusChanged:         receipt.StatusChanged,
		StatusUnchangedReason: receipt.StatusUnchangedReason,
		VerificationRef:       receipt.VerificationRef,
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
