package track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"ecofreight/internal/dto"
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
	trackingCode := mux.Vars(r)["code"]

	view, err := h.service.TrackByCode(r.Context(), trackingCode)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidTrackingCode),
			errors.Is(err, shipment.ErrInvalidTrackingCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	viewDTO := dto.TrackingView{
		Shipment: dto.FromShipment(view.Shipment),
		Events:   dto.FromTrackingEvents(view.Events),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(viewDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
