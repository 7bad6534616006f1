package review_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ecofreight/internal/dto"
	"ecofreight/internal/service/review"
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
	idStr := mux.Vars(r)["id"]
	shipmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var reviewCreateDTO dto.ReviewCreate
	err = json.NewDecoder(r.Body).Decode(&reviewCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitReview(r.Context(), shipmentID, reviewCreateDTO.UserID, reviewCreateDTO.Rating, reviewCreateDTO.Comment)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, review.ErrNotEligible):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ReviewCreateResponse{
		ReviewID: result.ReviewID,
		Created:  result.Created,
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Created {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
