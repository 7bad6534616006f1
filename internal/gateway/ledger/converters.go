package ledger

import (
	"time"

	"ecofreight/internal/entities"
)

// Операции закрытого набора, которые принимает леджер.
const (
	opRegisterShipment = "register_shipment"
	opRecordUpdate     = "record_update"
	opSubmitReview     = "submit_review"
)

type registerShipmentRequest struct {
	Operation    string    `json:"operation"`
	ShipmentID   int64     `json:"shipmentId"`
	TrackingCode string    `json:"trackingCode"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	CarbonKg     float64   `json:"carbonKg"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type recordUpdateRequest struct {
	Operation  string    `json:"operation"`
	ShipmentID int64     `json:"shipmentId"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	DriverID   int64     `json:"driverId"`
	RecordedAt time.Time `json:"recordedAt"`
}

type submitReviewRequest struct {
	Operation   string    `json:"operation"`
	ShipmentID  int64     `json:"shipmentId"`
	UserID      int64     `json:"userId"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type attestationResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
}

func fromRegistration(registration entities.ShipmentRegistration) registerShipmentRequest {
	return registerShipmentRequest{
		Operation:    opRegisterShipment,
		ShipmentID:   registration.ShipmentID,
		TrackingCode: registration.TrackingCode,
		Origin:       registration.Origin,
		Destination:  registration.Destination,
		CarbonKg:     registration.CarbonKg,
		RegisteredAt: registration.RegisteredAt,
	}
}

func fromUpdateAttestation(attestation entities.UpdateAttestation) recordUpdateRequest {
	return recordUpdateRequest{
		Operation:  opRecordUpdate,
		ShipmentID: attestation.ShipmentID,
		Status:     attestation.Status.String(),
		Location:   attestation.Location,
		DriverID:   attestation.DriverID,
		RecordedAt: attestation.RecordedAt,
	}
}

func fromReviewAttestation(attestation entities.ReviewAttestation) submitReviewRequest {
	return submitReviewRequest{
		Operation:   opSubmitReview,
		ShipmentID:  attestation.ShipmentID,
		UserID:      attestation.UserID,
		Rating:      attestation.Rating,
		SubmittedAt: attestation.SubmittedAt,
	}
}
