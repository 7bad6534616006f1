package attest

type attestationRequest struct {
	Operation    string   `json:"operation"`
	ShipmentID   int64    `json:"shipmentId"`
	TrackingCode string   `json:"trackingCode"`
	UserID       int64    `json:"userId"`
	Status       string   `json:"status,omitempty"`
	Location     string   `json:"location,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

type attestationResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Error           string `json:"error,omitempty"`
}
