package attest

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req attestationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, attestationResponse{Error: "invalid JSON body"})
		return
	}

	if err := validate(req); err != "" {
		writeJSON(w, http.StatusOK, attestationResponse{Error: err})
		return
	}

	log.Printf("attested %s for shipment %d", req.Operation, req.ShipmentID)

	writeJSON(w, http.StatusOK, attestationResponse{
		Success:         true,
		TransactionHash: newTransactionHash(),
	})
}

// validate повторяет требования к полезной нагрузке по операциям:
// только register_shipment несет трек-код, остальные идентифицируются shipmentId.
func validate(req attestationRequest) string {
	switch req.Operation {
	case "register_shipment":
		if req.TrackingCode == "" {
			return "trackingCode is required"
		}
	case "record_update", "submit_review":
		if req.ShipmentID == 0 {
			return "shipmentId is required"
		}
	default:
		return "unknown operation: " + req.Operation
	}
	return ""
}

// newTransactionHash имитирует хеш транзакции в блокчейне
func newTransactionHash() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "0x0"
	}
	return "0x" + hex.EncodeToString(buf)
}

func writeJSON(w http.ResponseWriter, status int, body attestationResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}
