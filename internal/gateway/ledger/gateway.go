package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"ecofreight/internal/entities"
)

const serviceName = "ledger-service"

// ErrAttestationUnavailable covers every failure mode of the collaborator:
// network errors, timeouts, non-2xx responses and success=false bodies.
// Callers treat attestation as best effort and never surface this error.
var ErrAttestationUnavailable = errors.New("attestation unavailable")

// LedgerGateway submits attestation payloads to the chain-attestation
// service. Single attempt per call, bounded by the configured timeout.
type LedgerGateway struct {
	client   httpClient
	endpoint string
	timeout  time.Duration
}

func New(client httpClient, endpoint string, timeout time.Duration) *LedgerGateway {
	return &LedgerGateway{
		client:   client,
		endpoint: endpoint,
		timeout:  timeout,
	}
}

func (l *LedgerGateway) RegisterShipment(ctx context.Context, registration entities.ShipmentRegistration) (string, error) {
	return l.submit(ctx, opRegisterShipment, fromRegistration(registration))
}

func (l *LedgerGateway) AttestUpdate(ctx context.Context, attestation entities.UpdateAttestation) (string, error) {
	return l.submit(ctx, opRecordUpdate, fromUpdateAttestation(attestation))
}

func (l *LedgerGateway) AttestReview(ctx context.Context, attestation entities.ReviewAttestation) (string, error) {
	return l.submit(ctx, opSubmitReview, fromReviewAttestation(attestation))
}

func (l *LedgerGateway) submit(ctx context.Context, operation string, payload interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	txHash, err := l.post(ctx, payload)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	GatewayRequestDuration.WithLabelValues(serviceName, operation, outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		GatewayFailuresTotal.WithLabelValues(serviceName, operation).Inc()
		return "", fmt.Errorf("gateway ledger, %s: %w", operation, err)
	}

	return txHash, nil
}

func (l *LedgerGateway) post(ctx context.Context, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrAttestationUnavailable)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("status %d: %w", resp.StatusCode, ErrAttestationUnavailable)
	}

	var attestation attestationResponse
	if err := json.NewDecoder(resp.Body).Decode(&attestation); err != nil {
		return "", fmt.Errorf("decode response: %v: %w", err, ErrAttestationUnavailable)
	}

	if !attestation.Success || attestation.TransactionHash == "" {
		return "", ErrAttestationUnavailable
	}

	return attestation.TransactionHash, nil
}
