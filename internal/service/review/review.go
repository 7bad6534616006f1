package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecofreight/internal/entities"
	"ecofreight/pkg/logger"
)

type Review struct {
	repository      Repository
	shipmentService ShipmentService
	ledger          Ledger
	txManager       TxManager
	logger          serviceLogger
}

func New(
	repository Repository,
	shipmentService ShipmentService,
	ledger Ledger,
	txManager TxManager,
	logger serviceLogger,
) *Review {
	return &Review{
		repository:      repository,
		shipmentService: shipmentService,
		ledger:          ledger,
		txManager:       txManager,
		logger:          logger,
	}
}

// SubmitReview upserts the single review a customer may hold per shipment.
// A resubmission overwrites rating and comment and resets nothing else.
func (r *Review) SubmitReview(ctx context.Context, shipmentID, userID int64, rating int, comment *string) (*entities.ReviewResult, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var (
		stored           *entities.Review
		created          bool
		reviewedShipment *entities.Shipment
	)

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := r.shipmentService.GetShipment(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if !r.shipmentService.CanReview(shipmentEntity, userID) {
			return ErrNotEligible
		}
		reviewedShipment = shipmentEntity

		existing, err := r.repository.GetByShipmentAndUser(ctx, shipmentID, userID)
		switch {
		case err == nil:
			reviewModify := entities.ReviewModify{
				ID:      &existing.ID,
				Rating:  &rating,
				Comment: comment,
			}
			stored, err = r.repository.Update(ctx, reviewModify)
			if err != nil {
				return fmt.Errorf("update review: %w", err)
			}
		case errors.Is(err, ErrReviewNotFound):
			approved := false
			reviewModify := entities.ReviewModify{
				ShipmentID: &shipmentID,
				UserID:     &userID,
				Rating:     &rating,
				Comment:    comment,
				Approved:   &approved,
			}
			stored, err = r.repository.Create(ctx, reviewModify)
			if err != nil {
				return fmt.Errorf("create review: %w", err)
			}
			created = true
		default:
			return fmt.Errorf("get review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.attestReview(ctx, reviewedShipment, stored)

	return &entities.ReviewResult{
		ReviewID: stored.ID,
		Created:  created,
	}, nil
}

func (r *Review) GetReview(ctx context.Context, shipmentID, userID int64) (*entities.Review, error) {
	reviewEntity, err := r.repository.GetByShipmentAndUser(ctx, shipmentID, userID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return reviewEntity, nil
}

// attestReview mirrors the recorder's ledger policy: one attempt, failures
// logged, the review stays unverified.
func (r *Review) attestReview(ctx context.Context, shipmentEntity *entities.Shipment, reviewEntity *entities.Review) {
	txHash, err := r.ledger.AttestReview(ctx, entities.ReviewAttestation{
		ShipmentID:  shipmentEntity.ID,
		UserID:      reviewEntity.UserID,
		Rating:      reviewEntity.Rating,
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		r.logger.Warn("ledger attestation failed",
			logger.NewField("shipment_id", shipmentEntity.ID),
			logger.NewField("review_id", reviewEntity.ID),
			logger.NewField("error", err.Error()),
		)
		return
	}

	if err := r.repository.AttachVerification(ctx, reviewEntity.ID, txHash); err != nil {
		r.logger.Warn("attach verification failed",
			logger.NewField("review_id", reviewEntity.ID),
			logger.NewField("error", err.Error()),
		)
	}
}
