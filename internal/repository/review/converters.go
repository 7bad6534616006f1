package review

import (
	"ecofreight/internal/entities"
)

func ToDomain(r *ReviewDB) *entities.Review {
	if r == nil {
		return nil
	}

	return &entities.Review{
		ID:              r.ID,
		ShipmentID:      r.ShipmentID,
		UserID:          r.UserID,
		Rating:          r.Rating,
		Comment:         r.Comment,
		Approved:        r.Approved,
		VerificationRef: r.VerificationRef,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromDomainModify(reviewModify *entities.ReviewModify) *ReviewModifyDB {
	if reviewModify == nil {
		return nil
	}

	return &ReviewModifyDB{
		ID:         reviewModify.ID,
		ShipmentID: reviewModify.ShipmentID,
		UserID:     reviewModify.UserID,
		Rating:     reviewModify.Rating,
		Comment:    reviewModify.Comment,
		Approved:   reviewModify.Approved,
	}
}
