package review

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"ecofreight/internal/entities"
	"ecofreight/internal/repository"
	"ecofreight/internal/service/review"
	"ecofreight/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const reviewColumns = `id, shipment_id, user_id, rating, comment, approved,
	verification_ref, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error) {
	reviewModifyModel := FromDomainModify(&reviewModifyEntity)

	query := `INSERT INTO reviews (shipment_id, user_id, rating, comment, approved)
		VALUES ($1, $2, $3, $4, COALESCE($5, FALSE))
		RETURNING ` + reviewColumns

	var reviewModel ReviewDB
	err := r.querier.QueryRow(
		ctx,
		query,
		reviewModifyModel.ShipmentID,
		reviewModifyModel.UserID,
		reviewModifyModel.Rating,
		reviewModifyModel.Comment,
		reviewModifyModel.Approved,
	).Scan(scanTargets(&reviewModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected review repository create error: %w", err)
	}

	return ToDomain(&reviewModel), nil
}

func (r *Repository) Update(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error) {
	reviewModifyModel := FromDomainModify(&reviewModifyEntity)

	builder := qb.
		Update("reviews")

	if reviewModifyModel.Rating != nil {
		builder = builder.Set("rating", reviewModifyModel.Rating)
	}
	if reviewModifyModel.Comment != nil {
		builder = builder.Set("comment", reviewModifyModel.Comment)
	}
	if reviewModifyModel.Approved != nil {
		builder = builder.Set("approved", reviewModifyModel.Approved)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": reviewModifyModel.ID}).
		Suffix("RETURNING " + reviewColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository update error: %w", err)
	}

	var reviewModel ReviewDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&reviewModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}

		return nil, fmt.Errorf("unexpected review repository update error: %w", err)
	}

	return ToDomain(&reviewModel), nil
}

func (r *Repository) GetByShipmentAndUser(ctx context.Context, shipmentID, userID int64) (*entities.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM reviews
		WHERE shipment_id = $1 AND user_id = $2`

	var reviewModel ReviewDB
	err := r.querier.QueryRow(ctx, query, shipmentID, userID).Scan(scanTargets(&reviewModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}

		return nil, fmt.Errorf("unexpected review repository getbyshipmentanduser error: %w", err)
	}

	return ToDomain(&reviewModel), nil
}

func (r *Repository) AttachVerification(ctx context.Context, id int64, ref string) error {
	query := `UPDATE reviews
		SET verification_ref = $2
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, ref)
	if err != nil {
		return fmt.Errorf("unexpected review repository attachverification error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

func scanTargets(r *ReviewDB) []interface{} {
	return []interface{}{
		&r.ID,
		&r.ShipmentID,
		&r.UserID,
		&r.Rating,
		&r.Comment,
		&r.Approved,
		&r.VerificationRef,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}
