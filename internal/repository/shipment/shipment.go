package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"ecofreight/internal/entities"
	"ecofreight/internal/repository"
	"ecofreight/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, tracking_code, title, origin, destination, transport_mode,
	product_type, quantity, weight_kg, carbon_kg, customer_id, driver_id, status,
	planned_departure, estimated_arrival, actual_arrival, verification_ref,
	created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	// для отсутствующих опциональных полей работают дефолты таблицы
	query := `INSERT INTO shipments (tracking_code, title, origin, destination, transport_mode,
			product_type, quantity, weight_kg, carbon_kg, customer_id, driver_id, status,
			planned_departure, estimated_arrival)
		VALUES ($1, $2, $3, $4, $5,
			COALESCE($6, ''), COALESCE($7, 0), COALESCE($8, 0), COALESCE($9, 0),
			$10, COALESCE($11, 0), $12,
			COALESCE($13, NOW()), COALESCE($14, NOW() + INTERVAL '7 days'))
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.TrackingCode,
		shipmentModifyModel.Title,
		shipmentModifyModel.Origin,
		shipmentModifyModel.Destination,
		shipmentModifyModel.TransportMode,
		shipmentModifyModel.ProductType,
		shipmentModifyModel.Quantity,
		shipmentModifyModel.WeightKg,
		shipmentModifyModel.CarbonKg,
		shipmentModifyModel.CustomerID,
		shipmentModifyModel.DriverID,
		shipmentModifyModel.Status,
		shipmentModifyModel.PlannedDeparture,
		shipmentModifyModel.EstimatedArrival,
	).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByTrackingCode(ctx context.Context, trackingCode string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE tracking_code = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, trackingCode).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbytrackingcode error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentModel ShipmentDB
		if err := rows.Scan(scanTargets(&shipmentModel)...); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	// опциональные поля
	if shipmentModifyModel.Title != nil {
		builder = builder.Set("title", shipmentModifyModel.Title)
	}
	if shipmentModifyModel.Origin != nil {
		builder = builder.Set("origin", shipmentModifyModel.Origin)
	}
	if shipmentModifyModel.Destination != nil {
		builder = builder.Set("destination", shipmentModifyModel.Destination)
	}
	if shipmentModifyModel.TransportMode != nil {
		builder = builder.Set("transport_mode", shipmentModifyModel.TransportMode)
	}
	if shipmentModifyModel.ProductType != nil {
		builder = builder.Set("product_type", shipmentModifyModel.ProductType)
	}
	if shipmentModifyModel.Quantity != nil {
		builder = builder.Set("quantity", shipmentModifyModel.Quantity)
	}
	if shipmentModifyModel.WeightKg != nil {
		builder = builder.Set("weight_kg", shipmentModifyModel.WeightKg)
	}
	if shipmentModifyModel.CarbonKg != nil {
		builder = builder.Set("carbon_kg", shipmentModifyModel.CarbonKg)
	}
	if shipmentModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", shipmentModifyModel.DriverID)
	}
	if shipmentModifyModel.PlannedDeparture != nil {
		builder = builder.Set("planned_departure", shipmentModifyModel.PlannedDeparture)
	}
	if shipmentModifyModel.EstimatedArrival != nil {
		builder = builder.Set("estimated_arrival", shipmentModifyModel.EstimatedArrival)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyModel.ID}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}

		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.ShipmentStatusType, actualArrival *time.Time) (*entities.Shipment, error) {
	query := `UPDATE shipments
		SET status = $2,
			actual_arrival = $3,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, id, status.String(), actualArrival).
		Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) AttachVerification(ctx context.Context, id int64, ref string) error {
	query := `UPDATE shipments
		SET verification_ref = $2
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, ref)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository attachverification error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) MarkDelayedWhereOverdue(ctx context.Context) (int64, error) {
	query := `UPDATE shipments
		SET status = 'delayed',
			updated_at = NOW()
		WHERE status IN ('processing', 'in_transit')
		  AND estimated_arrival < NOW()`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository markdelayed error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanTargets(s *ShipmentDB) []interface{} {
	return []interface{}{
		&s.ID,
		&s.TrackingCode,
		&s.Title,
		&s.Origin,
		&s.Destination,
		&s.TransportMode,
		&s.ProductType,
		&s.Quantity,
		&s.WeightKg,
		&s.CarbonKg,
		&s.CustomerID,
		&s.DriverID,
		&s.Status,
		&s.PlannedDeparture,
		&s.EstimatedArrival,
		&s.ActualArrival,
		&s.VerificationRef,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
}
