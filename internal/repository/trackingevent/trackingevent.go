package trackingevent

import (
	"context"
	"fmt"

	"ecofreight/internal/entities"
	"ecofreight/internal/repository"
	"ecofreight/internal/service/shipment"
)

const eventColumns = `id, shipment_id, status, location, notes, temperature_c,
	humidity_pct, shock_detected, driver_id, verification_ref, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create appends an event row. Rows are immutable after insert, only the
// verification reference may be attached later.
func (r *Repository) Create(ctx context.Context, record entities.TrackingEventRecord) (*entities.TrackingEvent, error) {
	query := `INSERT INTO tracking_events (shipment_id, status, location, notes,
			temperature_c, humidity_pct, shock_detected, driver_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + eventColumns

	var eventModel TrackingEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		record.ShipmentID,
		record.Status.String(),
		record.Location,
		record.Notes,
		record.TemperatureC,
		record.HumidityPct,
		record.ShockDetected,
		record.DriverID,
	).Scan(scanTargets(&eventModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected tracking event repository create error: %w", err)
	}

	return ToDomain(&eventModel), nil
}

func (r *Repository) ListByShipmentID(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error) {
	query := `SELECT ` + eventColumns + `
		FROM tracking_events
		WHERE shipment_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking event repository list error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]TrackingEventDB, 0, 8)
	for rows.Next() {
		var eventModel TrackingEventDB
		if err := rows.Scan(scanTargets(&eventModel)...); err != nil {
			return nil, fmt.Errorf("unexpected tracking event repository list error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking event repository list error: %w", err)
	}

	return ToDomainList(eventModels), nil
}

func (r *Repository) AttachVerification(ctx context.Context, id int64, ref string) error {
	query := `UPDATE tracking_events
		SET verification_ref = $2
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, ref)
	if err != nil {
		return fmt.Errorf("unexpected tracking event repository attachverification error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tracking event %d not found", id)
	}

	return nil
}

func scanTargets(e *TrackingEventDB) []interface{} {
	return []interface{}{
		&e.ID,
		&e.ShipmentID,
		&e.Status,
		&e.Location,
		&e.Notes,
		&e.TemperatureC,
		&e.HumidityPct,
		&e.ShockDetected,
		&e.DriverID,
		&e.VerificationRef,
		&e.CreatedAt,
	}
}
