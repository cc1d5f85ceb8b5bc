package repository

import (
	"context"
	"fmt"

	"trip-booking/internal/data/entity"
	"trip-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TripRepository interface {
	FindAll(ctx context.Context) ([]*entity.TripSummary, error)
	FindByUUID(ctx context.Context, uuid string) (*entity.TripDetail, error)
	// ResolveID maps a public uuid to the internal id without the
	// published/approved visibility filter. Archived trips still
	// resolve; deleted ones do not.
	ResolveID(ctx context.Context, uuid string) (int64, bool, error)
	SearchByLocation(ctx context.Context, keyword string) ([]*entity.TripSummary, error)
	SearchByGatheringPoint(ctx context.Context, keyword string) ([]*entity.TripSummary, error)

	// Capacity operations. Only the booking service calls these, inside
	// one transaction; the FOR UPDATE lock on the trip row is the mutual
	// exclusion point that serializes concurrent bookings per trip.
	LockByUUIDTx(ctx context.Context, tx pgx.Tx, uuid string) (*entity.Trip, error)
	AddParticipantsTx(ctx context.Context, tx pgx.Tx, tripID int64, amount int) error
	ReleaseParticipantsTx(ctx context.Context, tx pgx.Tx, tripID int64, amount int) (bool, error)
}

type tripRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTripRepository(db database.PgxIface, log *zap.Logger) TripRepository {
	return &tripRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip")),
	}
}

const tripSummaryColumns = `
	t.uuid,
	t.title,
	t.duration,
	t.location,
	t.gathering_point_name,
	t.price,
	t.discount_price,
	t.max_participants,
	t.booked_participants,
	(t.max_participants - t.booked_participants) AS remaining_seats,
	t.start_date,
	t.main_image_url,
	p.company_name,
	p.company_logo_path
`

func (r *tripRepository) scanSummaries(rows pgx.Rows) ([]*entity.TripSummary, error) {
	defer rows.Close()

	var trips []*entity.TripSummary
	for rows.Next() {
		var trip entity.TripSummary
		err := rows.Scan(
			&trip.UUID,
			&trip.Title,
			&trip.Duration,
			&trip.Location,
			&trip.GatheringPointName,
			&trip.Price,
			&trip.DiscountPrice,
			&trip.MaxParticipants,
			&trip.BookedParticipants,
			&trip.RemainingSeats,
			&trip.StartDate,
			&trip.MainImageURL,
			&trip.ProviderName,
			&trip.ProviderLogoPath,
		)
		if err != nil {
			r.log.Error("Failed to scan trip row", zap.Error(err))
			return nil, fmt.Errorf("scan trip row: %w", err)
		}
		trips = append(trips, &trip)
	}

	return trips, nil
}

func (r *tripRepository) FindAll(ctx context.Context) ([]*entity.TripSummary, error) {
	query := `
		SELECT ` + tripSummaryColumns + `
		FROM trips t
		INNER JOIN providers p ON p.id = t.provider_id
		WHERE t.is_deleted = FALSE
		  AND t.status = 'published'
		  AND t.approval_status = 'approved'
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find trips", zap.Error(err))
		return nil, fmt.Errorf("find trips: %w", err)
	}

	return r.scanSummaries(rows)
}

func (r *tripRepository) FindByUUID(ctx context.Context, uuid string) (*entity.TripDetail, error) {
	query := `
		SELECT
			t.id, t.uuid, t.provider_id, t.title, t.description, t.duration, t.location,
			t.gathering_point_name, t.gathering_point_url, t.price, t.discount_price,
			t.max_participants, t.booked_participants, t.start_date, t.end_date,
			t.departure_time, t.return_time, t.status, t.approval_status,
			t.main_image_url, t.is_deleted, t.created_at, t.updated_at,
			p.company_name, p.company_logo_path, u.email
		FROM trips t
		JOIN providers p ON p.id = t.provider_id
		JOIN users u ON u.id = p.user_id
		WHERE t.uuid = $1
		  AND t.is_deleted = FALSE
		  AND t.status = 'published'
		  AND t.approval_status = 'approved'
		LIMIT 1
	`

	var trip entity.TripDetail
	err := r.db.QueryRow(ctx, query, uuid).Scan(
		&trip.ID,
		&trip.UUID,
		&trip.ProviderID,
		&trip.Title,
		&trip.Description,
		&trip.Duration,
		&trip.Location,
		&trip.GatheringPointName,
		&trip.GatheringPointURL,
		&trip.Price,
		&trip.DiscountPrice,
		&trip.MaxParticipants,
		&trip.BookedParticipants,
		&trip.StartDate,
		&trip.EndDate,
		&trip.DepartureTime,
		&trip.ReturnTime,
		&trip.Status,
		&trip.ApprovalStatus,
		&trip.MainImageURL,
		&trip.IsDeleted,
		&trip.CreatedAt,
		&trip.UpdatedAt,
		&trip.ProviderName,
		&trip.ProviderLogoPath,
		&trip.ProviderEmail,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip by UUID", zap.Error(err), zap.String("trip_uuid", uuid))
		return nil, fmt.Errorf("find trip by UUID %s: %w", uuid, err)
	}

	return &trip, nil
}

func (r *tripRepository) SearchByLocation(ctx context.Context, keyword string) ([]*entity.TripSummary, error) {
	query := `
		SELECT ` + tripSummaryColumns + `
		FROM trips t
		INNER JOIN providers p ON p.id = t.provider_id
		WHERE t.is_deleted = FALSE
		  AND t.status = 'published'
		  AND t.approval_status = 'approved'
		  AND t.location ILIKE $1
		ORDER BY t.created_at DESC
		LIMIT 100
	`

	rows, err := r.db.Query(ctx, query, "%"+keyword+"%")
	if err != nil {
		r.log.Error("Failed to search trips by location",
			zap.Error(err),
			zap.String("keyword", keyword),
		)
		return nil, fmt.Errorf("search trips by location %q: %w", keyword, err)
	}

	return r.scanSummaries(rows)
}

func (r *tripRepository) SearchByGatheringPoint(ctx context.Context, keyword string) ([]*entity.TripSummary, error) {
	query := `
		SELECT ` + tripSummaryColumns + `
		FROM trips t
		INNER JOIN providers p ON p.id = t.provider_id
		WHERE t.is_deleted = FALSE
		  AND t.status = 'published'
		  AND t.approval_status = 'approved'
		  AND t.gathering_point_name ILIKE $1
		ORDER BY t.created_at DESC
		LIMIT 100
	`

	rows, err := r.db.Query(ctx, query, "%"+keyword+"%")
	if err != nil {
		r.log.Error("Failed to search trips by gathering point",
			zap.Error(err),
			zap.String("keyword", keyword),
		)
		return nil, fmt.Errorf("search trips by gathering point %q: %w", keyword, err)
	}

	return r.scanSummaries(rows)
}

// LockByUUIDTx reads the trip row under FOR UPDATE. Concurrent bookings on
// the same trip block here until the holder commits or rolls back, so the
// capacity check that follows always sees the current counter.
func (r *tripRepository) LockByUUIDTx(ctx context.Context, tx pgx.Tx, uuid string) (*entity.Trip, error) {
	query := `
		SELECT id, uuid, provider_id, title, price, discount_price,
		       max_participants, booked_participants, status, approval_status, is_deleted
		FROM trips
		WHERE uuid = $1
		FOR UPDATE
	`

	var trip entity.Trip
	err := tx.QueryRow(ctx, query, uuid).Scan(
		&trip.ID,
		&trip.UUID,
		&trip.ProviderID,
		&trip.Title,
		&trip.Price,
		&trip.DiscountPrice,
		&trip.MaxParticipants,
		&trip.BookedParticipants,
		&trip.Status,
		&trip.ApprovalStatus,
		&trip.IsDeleted,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock trip row", zap.Error(err), zap.String("trip_uuid", uuid))
		return nil, fmt.Errorf("lock trip %s: %w", uuid, err)
	}

	return &trip, nil
}

func (r *tripRepository) AddParticipantsTx(ctx context.Context, tx pgx.Tx, tripID int64, amount int) error {
	query := `
		UPDATE trips
		SET booked_participants = booked_participants + $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, tripID, amount)
	if err != nil {
		r.log.Error("Failed to add participants",
			zap.Error(err),
			zap.Int64("trip_id", tripID),
			zap.Int("amount", amount),
		)
		return fmt.Errorf("add %d participants to trip %d: %w", amount, tripID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip %d not found", tripID)
	}

	return nil
}

// ReleaseParticipantsTx decrements the counter, guarded so it never goes
// below zero. A false return means the guard rejected the decrement and
// the counter no longer matches the ledger.
func (r *tripRepository) ReleaseParticipantsTx(ctx context.Context, tx pgx.Tx, tripID int64, amount int) (bool, error) {
	query := `
		UPDATE trips
		SET booked_participants = booked_participants - $2, updated_at = NOW()
		WHERE id = $1 AND booked_participants >= $2
	`

	result, err := tx.Exec(ctx, query, tripID, amount)
	if err != nil {
		r.log.Error("Failed to release participants",
			zap.Error(err),
			zap.Int64("trip_id", tripID),
			zap.Int("amount", amount),
		)
		return false, fmt.Errorf("release %d participants from trip %d: %w", amount, tripID, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *tripRepository) ResolveID(ctx context.Context, uuid string) (int64, bool, error) {
	query := `SELECT id FROM trips WHERE uuid = $1 AND is_deleted = FALSE LIMIT 1`

	var id int64
	err := r.db.QueryRow(ctx, query, uuid).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		r.log.Error("Failed to resolve trip id", zap.Error(err), zap.String("trip_uuid", uuid))
		return 0, false, fmt.Errorf("resolve trip %s: %w", uuid, err)
	}

	return id, true, nil
}
