package repository

import (
	"context"
	"fmt"

	"trip-booking/internal/data/entity"
	"trip-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Transaction-scoped mutators used by the booking transaction manager.
	CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	FindForCancellationTx(ctx context.Context, tx pgx.Tx, uuid string, userID int64) (*entity.Booking, error)
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, bookingID int64, status entity.BookingStatus) error

	// Reads.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.BookingSummary, error)
	DetailByUUIDAndUser(ctx context.Context, uuid string, userID int64) (*entity.BookingDetail, error)
	PaymentDetails(ctx context.Context, uuid string, userID int64) (*entity.PaymentDetail, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (uuid, user_id, trip_id, num_of_people, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		booking.UUID,
		booking.UserID,
		booking.TripID,
		booking.NumOfPeople,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_uuid", booking.UUID),
			zap.Int64("user_id", booking.UserID),
		)
		return fmt.Errorf("create booking %s: %w", booking.UUID, err)
	}

	return nil
}

// FindForCancellationTx looks the booking up by public id AND owner in one
// query, locked for the status flip that follows. A wrong owner is
// indistinguishable from a missing booking.
func (r *bookingRepository) FindForCancellationTx(ctx context.Context, tx pgx.Tx, uuid string, userID int64) (*entity.Booking, error) {
	query := `
		SELECT id, uuid, user_id, trip_id, num_of_people, total_price, status, created_at, updated_at
		FROM bookings
		WHERE uuid = $1 AND user_id = $2
		FOR UPDATE
	`

	var booking entity.Booking
	err := tx.QueryRow(ctx, query, uuid, userID).Scan(
		&booking.ID,
		&booking.UUID,
		&booking.UserID,
		&booking.TripID,
		&booking.NumOfPeople,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking for cancellation",
			zap.Error(err),
			zap.String("booking_uuid", uuid),
		)
		return nil, fmt.Errorf("find booking %s for cancellation: %w", uuid, err)
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, bookingID int64, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := tx.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %d status to %s: %w", bookingID, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", bookingID)
	}

	return nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.BookingSummary, error) {
	query := `
		SELECT
			b.id, b.uuid, b.user_id, b.trip_id, b.num_of_people, b.total_price, b.status,
			b.created_at, b.updated_at,
			t.uuid, t.title, t.location, t.start_date, t.departure_time,
			p.company_name
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		JOIN providers p ON p.id = t.provider_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find bookings by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	var bookings []*entity.BookingSummary
	for rows.Next() {
		var b entity.BookingSummary
		err := rows.Scan(
			&b.ID,
			&b.UUID,
			&b.UserID,
			&b.TripID,
			&b.NumOfPeople,
			&b.TotalPrice,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.TripUUID,
			&b.TripTitle,
			&b.TripLocation,
			&b.TripStartDate,
			&b.DepartureTime,
			&b.ProviderName,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *bookingRepository) DetailByUUIDAndUser(ctx context.Context, uuid string, userID int64) (*entity.BookingDetail, error) {
	query := `
		SELECT
			b.id, b.uuid, b.user_id, b.trip_id, b.num_of_people, b.total_price, b.status,
			b.created_at, b.updated_at,
			t.uuid, t.title, t.description, t.duration, t.location,
			t.gathering_point_name, t.gathering_point_url, t.price, t.discount_price,
			t.start_date, t.end_date, t.departure_time, t.return_time,
			p.company_name, p.company_logo_path, p.bank_name
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		JOIN providers p ON p.id = t.provider_id
		WHERE b.uuid = $1 AND b.user_id = $2
	`

	var d entity.BookingDetail
	err := r.db.QueryRow(ctx, query, uuid, userID).Scan(
		&d.ID,
		&d.UUID,
		&d.UserID,
		&d.TripID,
		&d.NumOfPeople,
		&d.TotalPrice,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Trip.UUID,
		&d.Trip.Title,
		&d.Trip.Description,
		&d.Trip.Duration,
		&d.Trip.Location,
		&d.Trip.GatheringPointName,
		&d.Trip.GatheringPointURL,
		&d.Trip.Price,
		&d.Trip.DiscountPrice,
		&d.Trip.StartDate,
		&d.Trip.EndDate,
		&d.Trip.DepartureTime,
		&d.Trip.ReturnTime,
		&d.ProviderName,
		&d.ProviderLogo,
		&d.BankName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking detail",
			zap.Error(err),
			zap.String("booking_uuid", uuid),
		)
		return nil, fmt.Errorf("find booking detail %s: %w", uuid, err)
	}

	return &d, nil
}

func (r *bookingRepository) PaymentDetails(ctx context.Context, uuid string, userID int64) (*entity.PaymentDetail, error) {
	query := `
		SELECT
			b.uuid, b.status, to_char(b.created_at, 'YYYY-MM-DD HH24:MI'),
			t.title, t.price, t.discount_price,
			b.num_of_people, b.total_price,
			p.company_name, p.bank_name, p.bank_account_number, p.bank_account_name
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		JOIN providers p ON p.id = t.provider_id
		WHERE b.uuid = $1 AND b.user_id = $2
	`

	var d entity.PaymentDetail
	err := r.db.QueryRow(ctx, query, uuid, userID).Scan(
		&d.BookingUUID,
		&d.BookingStatus,
		&d.BookingDate,
		&d.TripTitle,
		&d.OriginalPrice,
		&d.DiscountPrice,
		&d.NumOfPeople,
		&d.TotalPrice,
		&d.Provider.CompanyName,
		&d.Provider.BankName,
		&d.Provider.BankAccountNumber,
		&d.Provider.BankAccountName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment details",
			zap.Error(err),
			zap.String("booking_uuid", uuid),
		)
		return nil, fmt.Errorf("find payment details %s: %w", uuid, err)
	}

	return &d, nil
}
