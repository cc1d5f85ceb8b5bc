package repository

import (
	"context"
	"fmt"

	"trip-booking/internal/data/entity"
	"trip-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	// FindReviewableBookingID returns the internal id of a completed,
	// not-yet-reviewed booking by this user on this trip, or false when
	// no such booking exists.
	FindReviewableBookingID(ctx context.Context, userID, tripID int64) (int64, bool, error)
	Create(ctx context.Context, review *entity.Review) error
	ListByTripUUID(ctx context.Context, tripUUID string) ([]*entity.ReviewWithAuthor, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) FindReviewableBookingID(ctx context.Context, userID, tripID int64) (int64, bool, error) {
	query := `
		SELECT b.id
		FROM bookings b
		LEFT JOIN reviews rv ON rv.booking_id = b.id AND rv.user_id = b.user_id
		WHERE b.user_id = $1
		  AND b.trip_id = $2
		  AND b.status = 'completed'
		  AND rv.id IS NULL
		LIMIT 1
	`

	var bookingID int64
	err := r.db.QueryRow(ctx, query, userID, tripID).Scan(&bookingID)
	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		r.log.Error("Failed to find reviewable booking",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("trip_id", tripID),
		)
		return 0, false, fmt.Errorf("find reviewable booking for user %d trip %d: %w", userID, tripID, err)
	}

	return bookingID, true, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (uuid, user_id, trip_id, booking_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.UUID,
		review.UserID,
		review.TripID,
		review.BookingID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("review_uuid", review.UUID),
			zap.Int64("booking_id", review.BookingID),
		)
		return fmt.Errorf("create review %s: %w", review.UUID, err)
	}

	return nil
}

func (r *reviewRepository) ListByTripUUID(ctx context.Context, tripUUID string) ([]*entity.ReviewWithAuthor, error) {
	query := `
		SELECT rv.uuid, rv.rating, rv.comment, rv.created_at, u.name, cd.profile_picture_url
		FROM reviews rv
		JOIN trips t ON t.id = rv.trip_id
		JOIN users u ON u.id = rv.user_id
		LEFT JOIN client_details cd ON cd.user_id = u.id
		WHERE t.uuid = $1
		ORDER BY rv.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, tripUUID)
	if err != nil {
		r.log.Error("Failed to list reviews by trip",
			zap.Error(err),
			zap.String("trip_uuid", tripUUID),
		)
		return nil, fmt.Errorf("list reviews for trip %s: %w", tripUUID, err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewWithAuthor
	for rows.Next() {
		var rv entity.ReviewWithAuthor
		err := rows.Scan(
			&rv.UUID,
			&rv.Rating,
			&rv.Comment,
			&rv.CreatedAt,
			&rv.AuthorName,
			&rv.AuthorPhoto,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &rv)
	}

	return reviews, nil
}
