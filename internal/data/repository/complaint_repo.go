package repository

import (
	"context"
	"fmt"

	"trip-booking/internal/data/entity"
	"trip-booking/pkg/database"

	"go.uber.org/zap"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
}

type complaintRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewComplaintRepository(db database.PgxIface, log *zap.Logger) ComplaintRepository {
	return &complaintRepository{
		db:  db,
		log: log.With(zap.String("repository", "complaint")),
	}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	query := `
		INSERT INTO complaints (user_id, trip_id, subject, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		complaint.UserID,
		complaint.TripID,
		complaint.Subject,
		complaint.Description,
		complaint.CreatedAt,
	).Scan(&complaint.ID)

	if err != nil {
		r.log.Error("Failed to create complaint",
			zap.Error(err),
			zap.Int64("user_id", complaint.UserID),
			zap.Int64("trip_id", complaint.TripID),
		)
		return fmt.Errorf("create complaint for trip %d: %w", complaint.TripID, err)
	}

	return nil
}
