package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "task-match-system.com/task-match-system/internal/errors"
	model "task-match-system.com/task-match-system/internal/models"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// CreateRating appends an immutable rating row. Uniqueness per
// (request, rater role) is enforced by the index at insert time, not by a
// separate pre-check.
func (r *RatingRepository) CreateRating(ctx context.Context, rating *model.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyRated
		}
		return err
	}
	return nil
}

func (r *RatingRepository) ListByRequest(ctx context.Context, requestID string) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at asc").
		Find(&ratings).Error
	return ratings, err
}
