package repository

import (
	"context"

	"gorm.io/gorm"

	"task-match-system.com/task-match-system/internal/constants"
	model "task-match-system.com/task-match-system/internal/models"
)

// AvailabilityRepository answers which workers can serve a
// (specialty, location, time slot) triple. A worker is eligible when it
// advertises a matching availability tuple and holds no active assignment
// on the same time slot. Unknown ids simply match nothing.
type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) FindEligibleWorkers(ctx context.Context, specialtyID, locationID, timeSlotID string) ([]string, error) {
	return r.findEligibleWorkers(r.db.WithContext(ctx), specialtyID, locationID, timeSlotID)
}

// findEligibleWorkers runs against the given handle so the matcher can
// evaluate eligibility inside the same transaction that writes the
// assignment. Results are ordered by worker id ascending.
func (r *AvailabilityRepository) findEligibleWorkers(tx *gorm.DB, specialtyID, locationID, timeSlotID string) ([]string, error) {
	var workerIDs []string

	err := tx.Model(&model.Availability{}).
		Where("specialty_id = ? AND location_id = ? AND time_slot_id = ?", specialtyID, locationID, timeSlotID).
		Where(`NOT EXISTS (
			SELECT 1 FROM assignments
			WHERE assignments.worker_id = availabilities.worker_id
			  AND assignments.time_slot_id = availabilities.time_slot_id
			  AND assignments.status IN ?
		)`, constants.ActiveAssignmentStatuses).
		Order("worker_id asc").
		Pluck("worker_id", &workerIDs).Error

	if err != nil {
		return nil, err
	}
	return workerIDs, nil
}

// AvailableTimeSlots lists the slots where at least one worker advertises
// the given specialty at the given location.
func (r *AvailabilityRepository) AvailableTimeSlots(ctx context.Context, specialtyID, locationID string) ([]string, error) {
	var slotIDs []string

	err := r.db.WithContext(ctx).Model(&model.Availability{}).
		Distinct().
		Where("specialty_id = ? AND location_id = ?", specialtyID, locationID).
		Order("time_slot_id asc").
		Pluck("time_slot_id", &slotIDs).Error

	if err != nil {
		return nil, err
	}
	return slotIDs, nil
}
