package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-match-system.com/task-match-system/internal/constants"
	apperrors "task-match-system.com/task-match-system/internal/errors"
	model "task-match-system.com/task-match-system/internal/models"
)

// RequestRepository owns TaskRequest and Assignment rows and every status
// transition on them. All transitions are conditional updates on the
// current version so two concurrent callers can never both win.
type RequestRepository struct {
	db           *gorm.DB
	availability *AvailabilityRepository
}

func NewRequestRepository(db *gorm.DB, availability *AvailabilityRepository) *RequestRepository {
	return &RequestRepository{db: db, availability: availability}
}

func (r *RequestRepository) CreateRequest(ctx context.Context, clientID, taskID, locationID, timeSlotID, address string) (*model.TaskRequest, error) {
	request := &model.TaskRequest{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		TaskID:     taskID,
		LocationID: locationID,
		TimeSlotID: timeSlotID,
		Address:    address,
		Status:     constants.RequestOpen,
		Version:    1,
		CreatedAt:  time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}

	return request, nil
}

func (r *RequestRepository) FindRequestByID(ctx context.Context, id string) (*model.TaskRequest, error) {
	var request model.TaskRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepository) FindAssignmentByRequest(ctx context.Context, requestID string) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.db.WithContext(ctx).First(&assignment, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *RequestRepository) FindAssignmentForWorker(ctx context.Context, requestID, workerID string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		First(&assignment, "request_id = ? AND worker_id = ?", requestID, workerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// AssignFirstEligible evaluates eligibility and commits the assignment as
// one transaction: query candidates, pick the lowest worker id, insert the
// assignment as scheduled, flip the request open -> assigned. The partial
// unique index on (worker_id, time_slot_id) for active assignments is the
// backstop against a concurrent bind of the same worker and slot; a
// duplicate key inside the transaction surfaces as ErrConcurrencyConflict.
//
// Zero candidates is not an error: the request stays open and the returned
// worker id is empty.
func (r *RequestRepository) AssignFirstEligible(ctx context.Context, request *model.TaskRequest, specialtyID string) (string, error) {
	var assignedWorkerID string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		workerIDs, err := r.availability.findEligibleWorkers(tx, specialtyID, request.LocationID, request.TimeSlotID)
		if err != nil {
			return err
		}
		if len(workerIDs) == 0 {
			return nil
		}

		assignment := &model.Assignment{
			ID:         uuid.NewString(),
			RequestID:  request.ID,
			WorkerID:   workerIDs[0],
			TimeSlotID: request.TimeSlotID,
			Status:     constants.AssignmentScheduled,
			Version:    1,
			CreatedAt:  time.Now().UTC(),
		}
		if err := tx.Create(assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrConcurrencyConflict
			}
			return err
		}

		res := tx.Model(&model.TaskRequest{}).
			Where("id = ? AND version = ? AND status = ?", request.ID, request.Version, constants.RequestOpen).
			Updates(map[string]interface{}{
				"status":  constants.RequestAssigned,
				"version": gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrConcurrencyConflict
		}

		request.Status = constants.RequestAssigned
		request.Version++
		assignedWorkerID = assignment.WorkerID
		return nil
	})

	if err != nil {
		return "", err
	}
	return assignedWorkerID, nil
}

// StartAssignment flips scheduled -> in_progress and records the start
// time. The request row mirrors the new status in the same transaction.
func (r *RequestRepository) StartAssignment(ctx context.Context, assignment *model.Assignment, startedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Assignment{}).
			Where("id = ? AND version = ? AND status = ?",
				assignment.ID, assignment.Version, constants.AssignmentScheduled).
			Updates(map[string]interface{}{
				"status":     constants.AssignmentInProgress,
				"started_at": startedAt,
				"version":    gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrConcurrencyConflict
		}

		if err := tx.Model(&model.TaskRequest{}).
			Where("id = ?", assignment.RequestID).
			Updates(map[string]interface{}{
				"status":  constants.RequestInProgress,
				"version": gorm.Expr("version + 1"),
			}).Error; err != nil {
			return err
		}

		started := startedAt
		assignment.Status = constants.AssignmentInProgress
		assignment.StartedAt = &started
		assignment.Version++
		return nil
	})
}

// CompleteAssignment flips an active assignment to completed together with
// its request. durationMinutes is nil when the worker never marked the
// assignment started.
func (r *RequestRepository) CompleteAssignment(ctx context.Context, assignment *model.Assignment, durationMinutes *int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":  constants.AssignmentCompleted,
			"version": gorm.Expr("version + 1"),
		}
		if durationMinutes != nil {
			updates["actual_duration_minutes"] = *durationMinutes
		}

		res := tx.Model(&model.Assignment{}).
			Where("id = ? AND version = ? AND status IN ?",
				assignment.ID, assignment.Version, constants.ActiveAssignmentStatuses).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrConcurrencyConflict
		}

		if err := tx.Model(&model.TaskRequest{}).
			Where("id = ?", assignment.RequestID).
			Updates(map[string]interface{}{
				"status":  constants.RequestCompleted,
				"version": gorm.Expr("version + 1"),
			}).Error; err != nil {
			return err
		}

		assignment.Status = constants.AssignmentCompleted
		assignment.ActualDurationMinutes = durationMinutes
		assignment.Version++
		return nil
	})
}
