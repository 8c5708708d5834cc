package services

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"task-match-system.com/task-match-system/internal/constants"
	apperrors "task-match-system.com/task-match-system/internal/errors"
	model "task-match-system.com/task-match-system/internal/models"
	repository "task-match-system.com/task-match-system/internal/repositories"
)

// LifecycleService drives an assignment through
// scheduled -> in_progress -> completed. in_progress may be skipped when a
// worker completes without marking the start. Transitions are monotonic;
// nothing leaves completed.
type LifecycleService struct {
	requests *repository.RequestRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewLifecycleService(requests *repository.RequestRepository, logger *zap.Logger) *LifecycleService {
	return &LifecycleService{
		requests: requests,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *LifecycleService) MarkStarted(ctx context.Context, requestID, workerID string) (*model.Assignment, error) {
	assignment, err := s.requests.FindAssignmentForWorker(ctx, requestID, workerID)
	if err != nil {
		return nil, err
	}

	if assignment.Status != constants.AssignmentScheduled {
		return nil, apperrors.ErrInvalidState
	}

	if err := s.requests.StartAssignment(ctx, assignment, s.now()); err != nil {
		return nil, err
	}

	s.logger.Info("assignment started",
		zap.String("request_id", requestID),
		zap.String("worker_id", workerID),
	)
	return assignment, nil
}

func (s *LifecycleService) MarkCompleted(ctx context.Context, requestID, workerID string) (*model.Assignment, error) {
	assignment, err := s.requests.FindAssignmentForWorker(ctx, requestID, workerID)
	if err != nil {
		return nil, err
	}

	if assignment.Status == constants.AssignmentCompleted {
		return nil, apperrors.ErrInvalidState
	}

	// Duration is only known when the worker marked the start; a skipped
	// start leaves it unset.
	var durationMinutes *int
	completedAt := s.now()
	if assignment.StartedAt != nil {
		minutes := int(math.Round(completedAt.Sub(*assignment.StartedAt).Minutes()))
		durationMinutes = &minutes
	}

	if err := s.requests.CompleteAssignment(ctx, assignment, durationMinutes); err != nil {
		return nil, err
	}

	s.logger.Info("assignment completed",
		zap.String("request_id", requestID),
		zap.String("worker_id", workerID),
	)
	return assignment, nil
}
