package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"task-match-system.com/task-match-system/internal/constants"
	apperrors "task-match-system.com/task-match-system/internal/errors"
	model "task-match-system.com/task-match-system/internal/models"
	repository "task-match-system.com/task-match-system/internal/repositories"
)

// MatcherService creates task requests and binds workers to them. The
// selection policy is the lowest eligible worker id; callers must not
// depend on which candidate is chosen.
type MatcherService struct {
	catalog  *repository.CatalogRepository
	requests *repository.RequestRepository
	logger   *zap.Logger
}

func NewMatcherService(
	catalog *repository.CatalogRepository,
	requests *repository.RequestRepository,
	logger *zap.Logger,
) *MatcherService {
	return &MatcherService{
		catalog:  catalog,
		requests: requests,
		logger:   logger,
	}
}

// MatchResult carries the persisted request and the worker bound to it.
// AssignedWorkerID is empty when no worker was bound; Conflicted then tells
// the two open outcomes apart: false means no eligible worker exists, true
// means an eligible worker was lost to a concurrent write and an immediate
// TryAssign is worthwhile.
type MatchResult struct {
	Request          *model.TaskRequest `json:"request"`
	AssignedWorkerID string             `json:"assigned_worker_id,omitempty"`
	Conflicted       bool               `json:"conflicted,omitempty"`
}

func (s *MatcherService) CreateRequest(ctx context.Context, clientID, taskID, locationID, timeSlotID, address string) (*MatchResult, error) {
	if err := s.catalog.ClientExists(ctx, clientID); err != nil {
		return nil, err
	}
	task, err := s.catalog.FindTaskDefinition(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.LocationExists(ctx, locationID); err != nil {
		return nil, err
	}
	if _, err := s.catalog.FindTimeSlot(ctx, timeSlotID); err != nil {
		return nil, err
	}

	request, err := s.requests.CreateRequest(ctx, clientID, taskID, locationID, timeSlotID, address)
	if err != nil {
		return nil, err
	}

	workerID, err := s.requests.AssignFirstEligible(ctx, request, task.SpecialtyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConcurrencyConflict) {
			// The slot was taken between the eligibility read and the
			// write. The request is persisted and open; the caller can
			// retry via TryAssign.
			s.logger.Warn("assignment raced, request left open",
				zap.String("request_id", request.ID),
				zap.String("time_slot_id", timeSlotID),
			)
			return &MatchResult{Request: request, Conflicted: true}, nil
		}
		return nil, err
	}

	if workerID == "" {
		s.logger.Info("no eligible worker",
			zap.String("request_id", request.ID),
			zap.String("specialty_id", task.SpecialtyID),
			zap.String("location_id", locationID),
			zap.String("time_slot_id", timeSlotID),
		)
	} else {
		s.logger.Info("request assigned",
			zap.String("request_id", request.ID),
			zap.String("worker_id", workerID),
		)
	}

	return &MatchResult{Request: request, AssignedWorkerID: workerID}, nil
}

// TryAssign re-runs matching for a request that is still open. There is no
// background retry anywhere; this is the only way a request left open by
// CreateRequest gets a worker. A lost race propagates as
// ErrConcurrencyConflict so the caller can retry explicitly.
func (s *MatcherService) TryAssign(ctx context.Context, requestID string) (*MatchResult, error) {
	request, err := s.requests.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != constants.RequestOpen {
		return nil, apperrors.ErrAlreadyAssigned
	}

	task, err := s.catalog.FindTaskDefinition(ctx, request.TaskID)
	if err != nil {
		return nil, err
	}

	workerID, err := s.requests.AssignFirstEligible(ctx, request, task.SpecialtyID)
	if err != nil {
		return nil, err
	}

	return &MatchResult{Request: request, AssignedWorkerID: workerID}, nil
}
