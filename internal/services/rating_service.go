package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-match-system.com/task-match-system/internal/constants"
	apperrors "task-match-system.com/task-match-system/internal/errors"
	model "task-match-system.com/task-match-system/internal/models"
	repository "task-match-system.com/task-match-system/internal/repositories"
)

// RatingService records one-time bilateral ratings once a request's
// assignment is completed. Ratings never alter request or assignment state.
type RatingService struct {
	requests *repository.RequestRepository
	ratings  *repository.RatingRepository
}

func NewRatingService(requests *repository.RequestRepository, ratings *repository.RatingRepository) *RatingService {
	return &RatingService{requests: requests, ratings: ratings}
}

// RateWorker records the client's rating of the worker assigned to the
// request.
func (s *RatingService) RateWorker(ctx context.Context, requestID string, value int, feedback string) (*model.Rating, error) {
	assignment, request, err := s.completedAssignment(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, request, constants.RaterClient, assignment.WorkerID, value, feedback)
}

// RateClient records the assigned worker's rating of the request's client.
// workerID must name the worker the assignment binds.
func (s *RatingService) RateClient(ctx context.Context, requestID, workerID string, value int, feedback string) (*model.Rating, error) {
	assignment, request, err := s.completedAssignment(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if assignment.WorkerID != workerID {
		return nil, apperrors.ErrAssignmentNotFound
	}

	return s.create(ctx, request, constants.RaterWorker, request.ClientID, value, feedback)
}

func (s *RatingService) RatingsForRequest(ctx context.Context, requestID string) ([]model.Rating, error) {
	if _, err := s.requests.FindRequestByID(ctx, requestID); err != nil {
		return nil, err
	}
	return s.ratings.ListByRequest(ctx, requestID)
}

func (s *RatingService) completedAssignment(ctx context.Context, requestID string) (*model.Assignment, *model.TaskRequest, error) {
	request, err := s.requests.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	assignment, err := s.requests.FindAssignmentByRequest(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if assignment.Status != constants.AssignmentCompleted {
		return nil, nil, apperrors.ErrRequestNotCompleted
	}

	return assignment, request, nil
}

func (s *RatingService) create(ctx context.Context, request *model.TaskRequest, role constants.RaterRole, subjectID string, value int, feedback string) (*model.Rating, error) {
	if value < 1 || value > 5 {
		return nil, apperrors.ErrInvalidRatingValue
	}

	rating := &model.Rating{
		ID:        uuid.NewString(),
		RequestID: request.ID,
		TaskID:    request.TaskID,
		RaterRole: role,
		SubjectID: subjectID,
		Value:     value,
		Feedback:  feedback,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.ratings.CreateRating(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}
