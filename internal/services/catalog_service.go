package services

import (
	"context"
	"errors"

	apperrors "task-match-system.com/task-match-system/internal/errors"
	model "task-match-system.com/task-match-system/internal/models"
	repository "task-match-system.com/task-match-system/internal/repositories"
)

// CatalogService exposes the reads the caller renders: the task catalog,
// the slot enumeration, and a request together with its assignment.
type CatalogService struct {
	catalog  *repository.CatalogRepository
	requests *repository.RequestRepository
}

func NewCatalogService(catalog *repository.CatalogRepository, requests *repository.RequestRepository) *CatalogService {
	return &CatalogService{catalog: catalog, requests: requests}
}

func (s *CatalogService) SearchTasks(ctx context.Context, search string) ([]repository.TaskCatalogEntry, error) {
	return s.catalog.SearchTaskDefinitions(ctx, search)
}

func (s *CatalogService) ListTimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	return s.catalog.ListTimeSlots(ctx)
}

// RequestDetail is a request with its assignment, when one exists.
type RequestDetail struct {
	Request    *model.TaskRequest `json:"request"`
	Assignment *model.Assignment  `json:"assignment,omitempty"`
}

func (s *CatalogService) GetRequest(ctx context.Context, requestID string) (*RequestDetail, error) {
	request, err := s.requests.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	assignment, err := s.requests.FindAssignmentByRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssignmentNotFound) {
			return &RequestDetail{Request: request}, nil
		}
		return nil, err
	}

	return &RequestDetail{Request: request, Assignment: assignment}, nil
}
