package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	model "task-match-system.com/task-match-system/internal/models"
	repository "task-match-system.com/task-match-system/internal/repositories"
)

// WorkerService covers the one worker-side write the matching core depends
// on: replacing the worker's availability roster.
type WorkerService struct {
	catalog *repository.CatalogRepository
	logger  *zap.Logger
}

func NewWorkerService(catalog *repository.CatalogRepository, logger *zap.Logger) *WorkerService {
	return &WorkerService{catalog: catalog, logger: logger}
}

type AvailabilityTuple struct {
	SpecialtyID string
	LocationID  string
	TimeSlotID  string
}

// ReplaceAvailability swaps the worker's entire availability set. An empty
// tuple list clears it. Every referenced id must name an existing reference
// row; nothing is written otherwise.
func (s *WorkerService) ReplaceAvailability(ctx context.Context, workerID string, tuples []AvailabilityTuple) error {
	if err := s.catalog.WorkerExists(ctx, workerID); err != nil {
		return err
	}
	for _, t := range tuples {
		if err := s.catalog.SpecialtyExists(ctx, t.SpecialtyID); err != nil {
			return err
		}
		if err := s.catalog.LocationExists(ctx, t.LocationID); err != nil {
			return err
		}
		if err := s.catalog.TimeSlotExists(ctx, t.TimeSlotID); err != nil {
			return err
		}
	}

	rows := make([]model.Availability, 0, len(tuples))
	for _, t := range tuples {
		rows = append(rows, model.Availability{
			ID:          uuid.NewString(),
			WorkerID:    workerID,
			SpecialtyID: t.SpecialtyID,
			LocationID:  t.LocationID,
			TimeSlotID:  t.TimeSlotID,
		})
	}

	if err := s.catalog.ReplaceAvailability(ctx, workerID, rows); err != nil {
		return err
	}

	s.logger.Info("availability replaced",
		zap.String("worker_id", workerID),
		zap.Int("tuples", len(rows)),
	)
	return nil
}
