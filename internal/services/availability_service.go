package services

import (
	"context"

	repository "task-match-system.com/task-match-system/internal/repositories"
)

// AvailabilityService is the read-only view over the availability index.
type AvailabilityService struct {
	availability *repository.AvailabilityRepository
	catalog      *repository.CatalogRepository
}

func NewAvailabilityService(
	availability *repository.AvailabilityRepository,
	catalog *repository.CatalogRepository,
) *AvailabilityService {
	return &AvailabilityService{availability: availability, catalog: catalog}
}

func (s *AvailabilityService) FindEligibleWorkers(ctx context.Context, specialtyID, locationID, timeSlotID string) ([]string, error) {
	return s.availability.FindEligibleWorkers(ctx, specialtyID, locationID, timeSlotID)
}

// AvailableTimeSlotsForTask lists the slots where at least one worker
// advertises the task's required specialty at the location.
func (s *AvailabilityService) AvailableTimeSlotsForTask(ctx context.Context, taskID, locationID string) ([]string, error) {
	task, err := s.catalog.FindTaskDefinition(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.availability.AvailableTimeSlots(ctx, task.SpecialtyID, locationID)
}
