package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	apperrors "task-match-system.com/task-match-system/internal/errors"
	model "task-match-system.com/task-match-system/internal/models"
)

func TestWorkerService_ReplaceAvailability(t *testing.T) {
	env := newTestEnv(t)
	f := seedFixtures(t, env.db)
	seedAvailability(t, env.db, f.worker.ID, f)

	uptown := model.Location{ID: uuid.NewString(), Area: "Uptown"}
	if err := env.db.Create(&uptown).Error; err != nil {
		t.Fatalf("failed to seed location: %v", err)
	}

	ctx := context.Background()
	err := env.workers.ReplaceAvailability(ctx, f.worker.ID, []AvailabilityTuple{
		{SpecialtyID: f.specialty.ID, LocationID: uptown.ID, TimeSlotID: f.slot.ID},
	})
	if err != nil {
		t.Fatalf("failed to replace availability: %v", err)
	}

	var rows []model.Availability
	if err := env.db.Where("worker_id = ?", f.worker.ID).Find(&rows).Error; err != nil {
		t.Fatalf("failed to load availability: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 availability row after replace, got %d", len(rows))
	}
	if rows[0].LocationID != uptown.ID {
		t.Errorf("expected replaced tuple to point at %s, got %s", uptown.ID, rows[0].LocationID)
	}

	// an empty tuple list clears the roster
	if err := env.workers.ReplaceAvailability(ctx, f.worker.ID, nil); err != nil {
		t.Fatalf("failed to clear availability: %v", err)
	}
	var count int64
	env.db.Model(&model.Availability{}).Where("worker_id = ?", f.worker.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected no availability rows, got %d", count)
	}
}

func TestWorkerService_ReplaceAvailabilityUnknownReferences(t *testing.T) {
	env := newTestEnv(t)
	f := seedFixtures(t, env.db)
	seedAvailability(t, env.db, f.worker.ID, f)

	ctx := context.Background()
	cases := []struct {
		name  string
		tuple AvailabilityTuple
		want  error
	}{
		{"unknown specialty", AvailabilityTuple{uuid.NewString(), f.location.ID, f.slot.ID}, apperrors.ErrSpecialtyNotFound},
		{"unknown location", AvailabilityTuple{f.specialty.ID, uuid.NewString(), f.slot.ID}, apperrors.ErrLocationNotFound},
		{"unknown time slot", AvailabilityTuple{f.specialty.ID, f.location.ID, uuid.NewString()}, apperrors.ErrTimeSlotNotFound},
		{"all unknown", AvailabilityTuple{uuid.NewString(), uuid.NewString(), uuid.NewString()}, apperrors.ErrSpecialtyNotFound},
	}

	for _, tc := range cases {
		err := env.workers.ReplaceAvailability(ctx, f.worker.ID, []AvailabilityTuple{tc.tuple})
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	// the existing roster survives every rejected replace
	var rows []model.Availability
	if err := env.db.Where("worker_id = ?", f.worker.ID).Find(&rows).Error; err != nil {
		t.Fatalf("failed to load availability: %v", err)
	}
	if len(rows) != 1 || rows[0].TimeSlotID != f.slot.ID {
		t.Errorf("expected original roster to be untouched, got %v", rows)
	}
}

func TestWorkerService_ReplaceAvailabilityUnknownWorker(t *testing.T) {
	env := newTestEnv(t)
	seedFixtures(t, env.db)

	err := env.workers.ReplaceAvailability(context.Background(), uuid.NewString(), nil)
	if !errors.Is(err, apperrors.ErrWorkerNotFound) {
		t.Errorf("expected %v, got %v", apperrors.ErrWorkerNotFound, err)
	}
}
