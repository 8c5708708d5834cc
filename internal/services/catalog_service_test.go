package services

import (
	"context"
	"testing"

	model "task-match-system.com/task-match-system/internal/models"
)

func TestCatalogService_SearchTasks(t *testing.T) {
	env := newTestEnv(t)
	f := seedFixtures(t, env.db)

	ctx := context.Background()
	entries, err := env.catalog.SearchTasks(ctx, "leaking")
	if err != nil {
		t.Fatalf("failed to search tasks: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Specialty != f.specialty.Name {
		t.Errorf("expected specialty %q, got %q", f.specialty.Name, entries[0].Specialty)
	}

	entries, err = env.catalog.SearchTasks(ctx, "no such task")
	if err != nil {
		t.Fatalf("failed to search tasks: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestCatalogService_TaskDefinitionServedFromCache(t *testing.T) {
	env := newTestEnv(t)
	f := seedFixtures(t, env.db)

	ctx := context.Background()
	if _, err := env.catalogRepo.FindTaskDefinition(ctx, f.task.ID); err != nil {
		t.Fatalf("failed to load task definition: %v", err)
	}

	// the row is gone but the immutable entry was cached on first read
	if err := env.db.Delete(&model.TaskDefinition{}, "id = ?", f.task.ID).Error; err != nil {
		t.Fatalf("failed to delete task definition: %v", err)
	}

	task, err := env.catalogRepo.FindTaskDefinition(ctx, f.task.ID)
	if err != nil {
		t.Fatalf("expected cached task definition, got %v", err)
	}
	if task.Name != f.task.Name {
		t.Errorf("expected task %q, got %q", f.task.Name, task.Name)
	}
}

func TestCatalogService_GetRequestWithAssignment(t *testing.T) {
	env := newTestEnv(t)
	f := seedFixtures(t, env.db)

	ctx := context.Background()
	open, err := env.requestRepo.CreateRequest(ctx, f.client.ID, f.task.ID, f.location.ID, f.slot.ID, "9 Side St")
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	detail, err := env.catalog.GetRequest(ctx, open.ID)
	if err != nil {
		t.Fatalf("failed to get request: %v", err)
	}
	if detail.Assignment != nil {
		t.Errorf("expected no assignment on an open request")
	}

	assignedID := createAssignedRequest(t, env, f)
	detail, err = env.catalog.GetRequest(ctx, assignedID)
	if err != nil {
		t.Fatalf("failed to get request: %v", err)
	}
	if detail.Assignment == nil {
		t.Fatalf("expected assignment on an assigned request")
	}
	if detail.Assignment.WorkerID != f.worker.ID {
		t.Errorf("expected worker %s, got %s", f.worker.ID, detail.Assignment.WorkerID)
	}
}
