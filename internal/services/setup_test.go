package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-match-system.com/task-match-system/internal/cache"
	model "task-match-system.com/task-match-system/internal/models"
	repository "task-match-system.com/task-match-system/internal/repositories"
)

// mockReferenceCache is a simple in-memory reference cache for testing
type mockReferenceCache struct {
	mu    sync.Mutex
	tasks map[string]model.TaskDefinition
	slots map[string]model.TimeSlot
}

func newMockReferenceCache() *mockReferenceCache {
	return &mockReferenceCache{
		tasks: make(map[string]model.TaskDefinition),
		slots: make(map[string]model.TimeSlot),
	}
}

func (m *mockReferenceCache) GetTask(ctx context.Context, id string) (*model.TaskDefinition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return &task, nil
}

func (m *mockReferenceCache) SetTask(ctx context.Context, task *model.TaskDefinition) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks[task.ID] = *task
	return nil
}

func (m *mockReferenceCache) GetTimeSlot(ctx context.Context, id string) (*model.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return &slot, nil
}

func (m *mockReferenceCache) SetTimeSlot(ctx context.Context, slot *model.TimeSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[slot.ID] = *slot
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Worker{},
		&model.Client{},
		&model.Specialty{},
		&model.Location{},
		&model.TimeSlot{},
		&model.TaskDefinition{},
		&model.Availability{},
		&model.TaskRequest{},
		&model.Assignment{},
		&model.Rating{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	if err := db.Exec(model.ActiveAssignmentIndexSQL).Error; err != nil {
		t.Fatalf("failed to create assignment index: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	db           *gorm.DB
	refCache     *mockReferenceCache
	catalogRepo  *repository.CatalogRepository
	requestRepo  *repository.RequestRepository
	matcher      *MatcherService
	lifecycle    *LifecycleService
	ratings      *RatingService
	availability *AvailabilityService
	workers      *WorkerService
	catalog      *CatalogService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)
	refCache := newMockReferenceCache()
	logger := zap.NewNop()

	catalogRepo := repository.NewCatalogRepository(db, refCache)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	requestRepo := repository.NewRequestRepository(db, availabilityRepo)
	ratingRepo := repository.NewRatingRepository(db)

	return &testEnv{
		db:           db,
		refCache:     refCache,
		catalogRepo:  catalogRepo,
		requestRepo:  requestRepo,
		matcher:      NewMatcherService(catalogRepo, requestRepo, logger),
		lifecycle:    NewLifecycleService(requestRepo, logger),
		ratings:      NewRatingService(requestRepo, ratingRepo),
		availability: NewAvailabilityService(availabilityRepo, catalogRepo),
		workers:      NewWorkerService(catalogRepo, logger),
		catalog:      NewCatalogService(catalogRepo, requestRepo),
	}
}

// fixtures is the reference data most tests start from: one client and one
// worker around a plumbing task offered downtown on Monday 9-11.
type fixtures struct {
	client    model.Client
	worker    model.Worker
	specialty model.Specialty
	location  model.Location
	slot      model.TimeSlot
	task      model.TaskDefinition
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	f := fixtures{
		client:    model.Client{ID: uuid.NewString(), Name: "Dana"},
		worker:    model.Worker{ID: uuid.NewString(), Name: "Riley"},
		specialty: model.Specialty{ID: uuid.NewString(), Name: "Plumbing"},
		location:  model.Location{ID: uuid.NewString(), Area: "Downtown"},
		slot:      model.TimeSlot{ID: uuid.NewString(), DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00"},
	}
	f.task = model.TaskDefinition{
		ID:                 uuid.NewString(),
		Name:               "Fix leaking sink",
		AvgDurationMinutes: 60,
		AvgFee:             80,
		SpecialtyID:        f.specialty.ID,
	}

	for _, row := range []interface{}{&f.client, &f.worker, &f.specialty, &f.location, &f.slot, &f.task} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed fixtures: %v", err)
		}
	}
	return f
}

func seedAvailability(t *testing.T, db *gorm.DB, workerID string, f fixtures) {
	row := model.Availability{
		ID:          uuid.NewString(),
		WorkerID:    workerID,
		SpecialtyID: f.specialty.ID,
		LocationID:  f.location.ID,
		TimeSlotID:  f.slot.ID,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed availability: %v", err)
	}
}
