package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-match-system.com/task-match-system/internal/cache"
	apperrors "task-match-system.com/task-match-system/internal/errors"
	model "task-match-system.com/task-match-system/internal/models"
)

// CatalogRepository reads the reference data the matcher validates against:
// clients, workers, locations, time slots and the task catalog. Task
// definitions and time slots are immutable, so reads go through the
// reference cache when one is configured.
type CatalogRepository struct {
	db       *gorm.DB
	refCache cache.ReferenceCache
}

func NewCatalogRepository(db *gorm.DB, refCache cache.ReferenceCache) *CatalogRepository {
	return &CatalogRepository{db: db, refCache: refCache}
}

func (r *CatalogRepository) FindTaskDefinition(ctx context.Context, id string) (*model.TaskDefinition, error) {
	if r.refCache != nil {
		if task, err := r.refCache.GetTask(ctx, id); err == nil {
			return task, nil
		}
	}

	var task model.TaskDefinition
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if r.refCache != nil {
		_ = r.refCache.SetTask(ctx, &task)
	}

	return &task, nil
}

func (r *CatalogRepository) FindTimeSlot(ctx context.Context, id string) (*model.TimeSlot, error) {
	if r.refCache != nil {
		if slot, err := r.refCache.GetTimeSlot(ctx, id); err == nil {
			return slot, nil
		}
	}

	var slot model.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTimeSlotNotFound
		}
		return nil, err
	}

	if r.refCache != nil {
		_ = r.refCache.SetTimeSlot(ctx, &slot)
	}

	return &slot, nil
}

func (r *CatalogRepository) ClientExists(ctx context.Context, id string) error {
	return r.exists(ctx, &model.Client{}, id, apperrors.ErrClientNotFound)
}

func (r *CatalogRepository) WorkerExists(ctx context.Context, id string) error {
	return r.exists(ctx, &model.Worker{}, id, apperrors.ErrWorkerNotFound)
}

func (r *CatalogRepository) LocationExists(ctx context.Context, id string) error {
	return r.exists(ctx, &model.Location{}, id, apperrors.ErrLocationNotFound)
}

func (r *CatalogRepository) SpecialtyExists(ctx context.Context, id string) error {
	return r.exists(ctx, &model.Specialty{}, id, apperrors.ErrSpecialtyNotFound)
}

func (r *CatalogRepository) TimeSlotExists(ctx context.Context, id string) error {
	return r.exists(ctx, &model.TimeSlot{}, id, apperrors.ErrTimeSlotNotFound)
}

func (r *CatalogRepository) exists(ctx context.Context, entity interface{}, id string, notFound error) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(entity).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return nil
}

// TaskCatalogEntry is a catalog row joined with its specialty name.
type TaskCatalogEntry struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	AvgDurationMinutes int     `json:"avg_duration_minutes"`
	AvgFee             float64 `json:"avg_fee"`
	Specialty          string  `json:"specialty"`
}

func (r *CatalogRepository) SearchTaskDefinitions(ctx context.Context, search string) ([]TaskCatalogEntry, error) {
	query := r.db.WithContext(ctx).
		Table("task_definitions").
		Select("task_definitions.id, task_definitions.name, task_definitions.avg_duration_minutes, task_definitions.avg_fee, specialties.name AS specialty").
		Joins("LEFT JOIN specialties ON task_definitions.specialty_id = specialties.id").
		Order("task_definitions.name")

	if search != "" {
		query = query.Where("task_definitions.name LIKE ?", "%"+search+"%")
	}

	var entries []TaskCatalogEntry
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *CatalogRepository) ListTimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.WithContext(ctx).Order("day_of_week, start_time").Find(&slots).Error
	return slots, err
}

// ReplaceAvailability swaps a worker's entire availability set in one
// transaction, mirroring how profile edits rewrite the roster.
func (r *CatalogRepository) ReplaceAvailability(ctx context.Context, workerID string, rows []model.Availability) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", workerID).Delete(&model.Availability{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
