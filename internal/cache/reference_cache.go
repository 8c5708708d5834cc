package cache

import (
	"context"
	"errors"

	model "task-match-system.com/task-match-system/internal/models"
)

// ReferenceCache sits in front of the immutable catalog tables. A miss
// returns ErrCacheMiss and the caller falls through to the store.
type ReferenceCache interface {
	GetTask(ctx context.Context, id string) (*model.TaskDefinition, error)

	SetTask(ctx context.Context, task *model.TaskDefinition) error

	GetTimeSlot(ctx context.Context, id string) (*model.TimeSlot, error)

	SetTimeSlot(ctx context.Context, slot *model.TimeSlot) error
}

var ErrCacheMiss = errors.New("reference cache miss")
