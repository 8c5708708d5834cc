package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	model "task-match-system.com/task-match-system/internal/models"
)

type RedisReferenceCache struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisReferenceCache(client rueidis.Client, prefix string, ttl time.Duration) *RedisReferenceCache {
	return &RedisReferenceCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisReferenceCache) GetTask(ctx context.Context, id string) (*model.TaskDefinition, error) {
	raw, err := r.get(ctx, r.prefix+":task:"+id)
	if err != nil {
		return nil, err
	}

	var task model.TaskDefinition
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *RedisReferenceCache) SetTask(ctx context.Context, task *model.TaskDefinition) error {
	return r.set(ctx, r.prefix+":task:"+task.ID, task)
}

func (r *RedisReferenceCache) GetTimeSlot(ctx context.Context, id string) (*model.TimeSlot, error) {
	raw, err := r.get(ctx, r.prefix+":timeslot:"+id)
	if err != nil {
		return nil, err
	}

	var slot model.TimeSlot
	if err := json.Unmarshal(raw, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *RedisReferenceCache) SetTimeSlot(ctx context.Context, slot *model.TimeSlot) error {
	return r.set(ctx, r.prefix+":timeslot:"+slot.ID, slot)
}

func (r *RedisReferenceCache) get(ctx context.Context, key string) ([]byte, error) {
	cmd := r.client.B().Get().Key(key).Build()
	result := r.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	return result.AsBytes()
}

func (r *RedisReferenceCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().Key(key).Value(string(payload)).Ex(r.ttl).Build()
	return r.client.Do(ctx, cmd).Error()
}
