package model

import (
	"time"

	"task-match-system.com/task-match-system/internal/constants"
)

type Worker struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Client struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	PaymentInfo string    `json:"payment_info"`
	CreatedAt   time.Time `json:"created_at"`
}

type Specialty struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

type Location struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Area string `gorm:"not null;uniqueIndex" json:"area"`
}

// TimeSlot is a recurring (day-of-week, start, end) interval. The set of
// slots is fixed reference data, not created by end users. DayOfWeek is
// 1=Monday through 7=Sunday.
type TimeSlot struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"not null" json:"start_time"`
	EndTime   string `gorm:"not null" json:"end_time"`
}

// TaskDefinition is an immutable catalog entry.
type TaskDefinition struct {
	ID                 string  `gorm:"primaryKey;size:36" json:"id"`
	Name               string  `gorm:"not null" json:"name"`
	AvgDurationMinutes int     `json:"avg_duration_minutes"`
	AvgFee             float64 `json:"avg_fee"`
	SpecialtyID        string  `gorm:"size:36;not null;index" json:"specialty_id"`
}

// Availability asserts a worker is willing to perform a specialty at a
// location during a time slot. The full set for a worker is replaced
// whenever the worker edits their availability.
type Availability struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	WorkerID    string `gorm:"size:36;not null;uniqueIndex:idx_availability_tuple" json:"worker_id"`
	SpecialtyID string `gorm:"size:36;not null;uniqueIndex:idx_availability_tuple" json:"specialty_id"`
	LocationID  string `gorm:"size:36;not null;uniqueIndex:idx_availability_tuple" json:"location_id"`
	TimeSlotID  string `gorm:"size:36;not null;uniqueIndex:idx_availability_tuple" json:"time_slot_id"`
}

type TaskRequest struct {
	ID         string                  `gorm:"primaryKey;size:36" json:"id"`
	ClientID   string                  `gorm:"size:36;not null;index" json:"client_id"`
	TaskID     string                  `gorm:"size:36;not null" json:"task_id"`
	LocationID string                  `gorm:"size:36;not null" json:"location_id"`
	TimeSlotID string                  `gorm:"size:36;not null" json:"time_slot_id"`
	Address    string                  `json:"address"`
	Status     constants.RequestStatus `gorm:"type:varchar(20);not null" json:"status"`
	Version    uint                    `gorm:"not null;default:1" json:"version"`
	CreatedAt  time.Time               `json:"created_at"`
}

// ActiveAssignmentIndexSQL guards against double-booking: at most one
// assignment in an active status per (worker, time slot). GORM struct tags
// cannot express a partial index with a multi-value predicate, so the index
// is created with raw SQL after migration.
const ActiveAssignmentIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_worker_slot_active
ON assignments(worker_id, time_slot_id)
WHERE status IN ('scheduled','in_progress')`

// Assignment binds one worker to one request. TimeSlotID is denormalized
// from the request so the partial unique index on (worker_id, time_slot_id)
// for active rows, created at migration, can enforce that a worker holds at
// most one active assignment per slot.
type Assignment struct {
	ID                    string                     `gorm:"primaryKey;size:36" json:"id"`
	RequestID             string                     `gorm:"size:36;not null;uniqueIndex" json:"request_id"`
	WorkerID              string                     `gorm:"size:36;not null;index" json:"worker_id"`
	TimeSlotID            string                     `gorm:"size:36;not null;index" json:"time_slot_id"`
	Status                constants.AssignmentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Version               uint                       `gorm:"not null;default:1" json:"version"`
	StartedAt             *time.Time                 `json:"started_at,omitempty"`
	ActualDurationMinutes *int                       `json:"actual_duration_minutes,omitempty"`
	CreatedAt             time.Time                  `json:"created_at"`
}

// Rating is an immutable post-completion review, at most one per
// (rater role, request).
type Rating struct {
	ID        string              `gorm:"primaryKey;size:36" json:"id"`
	RequestID string              `gorm:"size:36;not null;uniqueIndex:idx_rating_once" json:"request_id"`
	TaskID    string              `gorm:"size:36;not null" json:"task_id"`
	RaterRole constants.RaterRole `gorm:"type:varchar(10);not null;uniqueIndex:idx_rating_once" json:"rater_role"`
	SubjectID string              `gorm:"size:36;not null;index" json:"subject_id"`
	Value     int                 `gorm:"not null;check:value >= 1 AND value <= 5" json:"value"`
	Feedback  string              `json:"feedback"`
	CreatedAt time.Time           `json:"created_at"`
}
