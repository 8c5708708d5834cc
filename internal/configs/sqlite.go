package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-match-system.com/task-match-system/internal/models"
)

// New opens the store and migrates the schema. TranslateError lets unique
// constraint violations surface as gorm.ErrDuplicatedKey, which the
// matching and rating write paths rely on.
func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := db.Exec(model.ActiveAssignmentIndexSQL).Error; err != nil {
		log.Fatalf("index creation failed: %v", err)
	}

	return db
}
