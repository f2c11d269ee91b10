package database

import (
	"fmt"
	"log"
	"time"

	"homeschool_backend/internal/model"

	"gorm.io/gorm"
)

// Migration is one ordered, idempotent schema step. Steps run exactly once;
// each applied version is recorded in schema_migrations.
type Migration struct {
	Version int
	Name    string
	Run     func(db *gorm.DB) error
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create core tables",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&model.User{},
				&model.Lesson{},
				&model.ProgressRecord{},
			)
		},
	},
	{
		// 早期部署的 lessons 表没有 student_id 列，这里显式补齐
		Version: 2,
		Name:    "add lessons.student_id",
		Run: func(db *gorm.DB) error {
			m := db.Migrator()
			if m.HasColumn(&model.Lesson{}, "student_id") {
				return nil
			}
			return m.AddColumn(&model.Lesson{}, "StudentID")
		},
	},
}

// Migrate applies all pending migrations in version order.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.SchemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&model.SchemaMigration{}).
			Where("version = ?", m.Version).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := m.Run(db); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}

		record := &model.SchemaMigration{
			Version:   m.Version,
			Name:      m.Name,
			AppliedAt: time.Now(),
		}
		if err := db.Create(record).Error; err != nil {
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}
