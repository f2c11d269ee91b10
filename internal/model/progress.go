package model

import "time"

// ProgressRecord is one completed quiz attempt. Records are insert-only; they
// are removed only when the owning student is deleted.
// swagger:model ProgressRecord
type ProgressRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID   uint      `gorm:"index" json:"student_id"`
	LessonID    uint      `gorm:"index" json:"lesson_id"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

func (ProgressRecord) TableName() string {
	return "progress"
}

// ProgressWithLesson joins a record with the owning lesson's title and subject
// for the report view.
// swagger:model ProgressWithLesson
type ProgressWithLesson struct {
	ID          uint      `json:"id"`
	StudentID   uint      `json:"student_id"`
	LessonID    uint      `json:"lesson_id"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
}
