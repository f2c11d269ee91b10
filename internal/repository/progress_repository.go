package repository

import (
	"homeschool_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(record *model.ProgressRecord) error {
	return r.DB.Create(record).Error
}

// ListForStudent returns the student's attempts joined with the owning
// lesson's title and subject, newest first.
func (r *ProgressRepository) ListForStudent(studentID uint) ([]model.ProgressWithLesson, error) {
	var records []model.ProgressWithLesson
	err := r.DB.Model(&model.ProgressRecord{}).
		Select("progress.id, progress.student_id, progress.lesson_id, progress.score, progress.completed_at, lessons.title, lessons.subject").
		Joins("JOIN lessons ON progress.lesson_id = lessons.id").
		Where("progress.student_id = ?", studentID).
		Order("progress.completed_at DESC").
		Scan(&records).Error
	return records, err
}

func (r *ProgressRepository) CountForStudent(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ProgressRecord{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}
