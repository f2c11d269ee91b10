package repository

import (
	"homeschool_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

// ListForGrade returns lessons visible at a grade level, newest first. With a
// student id the result is the union of grade-wide lessons and lessons
// privately assigned to that student; without one, grade-wide lessons only.
func (r *LessonRepository) ListForGrade(grade string, studentID *uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	q := r.DB.Where("grade_level = ?", grade)
	if studentID != nil {
		q = q.Where("student_id IS NULL OR student_id = ?", *studentID)
	} else {
		q = q.Where("student_id IS NULL")
	}
	err := q.Order("created_at DESC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) CountForGrade(grade string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).
		Where("grade_level = ?", grade).
		Count(&count).Error
	return count, err
}
