package service

import (
	"context"
	"errors"

	"homeschool_backend/internal/model"
	"homeschool_backend/internal/repository"
	"homeschool_backend/internal/util"
	"homeschool_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	AI         *AIService
}

func NewLessonService(lessonRepo *repository.LessonRepository, ai *AIService) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		AI:         ai,
	}
}

// CreateLesson persists a lesson whose quiz arrives as raw JSON (the original
// wire shape). The payload is stored verbatim after a structural check.
func (s *LessonService) CreateLesson(title, subject, gradeLevel, content string, quiz []model.QuizQuestion, studentID *uint) (*model.Lesson, error) {
	lesson := &model.Lesson{
		Title:      title,
		Subject:    subject,
		GradeLevel: gradeLevel,
		Content:    content,
		StudentID:  studentID,
	}
	if err := lesson.SetQuiz(quiz); err != nil {
		return nil, err
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// GenerateLesson calls the generation adapter and persists the result. The
// initiating request waits out the full generation latency; there is no queue
// in front of this.
func (s *LessonService) GenerateLesson(ctx context.Context, subject, grade, topic string, studentID *uint) (*model.LessonDetail, error) {
	content, err := s.AI.GenerateLesson(ctx, subject, grade, topic)
	if err != nil {
		logger.Log.Error("lesson generation failed",
			zap.String("subject", subject),
			zap.String("grade", grade),
			zap.String("topic", topic),
			zap.Error(err))
		return nil, util.ErrGeneration
	}

	lesson, err := s.CreateLesson(content.Title, subject, grade, content.Content, content.Quiz, studentID)
	if err != nil {
		return nil, err
	}
	return lesson.Detail()
}

func (s *LessonService) ListForGrade(grade string, studentID *uint) ([]model.Lesson, error) {
	return s.LessonRepo.ListForGrade(grade, studentID)
}

// GetLesson returns the lesson with its quiz deserialized, or nil when the id
// is unknown (not-found is not an error at this layer).
func (s *LessonService) GetLesson(id uint) (*model.LessonDetail, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return lesson.Detail()
}
