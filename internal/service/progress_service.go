package service

import (
	"math"
	"time"

	"homeschool_backend/internal/model"
	"homeschool_backend/internal/repository"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	LessonRepo   *repository.LessonRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, lessonRepo *repository.LessonRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		LessonRepo:   lessonRepo,
	}
}

// ComputeScore is the one scoring rule: round(100 * correct / total).
func ComputeScore(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// ScoreAnswers grades an answer vector against a quiz's answer key. Missing
// answers count as wrong.
func ScoreAnswers(quiz []model.QuizQuestion, answers []int) int {
	correct := 0
	for i, q := range quiz {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return ComputeScore(correct, len(quiz))
}

// Record persists one quiz attempt. The bare score is accepted verbatim for
// wire compatibility with existing clients; when the caller also submits its
// answer vector, the score is recomputed here from the stored answer key and
// the recomputed value wins.
func (s *ProgressService) Record(studentID, lessonID uint, score int, answers []int) (*model.ProgressRecord, error) {
	if answers != nil {
		lesson, err := s.LessonRepo.FindByID(lessonID)
		if err != nil {
			return nil, err
		}
		quiz, err := lesson.Quiz()
		if err != nil {
			return nil, err
		}
		score = ScoreAnswers(quiz, answers)
	}

	record := &model.ProgressRecord{
		StudentID:   studentID,
		LessonID:    lessonID,
		Score:       score,
		CompletedAt: time.Now(),
	}
	if err := s.ProgressRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *ProgressService) ListForStudent(studentID uint) ([]model.ProgressWithLesson, error) {
	return s.ProgressRepo.ListForStudent(studentID)
}
