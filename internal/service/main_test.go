package service

import (
	"fmt"
	"strings"
	"testing"

	"homeschool_backend/internal/model"
	"homeschool_backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a per-test in-memory database. The shared-cache DSN keeps all
// pooled connections on the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Lesson{},
		&model.ProgressRecord{},
	))
	return db
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func sampleQuiz(n int) []model.QuizQuestion {
	quiz := make([]model.QuizQuestion, n)
	for i := range quiz {
		quiz[i] = model.QuizQuestion{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
		}
	}
	return quiz
}

func createLesson(t *testing.T, repo *repository.LessonRepository, title, subject, grade string, studentID *uint) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{
		Title:      title,
		Subject:    subject,
		GradeLevel: grade,
		Content:    "# " + title,
		StudentID:  studentID,
	}
	require.NoError(t, lesson.SetQuiz(sampleQuiz(5)))
	require.NoError(t, repo.Create(lesson))
	return lesson
}
