package service

import (
	"context"
	"net/http"
	"testing"

	"homeschool_backend/internal/repository"
	"homeschool_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLessonPersists(t *testing.T) {
	db := testDB(t)
	lessons := repository.NewLessonRepository(db)
	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionPayload(t, validLesson()))
	})
	svc := NewLessonService(lessons, ai)

	detail, err := svc.GenerateLesson(context.Background(), "Math", "3", "Fractions", nil)
	require.NoError(t, err)
	assert.NotZero(t, detail.ID)
	assert.Equal(t, "Introduction to Fractions", detail.Title)
	assert.Equal(t, "Math", detail.Subject)
	assert.Equal(t, "3", detail.GradeLevel)
	assert.Len(t, detail.Quiz, 5)

	listed, err := svc.ListForGrade("3", nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, detail.ID, listed[0].ID)
}

func TestGenerateLessonScopedToStudent(t *testing.T) {
	db := testDB(t)
	lessons := repository.NewLessonRepository(db)
	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionPayload(t, validLesson()))
	})
	svc := NewLessonService(lessons, ai)

	detail, err := svc.GenerateLesson(context.Background(), "Math", "3", "Fractions", uintPtr(7))
	require.NoError(t, err)
	require.NotNil(t, detail.StudentID)
	assert.EqualValues(t, 7, *detail.StudentID)

	// 私有课程不出现在无作用域的列表里
	unscoped, err := svc.ListForGrade("3", nil)
	require.NoError(t, err)
	assert.Empty(t, unscoped)

	scoped, err := svc.ListForGrade("3", uintPtr(7))
	require.NoError(t, err)
	assert.Len(t, scoped, 1)
}

func TestGenerateLessonFailureIsOpaque(t *testing.T) {
	db := testDB(t)
	lessons := repository.NewLessonRepository(db)
	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	svc := NewLessonService(lessons, ai)

	_, err := svc.GenerateLesson(context.Background(), "Math", "3", "Fractions", nil)
	assert.ErrorIs(t, err, util.ErrGeneration)

	// 失败不落库
	listed, err := svc.ListForGrade("3", nil)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestGetLessonUnknownID(t *testing.T) {
	db := testDB(t)
	svc := NewLessonService(repository.NewLessonRepository(db), nil)

	detail, err := svc.GetLesson(999)
	require.NoError(t, err)
	assert.Nil(t, detail)
}
