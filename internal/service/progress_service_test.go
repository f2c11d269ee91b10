package service

import (
	"testing"

	"homeschool_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"three of five", 3, 5, 60},
		{"four of five", 4, 5, 80},
		{"perfect", 5, 5, 100},
		{"none", 0, 5, 0},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"empty quiz", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeScore(tt.correct, tt.total))
		})
	}
}

func TestScoreAnswers(t *testing.T) {
	quiz := sampleQuiz(5) // answer key: 0,1,2,3,0

	assert.Equal(t, 100, ScoreAnswers(quiz, []int{0, 1, 2, 3, 0}))
	assert.Equal(t, 80, ScoreAnswers(quiz, []int{0, 1, 2, 3, 1}))
	assert.Equal(t, 60, ScoreAnswers(quiz, []int{0, 1, 2, 0, 1}))
	assert.Equal(t, 0, ScoreAnswers(quiz, []int{1, 2, 3, 0, 1}))

	// 缺失的答案按错误计
	assert.Equal(t, 40, ScoreAnswers(quiz, []int{0, 1}))
	assert.Equal(t, 0, ScoreAnswers(quiz, nil))
}

func TestRecordTrustsScoreWithoutAnswers(t *testing.T) {
	db := testDB(t)
	progress := NewProgressService(repository.NewProgressRepository(db), repository.NewLessonRepository(db))

	record, err := progress.Record(1, 999, 73, nil)
	require.NoError(t, err)
	assert.Equal(t, 73, record.Score)
	assert.NotZero(t, record.ID)
	assert.False(t, record.CompletedAt.IsZero())
}

func TestRecordRecomputesFromAnswers(t *testing.T) {
	db := testDB(t)
	lessons := repository.NewLessonRepository(db)
	progress := NewProgressService(repository.NewProgressRepository(db), lessons)

	lesson := createLesson(t, lessons, "Fractions", "Math", "3", nil)

	// 提交的分数与答案不符时以服务端重算为准
	record, err := progress.Record(1, lesson.ID, 100, []int{0, 1, 2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 80, record.Score)

	records, err := progress.ListForStudent(1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 80, records[0].Score)
	assert.Equal(t, "Fractions", records[0].Title)
}

func TestRecordAnswersForMissingLesson(t *testing.T) {
	db := testDB(t)
	progress := NewProgressService(repository.NewProgressRepository(db), repository.NewLessonRepository(db))

	_, err := progress.Record(1, 42, 100, []int{0, 1, 2, 3, 0})
	assert.Error(t, err)
}

func TestScoreAnswersIgnoresExtraAnswers(t *testing.T) {
	quiz := sampleQuiz(5)
	assert.Equal(t, 100, ScoreAnswers(quiz, []int{0, 1, 2, 3, 0, 3, 3}))
}
