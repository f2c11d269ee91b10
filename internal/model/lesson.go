package model

import (
	"encoding/json"
	"time"
)

// QuizQuestion is one multiple-choice item: four options, zero-based answer index.
// swagger:model QuizQuestion
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Lesson is a generated learning unit. StudentID nil means grade-wide
// visibility; set means visible only to that student (in addition to the
// grade-wide set). Lessons are never updated or deleted.
// swagger:model Lesson
type Lesson struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"size:255" json:"title"`
	Subject    string    `gorm:"size:100" json:"subject"`
	GradeLevel string    `gorm:"size:10;index" json:"grade_level"`
	Content    string    `gorm:"type:text" json:"content"`
	QuizJSON   string    `gorm:"type:text" json:"quiz_json"`
	CreatedAt  time.Time `json:"created_at"`
	StudentID  *uint     `gorm:"index" json:"student_id"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// Quiz deserializes the stored quiz payload.
func (l *Lesson) Quiz() ([]QuizQuestion, error) {
	var quiz []QuizQuestion
	if err := json.Unmarshal([]byte(l.QuizJSON), &quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// SetQuiz serializes the quiz into the stored text column.
func (l *Lesson) SetQuiz(quiz []QuizQuestion) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	l.QuizJSON = string(data)
	return nil
}

// LessonDetail is the single-lesson wire shape: same columns, quiz_json
// deserialized into structured form.
// swagger:model LessonDetail
type LessonDetail struct {
	ID         uint           `json:"id"`
	Title      string         `json:"title"`
	Subject    string         `json:"subject"`
	GradeLevel string         `json:"grade_level"`
	Content    string         `json:"content"`
	Quiz       []QuizQuestion `json:"quiz_json"`
	CreatedAt  time.Time      `json:"created_at"`
	StudentID  *uint          `json:"student_id"`
}

func (l *Lesson) Detail() (*LessonDetail, error) {
	quiz, err := l.Quiz()
	if err != nil {
		return nil, err
	}
	return &LessonDetail{
		ID:         l.ID,
		Title:      l.Title,
		Subject:    l.Subject,
		GradeLevel: l.GradeLevel,
		Content:    l.Content,
		Quiz:       quiz,
		CreatedAt:  l.CreatedAt,
		StudentID:  l.StudentID,
	}, nil
}
