package util

import "errors"

var (
	ErrIdentifierRequired = errors.New("identifier is required")
	ErrStudentExists      = errors.New("student already exists or invalid data")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrQuizIncomplete     = errors.New("all questions must be answered before submitting")
	ErrGeneration         = errors.New("lesson generation failed")
)
