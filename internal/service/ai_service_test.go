package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeschool_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCompletions(t *testing.T, handler http.HandlerFunc) *AIService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAIService(config.AIConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})
}

func completionPayload(t *testing.T, lesson LessonContent) []byte {
	t.Helper()
	content, err := json.Marshal(lesson)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": string(content)}},
		},
	})
	require.NoError(t, err)
	return body
}

func validLesson() LessonContent {
	return LessonContent{
		Title:   "Introduction to Fractions",
		Content: "# Fractions\n\nA fraction names part of a whole...",
		Quiz:    sampleQuiz(5),
	}
}

func TestGenerateLesson(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq chatCompletionRequest

	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write(completionPayload(t, validLesson()))
	})

	lesson, err := ai.GenerateLesson(context.Background(), "Math", "3", "Fractions")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Fractions", lesson.Title)
	assert.Len(t, lesson.Quiz, 5)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
	require.Len(t, gotReq.Messages, 2)
	assert.Contains(t, gotReq.Messages[1].Content, `grade 3 on the topic of "Fractions" in the subject of Math`)
}

func TestGenerateLessonUpstreamError(t *testing.T) {
	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := ai.GenerateLesson(context.Background(), "Math", "3", "Fractions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGenerateLessonMalformedPayload(t *testing.T) {
	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "not json at all"}},
			},
		})
		require.NoError(t, err)
		w.Write(body)
	})

	_, err := ai.GenerateLesson(context.Background(), "Math", "3", "Fractions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed lesson payload")
}

func TestGenerateLessonRejectsWrongQuizShape(t *testing.T) {
	lesson := validLesson()
	lesson.Quiz = lesson.Quiz[:3]
	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionPayload(t, lesson))
	})

	_, err := ai.GenerateLesson(context.Background(), "Math", "3", "Fractions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 5")
}

func TestGenerateLessonRejectsBadAnswerIndex(t *testing.T) {
	lesson := validLesson()
	lesson.Quiz[2].CorrectAnswer = 7
	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionPayload(t, lesson))
	})

	_, err := ai.GenerateLesson(context.Background(), "Math", "3", "Fractions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correctAnswer")
}

func TestGenerateLessonEmptyChoices(t *testing.T) {
	ai := fakeCompletions(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := ai.GenerateLesson(context.Background(), "Math", "3", "Fractions")
	assert.Error(t, err)
}
