package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"homeschool_backend/internal/config"
	"homeschool_backend/internal/model"
	"homeschool_backend/pkg/monitoring"
)

// AIService is the lesson-generation adapter. One synchronous call per lesson,
// no retry, no caching: every call regenerates content from scratch.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// LessonContent is the contract with the generative service: markdown content
// of at least 500 words and exactly 5 four-option questions.
type LessonContent struct {
	Title   string               `json:"title"`
	Content string               `json:"content"`
	Quiz    []model.QuizQuestion `json:"quiz"`
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []aiChatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const lessonSystemPrompt = `You are an expert homeschool curriculum writer. ` +
	`Respond with a single JSON object of the shape ` +
	`{"title": string, "content": string, "quiz": [{"question": string, "options": [string, string, string, string], "correctAnswer": integer}]}. ` +
	`"content" is markdown-formatted lesson text of at least 500 words. ` +
	`"quiz" has exactly 5 multiple-choice questions, each with 4 options and a zero-based correctAnswer index (0-3). ` +
	`Output only the JSON object, no surrounding prose.`

// GenerateLesson asks the generative service for a lesson on (subject, grade,
// topic) and parses the JSON payload it returns. Parsing or shape errors fail
// the call; the caller owns whatever retry policy it wants (currently none).
func (s *AIService) GenerateLesson(ctx context.Context, subject, grade, topic string) (*LessonContent, error) {
	prompt := fmt.Sprintf(
		`Generate a comprehensive educational lesson for grade %s on the topic of "%s" in the subject of %s.
The lesson should be engaging, age-appropriate, and include:
1. A clear title.
2. Detailed educational content (at least 500 words).
3. A 5-question multiple-choice quiz to test understanding.

Format the response as JSON.`,
		grade, topic, subject,
	)

	reqBody := chatCompletionRequest{
		Model: s.config.Model,
		Messages: []aiChatMessage{
			{Role: "system", Content: lessonSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	monitoring.GenerationDuration.Observe(time.Since(start).Seconds())

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("AI returned no choices")
	}

	var lesson LessonContent
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &lesson); err != nil {
		return nil, fmt.Errorf("AI returned malformed lesson payload: %w", err)
	}
	if err := validateLessonContent(&lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func validateLessonContent(lesson *LessonContent) error {
	if lesson.Title == "" {
		return fmt.Errorf("generated lesson has no title")
	}
	if lesson.Content == "" {
		return fmt.Errorf("generated lesson has no content")
	}
	if len(lesson.Quiz) != 5 {
		return fmt.Errorf("generated quiz has %d questions, want 5", len(lesson.Quiz))
	}
	for i, q := range lesson.Quiz {
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			return fmt.Errorf("question %d has correctAnswer %d, want 0-3", i, q.CorrectAnswer)
		}
	}
	return nil
}
