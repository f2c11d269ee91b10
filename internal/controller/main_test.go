package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homeschool_backend/internal/config"
	"homeschool_backend/internal/model"
	"homeschool_backend/internal/repository"
	"homeschool_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testRouter wires the API routes against an in-memory database, with the
// generation adapter pointed at a stub completions endpoint.
func testRouter(t *testing.T, aiHandler http.HandlerFunc) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Lesson{},
		&model.ProgressRecord{},
	))

	aiCfg := config.AIConfig{Model: "gpt-4o-mini", Timeout: 5 * time.Second}
	if aiHandler != nil {
		server := httptest.NewServer(aiHandler)
		t.Cleanup(server.Close)
		aiCfg.BaseURL = server.URL
	}

	userRepo := repository.NewUserRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	progressSvc := service.NewProgressService(progressRepo, lessonRepo)
	lessonSvc := service.NewLessonService(lessonRepo, service.NewAIService(aiCfg))
	playerSvc := service.NewPlayerService(lessonRepo, progressSvc)

	auth := NewAuthController(service.NewAuthService(userRepo))
	student := NewStudentController(service.NewStudentService(userRepo))
	lesson := NewLessonController(lessonSvc)
	progress := NewProgressController(progressSvc)
	curriculum := NewCurriculumController()
	player := NewPlayerController(playerSvc)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/login", auth.Login)
		api.POST("/students", student.Create)
		api.GET("/students/:parentId", student.List)
		api.DELETE("/students/:id", student.Delete)
		api.POST("/lessons", lesson.Create)
		api.POST("/lessons/generate", lesson.Generate)
		api.GET("/lessons/:gradeLevel", lesson.ListByGrade)
		api.GET("/lesson/:id", lesson.Get)
		api.GET("/curriculum", curriculum.Get)
		api.POST("/progress", progress.Create)
		api.GET("/progress/:studentId", progress.List)

		sessions := api.Group("/player/sessions")
		{
			sessions.POST("", player.Start)
			sessions.GET("/:id", player.Get)
			sessions.POST("/:id/advance", player.Advance)
			sessions.PUT("/:id/answers", player.Answer)
			sessions.POST("/:id/submit", player.Submit)
			sessions.POST("/:id/close", player.Close)
		}
	}
	return router, db
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
