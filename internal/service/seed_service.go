package service

import (
	"context"
	"time"

	"homeschool_backend/internal/repository"
	"homeschool_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	seedStateKey  = "seed:state"
	seedGradesKey = "seed:grades"

	SeedStateIdle      = "idle"
	SeedStateRunning   = "running"
	SeedStateCompleted = "completed"
)

// SeedService owns the background seed task. The walk itself is placeholder
// work carried over from the original system: grades that already have lessons
// are marked skipped, the rest pending; the generation adapter is never
// called. What the rework adds is a tracking handle - state and per-grade
// status live in Redis and are queryable while the task runs.
type SeedService struct {
	LessonRepo *repository.LessonRepository
	Redis      *redis.Client
}

func NewSeedService(lessonRepo *repository.LessonRepository, rdb *redis.Client) *SeedService {
	return &SeedService{
		LessonRepo: lessonRepo,
		Redis:      rdb,
	}
}

// SeedStatus is the tracking view of the seed task.
type SeedStatus struct {
	State  string            `json:"state"`
	Grades map[string]string `json:"grades"`
}

// Start kicks off the background walk and returns immediately.
func (s *SeedService) Start() {
	ctx := context.Background()
	s.Redis.Set(ctx, seedStateKey, SeedStateRunning, 0)
	s.Redis.Del(ctx, seedGradesKey)

	go s.run()
}

func (s *SeedService) run() {
	ctx := context.Background()
	start := time.Now()

	for _, grade := range Grades {
		count, err := s.LessonRepo.CountForGrade(grade)
		if err != nil {
			logger.Log.Error("seed: lesson count failed",
				zap.String("grade", grade), zap.Error(err))
			s.Redis.HSet(ctx, seedGradesKey, grade, "error")
			continue
		}

		if count > 0 {
			s.Redis.HSet(ctx, seedGradesKey, grade, "skipped")
			continue
		}

		// 这里不直接调用生成服务，由家长在课程页逐个触发
		logger.Log.Info("seed: grade has no lessons", zap.String("grade", grade))
		s.Redis.HSet(ctx, seedGradesKey, grade, "pending")
	}

	s.Redis.Set(ctx, seedStateKey, SeedStateCompleted, 0)
	logger.Log.Info("seed task completed", zap.Duration("elapsed", time.Since(start)))
}

// Status reports the task state; idle when the task has never run.
func (s *SeedService) Status(ctx context.Context) (*SeedStatus, error) {
	state, err := s.Redis.Get(ctx, seedStateKey).Result()
	if err == redis.Nil {
		state = SeedStateIdle
	} else if err != nil {
		return nil, err
	}

	grades, err := s.Redis.HGetAll(ctx, seedGradesKey).Result()
	if err != nil {
		return nil, err
	}

	return &SeedStatus{State: state, Grades: grades}, nil
}
