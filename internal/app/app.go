package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeschool_backend/internal/config"
	"homeschool_backend/internal/controller"
	"homeschool_backend/internal/repository"
	"homeschool_backend/internal/service"
	"homeschool_backend/pkg/configwatcher"
	"homeschool_backend/pkg/database"
	"homeschool_backend/pkg/logger"
	"homeschool_backend/pkg/monitoring"
	"homeschool_backend/pkg/security"
	"homeschool_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the process lifecycle: the database handle and redis client are
// opened here, injected downward, and closed on shutdown.
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	lesson   *repository.LessonRepository
	progress *repository.ProgressRepository
}

type services struct {
	auth     *service.AuthService
	student  *service.StudentService
	ai       *service.AIService
	lesson   *service.LessonService
	progress *service.ProgressService
	seed     *service.SeedService
	player   *service.PlayerService
}

type controllers struct {
	auth       *controller.AuthController
	student    *controller.StudentController
	lesson     *controller.LessonController
	progress   *controller.ProgressController
	seed       *controller.SeedController
	curriculum *controller.CurriculumController
	player     *controller.PlayerController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		lesson:   repository.NewLessonRepository(db),
		progress: repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user)
	s.student = service.NewStudentService(repos.user)
	s.ai = service.NewAIService(cfg.AI)
	s.lesson = service.NewLessonService(repos.lesson, s.ai)
	s.progress = service.NewProgressService(repos.progress, repos.lesson)
	s.seed = service.NewSeedService(repos.lesson, rdb)
	s.player = service.NewPlayerService(repos.lesson, s.progress)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		student:    controller.NewStudentController(s.student),
		lesson:     controller.NewLessonController(s.lesson),
		progress:   controller.NewProgressController(s.progress),
		seed:       controller.NewSeedController(s.seed),
		curriculum: controller.NewCurriculumController(),
		player:     controller.NewPlayerController(s.player),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.Server.Mode != "release" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("homeschool-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded", zap.String("mode", newCfg.Server.Mode))
		a := app
		a.Config.CORS = newCfg.CORS
		a.Config.AI = newCfg.AI
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(cfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(cfg)
		}
	})

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exiting")
}
