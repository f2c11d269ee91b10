package app

import (
	"homeschool_backend/docs"
	"homeschool_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 登录即注册，无鉴权
		api.POST("/login", c.auth.Login)

		// 学生管理
		api.POST("/students", c.student.Create)
		api.GET("/students/:parentId", c.student.List)
		api.DELETE("/students/:id", c.student.Delete)

		// 课程
		api.POST("/lessons", c.lesson.Create)
		api.POST("/lessons/generate", c.lesson.Generate)
		api.GET("/lessons/:gradeLevel", c.lesson.ListByGrade)
		api.GET("/lesson/:id", c.lesson.Get)
		api.GET("/curriculum", c.curriculum.Get)

		// 种子任务
		api.POST("/seed", c.seed.Seed)
		api.GET("/seed/status", c.seed.Status)

		// 进度
		api.POST("/progress", c.progress.Create)
		api.GET("/progress/:studentId", c.progress.List)

		// 课程播放会话
		player := api.Group("/player/sessions")
		{
			player.POST("", c.player.Start)
			player.GET("/:id", c.player.Get)
			player.POST("/:id/advance", c.player.Advance)
			player.PUT("/:id/answers", c.player.Answer)
			player.POST("/:id/submit", c.player.Submit)
			player.POST("/:id/close", c.player.Close)
		}
	}
}
