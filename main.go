// @title Homeschool Hub API
// @version 1.0
// @description Backend for the Homeschool Hub learning app: parents register students, lessons are generated on demand, students take quizzes and scores are recorded.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"homeschool_backend/internal/app"
	"homeschool_backend/internal/config"
	"homeschool_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
