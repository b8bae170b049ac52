package main

import (
	"Kolhub/internal/api/config"
	"Kolhub/internal/pkg/database"
	"Kolhub/internal/pkg/feishu"
	"Kolhub/internal/pkg/logger"
	"Kolhub/internal/repository"
	"Kolhub/internal/service"
	"context"
	"flag"
	log "log/slog"
	"os"
)

// 离线同步命令：从飞书多维表格拉取 KOL 记录并 upsert 到数据库
func main() {
	maxRecords := flag.Int("max", 0, "最大拉取记录数，0 表示全部")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}

	logger.InitLogger()

	db, err := database.NewGormDB(&cfg.DB)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		os.Exit(1)
	}

	limit := *maxRecords
	if limit == 0 {
		limit = cfg.Feishu.MaxRecords
	}

	kolRepo := repository.NewKOLRepo(db)
	bitable := feishu.NewClient(&cfg.Feishu)
	syncService := service.NewSyncService(kolRepo, bitable)

	result, err := syncService.SyncFromBitable(context.Background(), limit)
	if err != nil {
		log.Error("Sync failed", "err", err)
		os.Exit(1)
	}

	log.Info("Sync finished",
		"fetched", result.Fetched,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	if result.Failed > 0 {
		os.Exit(1)
	}
}
