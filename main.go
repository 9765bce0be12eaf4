package main

import (
	"github.com/mapyourmemory/memorymap/config"
	"github.com/mapyourmemory/memorymap/database"
	"github.com/mapyourmemory/memorymap/events"
	"github.com/mapyourmemory/memorymap/handler"
	"github.com/mapyourmemory/memorymap/models"
	"github.com/mapyourmemory/memorymap/pkg/metrics"
	"github.com/mapyourmemory/memorymap/repository"
	"github.com/mapyourmemory/memorymap/router"
	"github.com/mapyourmemory/memorymap/service"
	"github.com/mapyourmemory/memorymap/storage"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func autoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.Category{}, &models.Prompt{}, &models.Memory{}); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	autoMigrate(db)

	memoryRepo := repository.NewMemoryRepository(db)
	promptRepo := repository.NewPromptRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	var uploader storage.Uploader
	var staticUploads *router.StaticUploads
	switch cfg.Storage.Driver {
	case "minio":
		uploader, err = storage.NewMinioStore(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to init minio storage: %v", err)
		}
	default:
		local, err := storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.PublicPrefix)
		if err != nil {
			log.Fatalf("failed to init local storage: %v", err)
		}
		uploader = local
		staticUploads = &router.StaticUploads{
			PublicPrefix: cfg.Storage.PublicPrefix,
			Dir:          local.Dir(),
		}
	}

	publisher := events.NewPublisher(cfg.Kafka)
	defer publisher.Close()

	memoryService := service.NewMemoryService(memoryRepo, uploader, publisher)
	promptService := service.NewPromptService(promptRepo, categoryRepo)

	memoryHandler := handler.NewMemoryHandler(memoryService)
	promptHandler := handler.NewPromptHandler(promptService)
	categoryHandler := handler.NewCategoryHandler(promptService)

	metrics.StartMetricsServer(cfg.Metrics.Port)

	r := router.Setup(memoryHandler, promptHandler, categoryHandler, staticUploads)
	log.Infof("API listening on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
