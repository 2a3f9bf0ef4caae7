package app

import (
	"log"

	"arba/internal/config"
	"arba/internal/database"
	"arba/internal/repository"
	"arba/internal/service"
	"arba/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO (опционально)
	var imageStorage storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Не удалось инициализировать MinIO: %v", err)
		}
		imageStorage = minioClient
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, imageStorage)

	return db, repo, services
}
