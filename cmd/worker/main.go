package main

import (
	"log"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"filesmanager/internal/config"
	"filesmanager/internal/database"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		// one job at a time; redelivery makes the handlers idempotent anyway
		asynq.Config{Concurrency: 1},
	)

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeThumbnail, worker.NewThumbnailHandler(repository.NewFileRepository(db)))
	mux.Handle(queue.TypeWelcome, worker.NewWelcomeHandler(repository.NewUserRepository(db)))

	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
